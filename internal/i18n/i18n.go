// Package i18n registers the translations used when rendering a refrigerator
// and resolves the language selected by configuration.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mesh-intelligence/fridge/pkg/types"
)

var portuguese = language.MustParse(types.LanguagePortuguese)

var supportedTags = []language.Tag{
	language.English,
	portuguese,
}

var tagMatcher = language.NewMatcher(supportedTags)

// catalog maps each locale to its translations of the render message keys.
// English uses the keys themselves.
var catalog = map[language.Tag]map[string]string{
	portuguese: {
		types.MsgContainerHeader: "Container %d",
		types.MsgPositionLine:    "Posição %d: %s",
	},
}

func init() {
	for tag, messages := range catalog {
		for key, value := range messages {
			if err := message.SetString(tag, key, value); err != nil {
				panic(fmt.Sprintf("register %s %q: %v", tag, key, err))
			}
		}
	}
}

// SupportedList returns the supported tags as a comma-separated list, for
// help and error text.
func SupportedList() string {
	names := make([]string, len(supportedTags))
	for i, tag := range supportedTags {
		names[i] = tag.String()
	}
	return strings.Join(names, ", ")
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag returns the supported tag closest to value. An empty value
// selects Default. Values that do not parse, or match no supported language,
// return types.ErrLanguageUnsupported.
func ResolveTag(value string) (language.Tag, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default(), nil
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, fmt.Errorf("%w: %q (supported: %s)", types.ErrLanguageUnsupported, value, SupportedList())
	}
	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return language.Tag{}, fmt.Errorf("%w: %q (supported: %s)", types.ErrLanguageUnsupported, value, SupportedList())
	}
	return supportedTags[index], nil
}

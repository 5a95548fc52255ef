package types

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys used by the Render methods. Translations are registered
// against these keys with message.SetString.
const (
	MsgContainerHeader = "Container %d"
	MsgPositionLine    = "Position %d: %s"
)

// positionIndent prefixes every item line under a container header.
const positionIndent = "  "

var defaultPrinter = message.NewPrinter(language.English)

// printerOrDefault returns p, or the English printer when p is nil.
func printerOrDefault(p *message.Printer) *message.Printer {
	if p == nil {
		return defaultPrinter
	}
	return p
}

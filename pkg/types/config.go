package types

import "errors"

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend               string `json:"backend" yaml:"backend"`
	DataDir               string `json:"data_dir" yaml:"data_dir"`
	MaxContainersPerFloor int    `json:"max_containers" yaml:"max_containers"`
	Language              string `json:"language" yaml:"language"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Supported render languages. An empty Language means LanguageEnglish.
const (
	LanguageEnglish    = "en"
	LanguagePortuguese = "pt-BR"
)

// Config validation errors.
var (
	ErrBackendEmpty          = errors.New("backend must not be empty")
	ErrBackendUnknown        = errors.New("unknown backend")
	ErrContainerLimitInvalid = errors.New("max containers must not be negative")
	ErrLanguageUnsupported   = errors.New("unsupported language")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

var knownLanguages = map[string]bool{
	"":                 true,
	LanguageEnglish:    true,
	LanguagePortuguese: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.MaxContainersPerFloor < 0 {
		return ErrContainerLimitInvalid
	}
	if !knownLanguages[c.Language] {
		return ErrLanguageUnsupported
	}
	return nil
}

// Limits returns the refrigerator capacity settings carried by the config.
func (c Config) Limits() Limits {
	return Limits{MaxContainersPerFloor: c.MaxContainersPerFloor}
}

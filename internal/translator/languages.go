package translator

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var languagesYAML []byte

// LanguageInfo is one supported translation language.
type LanguageInfo struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Registry is the ordered set of supported translation languages.
type Registry struct {
	Languages []LanguageInfo `yaml:"languages"`

	byCode map[string]LanguageInfo
}

// NewRegistry parses the embedded language list.
func NewRegistry() (*Registry, error) {
	var registry Registry
	if err := yaml.Unmarshal(languagesYAML, &registry); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	registry.byCode = make(map[string]LanguageInfo, len(registry.Languages))
	for _, lang := range registry.Languages {
		registry.byCode[lang.Code] = lang
	}
	return &registry, nil
}

// IsSupported reports whether code is a supported language.
func (r *Registry) IsSupported(code string) bool {
	_, ok := r.byCode[code]
	return ok
}

// Codes returns all language codes in registry order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.Languages))
	for _, lang := range r.Languages {
		codes = append(codes, lang.Code)
	}
	return codes
}

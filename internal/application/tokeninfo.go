package application

import (
	"fmt"

	"langtoken/internal/domain"
	"langtoken/internal/ports/input"
	"langtoken/internal/ports/output"
	"langtoken/pkg/tokenname"
)

var _ input.TokenInfoProvider = (*TokenInfoBuilder)(nil)

// TokenInfoBuilder advertises one wildcard token pattern per
// (translation-enabled content entity type, installed language) pair.
type TokenInfoBuilder struct {
	types     output.EntityTypeRegistry
	languages output.LanguageRegistry
	settings  output.TranslationSettings
}

func NewTokenInfoBuilder(
	types output.EntityTypeRegistry,
	languages output.LanguageRegistry,
	settings output.TranslationSettings,
) *TokenInfoBuilder {
	return &TokenInfoBuilder{
		types:     types,
		languages: languages,
		settings:  settings,
	}
}

// TokenInfo builds the descriptive metadata. Entity types without the
// content capability, or with translation disabled, contribute nothing.
func (b *TokenInfoBuilder) TokenInfo() domain.TokenInfo {
	info := domain.TokenInfo{}
	languages := b.languages.Languages()
	for id, def := range b.types.Definitions() {
		if !def.Content || !b.settings.IsEnabled(id) {
			continue
		}
		patterns := make(map[string]domain.TokenDescriptor, len(languages))
		for code, lang := range languages {
			patterns[tokenname.Format("*", code)] = domain.TokenDescriptor{
				Name:        fmt.Sprintf("%s translation", lang.Name),
				Description: fmt.Sprintf("Tokens for the %s translation of the %s.", lang.Name, def.Label),
			}
		}
		info[id] = patterns
	}
	return info
}

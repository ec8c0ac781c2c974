package i18n

import (
	"embed"
	"log"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"langtoken/internal/domain/entities"
	"langtoken/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.LanguageRegistry = (*Registry)(nil)

// Registry is the installed-language registry, backed by go-i18n's
// Bundle. A language is installed when an active.<code>.toml message
// file ships with the binary.
type Registry struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewRegistry builds a Registry using the given default locale
// (e.g. "en"). It loads every embedded active.*.toml message file.
func NewRegistry(defaultLocale string) *Registry {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := localeFS.ReadDir(".")
	if err != nil {
		log.Printf("i18n: read embedded locales: %v", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file.Name()); err != nil {
			log.Printf("i18n: failed to load %s: %v", file.Name(), err)
		}
	}

	return &Registry{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// Languages enumerates the installed languages keyed by lowercase
// locale code. Codes are lowercased so that every installed language is
// addressable by the lowercase-only token grammar; the display name is
// the language's self name.
func (r *Registry) Languages() map[string]entities.Language {
	out := map[string]entities.Language{}
	for _, tag := range r.bundle.LanguageTags() {
		code := strings.ToLower(tag.String())
		out[code] = entities.Language{
			Code: code,
			Name: display.Self.Name(tag),
		}
	}
	return out
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (r *Registry) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, r.defaultLanguage.String())

	localizer := i18n.NewLocalizer(r.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: localize failed (key=%s, locales=%v): %v", key, languages, err)
		return key
	}
	return msg
}

package output

import "langtoken/internal/domain/entities"

// EntityTypeRegistry enumerates the installed entity-type definitions.
type EntityTypeRegistry interface {
	Definitions() map[string]entities.EntityType
}

// LanguageRegistry enumerates the installed languages, keyed by
// lowercase locale code.
type LanguageRegistry interface {
	Languages() map[string]entities.Language
}

// TranslationSettings answers whether content translation is enabled
// for an entity type.
type TranslationSettings interface {
	IsEnabled(entityTypeID string) bool
}

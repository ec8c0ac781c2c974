package entities

// Language describes one installed locale.
type Language struct {
	// Code is the lowercase locale identifier, e.g. "en", "en-gb", "pt_br".
	Code string
	// Name is the language's display name in that language.
	Name string
}

// EntityType is a registry definition for an entity type.
type EntityType struct {
	ID    string
	Label string
	// Content marks types whose instances are content entities and can
	// therefore carry translations.
	Content bool
}

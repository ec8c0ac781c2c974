package domain

// TokenDescriptor is purely descriptive metadata about a token pattern,
// used for documentation and autocomplete surfaces.
type TokenDescriptor struct {
	Name        string
	Description string
}

// TokenInfo maps entity-type ID to token pattern to descriptor.
type TokenInfo map[string]map[string]TokenDescriptor

package schema

import (
	"langtoken/internal/ports/output"
)

var _ output.TranslationSettings = (*Settings)(nil)

// Settings answers the translation-enablement predicate from a fixed
// set of entity-type IDs, typically taken from configuration.
type Settings struct {
	enabled map[string]struct{}
}

func NewSettings(enabledTypeIDs []string) *Settings {
	s := &Settings{enabled: make(map[string]struct{}, len(enabledTypeIDs))}
	for _, id := range enabledTypeIDs {
		s.enabled[id] = struct{}{}
	}
	return s
}

func (s *Settings) IsEnabled(entityTypeID string) bool {
	_, ok := s.enabled[entityTypeID]
	return ok
}

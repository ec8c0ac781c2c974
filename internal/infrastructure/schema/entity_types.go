// Package schema provides the static entity-type registry and the
// content-translation settings backed by configuration.
package schema

import (
	"langtoken/internal/domain/entities"
	"langtoken/internal/ports/output"
)

var _ output.EntityTypeRegistry = (*EntityTypes)(nil)

// EntityTypes is an in-memory entity-type registry.
type EntityTypes struct {
	defs map[string]entities.EntityType
}

// NewEntityTypes returns a registry seeded with the built-in types.
func NewEntityTypes() *EntityTypes {
	r := &EntityTypes{defs: map[string]entities.EntityType{}}
	r.Register(entities.EntityType{ID: "node", Label: "content item", Content: true})
	r.Register(entities.EntityType{ID: "user", Label: "user account", Content: true})
	r.Register(entities.EntityType{ID: "menu", Label: "menu", Content: false})
	return r
}

// Register adds or replaces a definition.
func (r *EntityTypes) Register(def entities.EntityType) {
	r.defs[def.ID] = def
}

// Definitions returns the installed definitions keyed by type ID.
func (r *EntityTypes) Definitions() map[string]entities.EntityType {
	out := make(map[string]entities.EntityType, len(r.defs))
	for id, def := range r.defs {
		out[id] = def
	}
	return out
}

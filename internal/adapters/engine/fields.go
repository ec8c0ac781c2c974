package engine

import (
	"context"

	"langtoken/internal/domain"
	"langtoken/internal/domain/entities"
	"langtoken/internal/ports/input"
)

var _ input.TokenResolver = (*FieldProvider)(nil)

// FieldProvider resolves plain field tokens ([node:title]) against the
// entity stored under data[type], reading the field in the entity's
// active language. It records the entity's cache tag for every hit.
type FieldProvider struct{}

func NewFieldProvider() *FieldProvider {
	return &FieldProvider{}
}

func (p *FieldProvider) ReplaceTokens(
	ctx context.Context,
	tokenType string,
	tokens map[string]string,
	data map[string]any,
	options map[string]any,
	meta *domain.Cacheability,
) (map[string]string, error) {
	entity, ok := data[tokenType].(entities.Entity)
	if !ok {
		return nil, nil
	}

	replacements := map[string]string{}
	for name, original := range tokens {
		value, ok := entity.Field(name)
		if !ok {
			continue
		}
		replacements[original] = value
		if meta != nil {
			meta.AddTags(entity.CacheTag())
		}
	}
	return replacements, nil
}

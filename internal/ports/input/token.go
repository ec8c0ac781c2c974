package input

import (
	"context"

	"langtoken/internal/domain"
)

// TokenResolver resolves a batch of raw token names for one token type.
//
// tokens maps raw token name → original placeholder text as it appears
// in the template. The result maps original placeholder → replacement
// and contains only tokens that actually resolved; unresolved or
// vetoed tokens are absent, never mapped to an empty string.
type TokenResolver interface {
	ReplaceTokens(
		ctx context.Context,
		tokenType string,
		tokens map[string]string,
		data map[string]any,
		options map[string]any,
		meta *domain.Cacheability,
	) (map[string]string, error)
}

// TokenInfoProvider describes the token patterns a resolver understands,
// for documentation and autocomplete surfaces.
type TokenInfoProvider interface {
	TokenInfo() domain.TokenInfo
}

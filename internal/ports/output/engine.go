package output

import (
	"context"

	"langtoken/internal/domain"
)

// TokenEngine is the general-purpose substitution engine language
// tokens are delegated to once their translation context is prepared.
//
// Replace returns text unchanged when it finds nothing to substitute.
// Implementations may re-enter the token resolver while expanding text.
type TokenEngine interface {
	Replace(
		ctx context.Context,
		text string,
		data map[string]any,
		options map[string]any,
		meta *domain.Cacheability,
	) (string, error)
}

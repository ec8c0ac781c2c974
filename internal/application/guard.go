package application

import "context"

// The recursion guard tracks which (type, raw token name) pairs are
// currently being resolved within one logical call tree. The engine may
// re-enter ReplaceTokens while expanding a delegated base token; the
// guard keeps that re-entry from resolving the same token again and
// looping forever.
//
// The in-flight set rides on the context so that nested calls share it
// while independent call trees (separate requests, separate goroutines
// with their own contexts) stay isolated.

type guardCtxKey struct{}

type guardSet map[string]struct{}

// guardScope returns the call tree's in-flight set, creating it on the
// outermost frame.
func guardScope(ctx context.Context) (context.Context, guardSet) {
	if set, ok := ctx.Value(guardCtxKey{}).(guardSet); ok {
		return ctx, set
	}
	set := guardSet{}
	return context.WithValue(ctx, guardCtxKey{}, set), set
}

func guardKey(tokenType, rawName string) string {
	return tokenType + ":" + rawName
}

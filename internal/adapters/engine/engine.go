// Package engine implements the default token substitution engine.
//
// The engine scans text for bracketed placeholders of the form
// [type:name], hands the token map of each type to every registered
// provider, and applies whatever replacements come back. Text without
// resolvable tokens is returned verbatim, which is the signal callers
// use to detect a no-op.
package engine

import (
	"context"
	"regexp"
	"strings"

	"langtoken/internal/domain"
	"langtoken/internal/ports/input"
	"langtoken/internal/ports/output"
)

var _ output.TokenEngine = (*Engine)(nil)

// tokenRe matches [type:name] placeholders. The name may contain
// further colons (nested paths, locale suffixes) but no brackets.
var tokenRe = regexp.MustCompile(`\[([a-z][a-z0-9_]*):([^\[\]]+)\]`)

// Engine fans scanned tokens out to its providers in registration
// order. Providers are TokenResolvers; the language token resolver
// registers itself here, which is how engine calls can re-enter it.
type Engine struct {
	providers []input.TokenResolver
}

func New() *Engine {
	return &Engine{}
}

// Register appends a token provider. Later providers cannot override
// replacements produced by earlier ones.
func (e *Engine) Register(p input.TokenResolver) {
	e.providers = append(e.providers, p)
}

// Replace substitutes every resolvable token in text. Unresolvable
// tokens are left verbatim; when nothing resolves, text comes back
// unchanged.
func (e *Engine) Replace(
	ctx context.Context,
	text string,
	data map[string]any,
	options map[string]any,
	meta *domain.Cacheability,
) (string, error) {
	scanned := Scan(text)
	if len(scanned) == 0 {
		return text, nil
	}

	replacements := map[string]string{}
	for tokenType, tokens := range scanned {
		for _, p := range e.providers {
			found, err := p.ReplaceTokens(ctx, tokenType, tokens, data, options, meta)
			if err != nil {
				return "", err
			}
			for original, value := range found {
				if _, done := replacements[original]; !done {
					replacements[original] = value
				}
			}
		}
	}
	if len(replacements) == 0 {
		return text, nil
	}

	pairs := make([]string, 0, len(replacements)*2)
	for original, value := range replacements {
		pairs = append(pairs, original, value)
	}
	return strings.NewReplacer(pairs...).Replace(text), nil
}

// Scan extracts every [type:name] placeholder from text, grouped by
// type, mapping raw token name → original placeholder.
func Scan(text string) map[string]map[string]string {
	out := map[string]map[string]string{}
	for _, m := range tokenRe.FindAllStringSubmatch(text, -1) {
		original, tokenType, name := m[0], m[1], m[2]
		tokens, ok := out[tokenType]
		if !ok {
			tokens = map[string]string{}
			out[tokenType] = tokens
		}
		tokens[name] = original
	}
	return out
}

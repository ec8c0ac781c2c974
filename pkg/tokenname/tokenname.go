// Package tokenname implements the wire grammar for locale-suffixed
// token names: `<base-token>:_lang_<localecode>`.
//
// The base token may itself contain colon-delimited segments; the split
// always happens at the right-most `:_lang_` marker. Locale codes are
// restricted to lowercase letters, hyphen and underscore — names with
// uppercase or numeric codes are simply not language tokens.
package tokenname

import "regexp"

// Marker separates the base token from the locale code.
const Marker = ":_lang_"

// suffixRe is greedy on the base so that the split lands on the last
// marker occurrence.
var suffixRe = regexp.MustCompile(`^(.+):_lang_([a-z\-_]+)$`)

// Parse splits a raw token name into its base token and locale code.
// ok is false when the name does not carry a valid locale suffix; such
// names are not language tokens and must be left alone by callers.
func Parse(raw string) (base, langcode string, ok bool) {
	m := suffixRe.FindStringSubmatch(raw)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Format builds a locale-suffixed token name from a base token and a
// locale code. Format("*", "de") yields the documentation pattern
// "*:_lang_de".
func Format(base, langcode string) string {
	return base + Marker + langcode
}

// Placeholder renders the bracketed placeholder for a token of the
// given type, e.g. Placeholder("node", "title") == "[node:title]".
func Placeholder(tokenType, token string) string {
	return "[" + tokenType + ":" + token + "]"
}

// Package events holds the event payloads dispatched to observers
// during token resolution.
package events

import (
	"langtoken/internal/domain"
	"langtoken/internal/domain/entities"
)

// ReplacementName is the well-known event name the resolver dispatches
// before delegating a language token to the substitution engine.
const ReplacementName = "langtoken.replace"

// Replacement is the mutable carrier handed to observers. Observers run
// synchronously, in registration order, and may swap the translation,
// data or options the delegated engine call will see, supply a custom
// replacement, or veto the replacement entirely.
//
// The carrier lives for one token within one ReplaceTokens call and is
// never reused.
type Replacement struct {
	tokenType string
	baseToken string
	langcode  string
	original  string

	entity      entities.Translatable
	translation entities.Entity
	data        map[string]any
	options     map[string]any
	meta        *domain.Cacheability

	replacement    string
	hasReplacement bool
	skip           bool
}

// NewReplacement builds the carrier for one language token.
func NewReplacement(
	tokenType, baseToken, langcode, original string,
	entity entities.Translatable,
	translation entities.Entity,
	data map[string]any,
	options map[string]any,
	meta *domain.Cacheability,
) *Replacement {
	return &Replacement{
		tokenType:   tokenType,
		baseToken:   baseToken,
		langcode:    langcode,
		original:    original,
		entity:      entity,
		translation: translation,
		data:        data,
		options:     options,
		meta:        meta,
	}
}

func (r *Replacement) TokenType() string { return r.tokenType }
func (r *Replacement) BaseToken() string { return r.baseToken }
func (r *Replacement) Langcode() string  { return r.langcode }
func (r *Replacement) Original() string  { return r.original }

// Entity returns the subject entity in its source language.
func (r *Replacement) Entity() entities.Translatable { return r.entity }

// Translation returns the entity variant the engine will render from.
func (r *Replacement) Translation() entities.Entity { return r.translation }

// SetTranslation swaps the entity variant used for the delegated call.
func (r *Replacement) SetTranslation(t entities.Entity) { r.translation = t }

func (r *Replacement) Data() map[string]any        { return r.data }
func (r *Replacement) SetData(d map[string]any)    { r.data = d }
func (r *Replacement) Options() map[string]any     { return r.options }
func (r *Replacement) SetOptions(o map[string]any) { r.options = o }

// Cacheability exposes the shared accumulator so observers can record
// their own invalidation dependencies.
func (r *Replacement) Cacheability() *domain.Cacheability { return r.meta }

// SetReplacement supplies a custom replacement value. Once called, the
// carrier reports a custom replacement for the rest of its life; there
// is no way to unset it. An empty string is a valid replacement.
func (r *Replacement) SetReplacement(value string) {
	r.replacement = value
	r.hasReplacement = true
}

// CustomReplacement returns the custom value and whether one was set.
func (r *Replacement) CustomReplacement() (string, bool) {
	return r.replacement, r.hasReplacement
}

// Skip vetoes the replacement. Calling it more than once is harmless,
// and it is independent of any custom replacement.
func (r *Replacement) Skip() { r.skip = true }

// Skipped reports whether an observer vetoed the replacement.
func (r *Replacement) Skipped() bool { return r.skip }

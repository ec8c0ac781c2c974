package application

import (
	"context"

	"langtoken/internal/domain"
	"langtoken/internal/domain/entities"
	"langtoken/internal/domain/events"
	"langtoken/internal/ports/input"
	"langtoken/internal/ports/output"
	"langtoken/pkg/tokenname"
)

var _ input.TokenResolver = (*TokenService)(nil)

// TokenService resolves locale-suffixed tokens against a specific
// translation of the subject entity, delegating the actual field
// rendering to the substitution engine.
type TokenService struct {
	engine     output.TokenEngine
	dispatcher output.EventDispatcher
}

func NewTokenService(engine output.TokenEngine, dispatcher output.EventDispatcher) *TokenService {
	return &TokenService{
		engine:     engine,
		dispatcher: dispatcher,
	}
}

// ReplaceTokens resolves every language token in tokens. Names without
// a valid locale suffix are ignored. The result contains only tokens
// that produced a replacement; every absence condition (missing entity,
// missing translation, observer veto, engine no-op, recursive re-entry)
// silently yields no entry. Errors from the dispatcher or the engine
// propagate unchanged.
func (s *TokenService) ReplaceTokens(
	ctx context.Context,
	tokenType string,
	tokens map[string]string,
	data map[string]any,
	options map[string]any,
	meta *domain.Cacheability,
) (map[string]string, error) {
	ctx, inflight := guardScope(ctx)

	replacements := map[string]string{}
	for raw, original := range tokens {
		base, langcode, ok := tokenname.Parse(raw)
		if !ok {
			continue
		}
		value, found, err := s.resolveToken(ctx, inflight, tokenType, raw, base, langcode, original, data, options, meta)
		if err != nil {
			return nil, err
		}
		if found {
			replacements[original] = value
		}
	}
	return replacements, nil
}

// resolveToken handles one parsed language token. found is false for
// every no-replacement outcome.
func (s *TokenService) resolveToken(
	ctx context.Context,
	inflight guardSet,
	tokenType, raw, base, langcode, original string,
	data map[string]any,
	options map[string]any,
	meta *domain.Cacheability,
) (value string, found bool, err error) {
	key := guardKey(tokenType, raw)
	if _, busy := inflight[key]; busy {
		return "", false, nil
	}
	inflight[key] = struct{}{}
	// The key must be released on every exit path, including errors
	// bubbling up from observers or the engine.
	defer delete(inflight, key)

	subject, ok := data[tokenType].(entities.Translatable)
	if !ok {
		return "", false, nil
	}
	if !subject.IsTranslatable() || !subject.HasTranslation(langcode) {
		return "", false, nil
	}
	translation := subject.Translation(langcode)

	ev := events.NewReplacement(tokenType, base, langcode, original, subject, translation, data, options, meta)
	if err := s.dispatcher.Dispatch(ctx, events.ReplacementName, ev); err != nil {
		return "", false, err
	}

	if custom, ok := ev.CustomReplacement(); ok {
		return custom, true, nil
	}
	if ev.Skipped() {
		return "", false, nil
	}

	// Delegate the base token against the translated entity. The
	// caller's bags stay untouched.
	derivedData := copyBag(ev.Data())
	derivedData[tokenType] = ev.Translation()
	derivedOptions := copyBag(ev.Options())
	derivedOptions["langcode"] = langcode

	placeholder := tokenname.Placeholder(tokenType, base)
	out, err := s.engine.Replace(ctx, placeholder, derivedData, derivedOptions, meta)
	if err != nil {
		return "", false, err
	}
	if out == placeholder {
		// The engine found nothing to substitute.
		return "", false, nil
	}
	return out, true, nil
}

func copyBag(bag map[string]any) map[string]any {
	out := make(map[string]any, len(bag)+1)
	for k, v := range bag {
		out[k] = v
	}
	return out
}

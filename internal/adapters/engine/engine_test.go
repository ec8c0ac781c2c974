package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langtoken/internal/application"
	"langtoken/internal/domain"
	"langtoken/internal/domain/entities"
	"langtoken/internal/infrastructure/dispatch"
)

func newNode() *entities.ContentEntity {
	node := entities.NewContentEntity("node", "42", "en")
	node.SetField("en", "title", "English Title")
	node.SetField("en", "body", "English body.")
	node.SetField("de", "title", "German Title")
	return node
}

// wire assembles the full resolution loop: engine with a field provider
// and the language token resolver registered as providers.
func wire() *Engine {
	eng := New()
	resolver := application.NewTokenService(eng, dispatch.NewBus())
	eng.Register(NewFieldProvider())
	eng.Register(resolver)
	return eng
}

func TestScan(t *testing.T) {
	got := Scan("Hi [node:title] and [node:title:_lang_de], not [broken or [:x].")
	require.Contains(t, got, "node")
	assert.Equal(t, map[string]string{
		"title":          "[node:title]",
		"title:_lang_de": "[node:title:_lang_de]",
	}, got["node"])
}

func TestScan_NoTokens(t *testing.T) {
	assert.Empty(t, Scan("plain text without placeholders"))
}

func TestReplace_FieldTokens(t *testing.T) {
	eng := wire()
	meta := domain.NewCacheability()

	got, err := eng.Replace(context.Background(), "Title: [node:title]",
		map[string]any{"node": newNode()}, map[string]any{}, meta)
	require.NoError(t, err)
	assert.Equal(t, "Title: English Title", got)
	assert.Equal(t, []string{"node:42"}, meta.Tags())
}

func TestReplace_LanguageToken(t *testing.T) {
	eng := wire()
	meta := domain.NewCacheability()

	got, err := eng.Replace(context.Background(), "Titel: [node:title:_lang_de]",
		map[string]any{"node": newNode()}, map[string]any{}, meta)
	require.NoError(t, err)
	assert.Equal(t, "Titel: German Title", got)
}

func TestReplace_MixedTokens(t *testing.T) {
	eng := wire()

	got, err := eng.Replace(context.Background(),
		"[node:title] / [node:title:_lang_de] / [node:title:_lang_fr] / [node:missing]",
		map[string]any{"node": newNode()}, map[string]any{}, domain.NewCacheability())
	require.NoError(t, err)
	// No French translation and no such field: those stay verbatim.
	assert.Equal(t, "English Title / German Title / [node:title:_lang_fr] / [node:missing]", got)
}

func TestReplace_UnchangedWhenNothingResolves(t *testing.T) {
	eng := wire()

	text := "Nothing here: [node:title]"
	got, err := eng.Replace(context.Background(), text, map[string]any{}, map[string]any{}, domain.NewCacheability())
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestReplace_Idempotent(t *testing.T) {
	eng := wire()
	data := map[string]any{"node": newNode()}

	first, err := eng.Replace(context.Background(), "[node:title:_lang_de]", data, map[string]any{}, domain.NewCacheability())
	require.NoError(t, err)
	second, err := eng.Replace(context.Background(), "[node:title:_lang_de]", data, map[string]any{}, domain.NewCacheability())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "German Title", second)
}

func TestReplace_SelfReferentialFieldDoesNotLoop(t *testing.T) {
	eng := wire()
	node := newNode()
	// A field whose stored value is the language token referring to
	// itself. Replacements are applied once and never re-expanded, and
	// the recursion guard covers any re-entry on the same raw name, so
	// rendering terminates with the literal token in the output.
	node.SetField("de", "teaser", "[node:teaser:_lang_de]")

	got, err := eng.Replace(context.Background(), "[node:teaser:_lang_de]",
		map[string]any{"node": node}, map[string]any{}, domain.NewCacheability())
	require.NoError(t, err)
	assert.Equal(t, "[node:teaser:_lang_de]", got)
}

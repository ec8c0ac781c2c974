package entities

// Entity is the minimal surface the token engine needs from a stored
// entity: identity plus field access in the entity's active language.
type Entity interface {
	ID() string
	TypeID() string
	Langcode() string
	// Field returns the named field's value in the entity's active
	// language. ok is false when the field has no value there.
	Field(name string) (value string, ok bool)
	// CacheTag identifies the entity for cache invalidation, e.g. "node:42".
	CacheTag() string
}

// Translatable is implemented by entities that can hold per-language
// field variants.
type Translatable interface {
	Entity
	IsTranslatable() bool
	HasTranslation(langcode string) bool
	// Translation returns a view of the entity positioned on the given
	// language. The receiver is left untouched.
	Translation(langcode string) Entity
}

// ContentEntity is a content entity with per-langcode field sets.
// The zero value is not usable; construct with NewContentEntity.
type ContentEntity struct {
	id           string
	typeID       string
	langcode     string
	translatable bool
	// fields maps langcode → field name → value. All translation views
	// of one entity share this map.
	fields map[string]map[string]string
}

var _ Translatable = (*ContentEntity)(nil)

// NewContentEntity creates a translatable content entity whose default
// language is langcode.
func NewContentEntity(typeID, id, langcode string) *ContentEntity {
	return &ContentEntity{
		id:           id,
		typeID:       typeID,
		langcode:     langcode,
		translatable: true,
		fields:       map[string]map[string]string{langcode: {}},
	}
}

// NewUntranslatableEntity creates a content entity that refuses
// translation, for entity types without translatable storage.
func NewUntranslatableEntity(typeID, id, langcode string) *ContentEntity {
	e := NewContentEntity(typeID, id, langcode)
	e.translatable = false
	return e
}

func (e *ContentEntity) ID() string       { return e.id }
func (e *ContentEntity) TypeID() string   { return e.typeID }
func (e *ContentEntity) Langcode() string { return e.langcode }

func (e *ContentEntity) CacheTag() string {
	return e.typeID + ":" + e.id
}

func (e *ContentEntity) Field(name string) (string, bool) {
	set, ok := e.fields[e.langcode]
	if !ok {
		return "", false
	}
	value, ok := set[name]
	return value, ok
}

// SetField stores a field value for the given language, creating the
// translation's field set on first use.
func (e *ContentEntity) SetField(langcode, name, value string) {
	set, ok := e.fields[langcode]
	if !ok {
		set = map[string]string{}
		e.fields[langcode] = set
	}
	set[name] = value
}

func (e *ContentEntity) IsTranslatable() bool {
	return e.translatable
}

// HasTranslation reports whether a field set exists for langcode. The
// default language always counts as present.
func (e *ContentEntity) HasTranslation(langcode string) bool {
	_, ok := e.fields[langcode]
	return ok
}

// Translation returns a view over the same field storage positioned on
// langcode. Callers are expected to check HasTranslation first; a view
// for an unknown langcode simply has no fields.
func (e *ContentEntity) Translation(langcode string) Entity {
	if langcode == e.langcode {
		return e
	}
	view := *e
	view.langcode = langcode
	return &view
}

// FieldNames lists the fields carrying a value in the entity's active
// language.
func (e *ContentEntity) FieldNames() []string {
	set := e.fields[e.langcode]
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	return out
}

// Langcodes lists every language the entity carries fields for.
func (e *ContentEntity) Langcodes() []string {
	out := make([]string, 0, len(e.fields))
	for code := range e.fields {
		out = append(out, code)
	}
	return out
}

package domain

// CacheMaxAgePermanent marks metadata that never expires on its own.
const CacheMaxAgePermanent = -1

// Cacheability accumulates cache-invalidation dependencies while a
// template is being rendered. Collaborators add tags; the resolver only
// forwards the accumulator, it never interprets it.
type Cacheability struct {
	tags   map[string]struct{}
	maxAge int
	capped bool
}

func NewCacheability() *Cacheability {
	return &Cacheability{
		tags:   make(map[string]struct{}),
		maxAge: CacheMaxAgePermanent,
	}
}

// AddTags records cache tags, deduplicating repeats.
func (c *Cacheability) AddTags(tags ...string) {
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		c.tags[tag] = struct{}{}
	}
}

// Tags returns the accumulated tags in unspecified order.
func (c *Cacheability) Tags() []string {
	out := make([]string, 0, len(c.tags))
	for tag := range c.tags {
		out = append(out, tag)
	}
	return out
}

// MaxAge returns the effective max age, CacheMaxAgePermanent when no
// collaborator capped it.
func (c *Cacheability) MaxAge() int {
	return c.maxAge
}

// CapMaxAge lowers the max age; a permanent accumulator takes the first
// cap verbatim.
func (c *Cacheability) CapMaxAge(seconds int) {
	if !c.capped || seconds < c.maxAge {
		c.maxAge = seconds
		c.capped = true
	}
}

// Merge folds another accumulator into this one.
func (c *Cacheability) Merge(other *Cacheability) {
	if other == nil {
		return
	}
	c.AddTags(other.Tags()...)
	if other.capped {
		c.CapMaxAge(other.maxAge)
	}
}

package keel

import (
	"fmt"
	"maps"
	"slices"
)

// Config is the configuration container. It holds a params mapping of
// arbitrarily nested values (scalars, sequences, mappings) and an optional
// override mapping that wins over params for every key it defines, on every
// read and every derivation.
//
// String values read through Get are resolved: {key} placeholders are
// substituted against the container's own key space, recursively, with
// cycle detection.
//
// Config carries no internal locking. It is intended to be fully populated
// during bootstrap and treated as read-only afterwards; Set calls after the
// container is shared must be serialized by the caller.
type Config struct {
	params   map[string]any
	override map[string]any
}

// New returns a container backed by params. A nil params starts empty.
func New(params map[string]any) *Config {
	return NewWithOverride(params, nil)
}

// NewWithOverride returns a container backed by params with an override
// mapping consulted with priority over params on every read.
func NewWithOverride(params, override map[string]any) *Config {
	if params == nil {
		params = make(map[string]any)
	}
	return &Config{params: params, override: override}
}

// view returns the effective mapping: params with override applied on top.
func (c *Config) view() map[string]any {
	if len(c.override) == 0 {
		return c.params
	}
	m := make(map[string]any, len(c.params)+len(c.override))
	maps.Copy(m, c.params)
	maps.Copy(m, c.override)
	return m
}

// lookup reads a single key from the effective view.
func (c *Config) lookup(key string) (any, bool) {
	if c.override != nil {
		if v, ok := c.override[key]; ok {
			return v, true
		}
	}
	v, ok := c.params[key]
	return v, ok
}

// Sub returns a new container whose mapping is a shallow copy of the current
// one with extra applied on top, followed by the override (override always
// has final say). The receiver is never mutated; the child carries the same
// override.
func (c *Config) Sub(extra map[string]any) *Config {
	p := make(map[string]any, len(c.params)+len(extra))
	maps.Copy(p, c.params)
	maps.Copy(p, extra)
	maps.Copy(p, c.override)
	return &Config{params: p, override: c.override}
}

// SubParent layers this container over parent's defaults: parent's mapping
// is copied, this container's mapping is applied on top, then this
// container's override. Neither container is mutated.
func (c *Config) SubParent(parent *Config) *Config {
	p := make(map[string]any, len(parent.params)+len(c.params))
	maps.Copy(p, parent.params)
	maps.Copy(p, c.params)
	maps.Copy(p, c.override)
	return &Config{params: p, override: c.override}
}

// Set writes a top-level key in place.
func (c *Config) Set(key string, value any) {
	c.params[key] = value
}

// SetDomain writes a key under a domain namespace, creating the domain
// mapping when missing.
func (c *Config) SetDomain(domain, key string, value any) {
	dm, ok := c.params[domain].(map[string]any)
	if !ok {
		dm = make(map[string]any)
		c.params[domain] = dm
	}
	dm[key] = value
}

type getOptions struct {
	def        any
	hasDefault bool
	domain     string
	params     map[string]any
}

// GetOption customizes a single Get call.
type GetOption func(*getOptions)

// WithDefault supplies a default returned when the key is absent. The
// default itself is resolved, so it may contain {other_key} placeholders.
// WithDefault(nil) is an explicit null default, distinct from supplying no
// default at all (which makes a miss an error).
func WithDefault(v any) GetOption {
	return func(o *getOptions) {
		o.def = v
		o.hasDefault = true
	}
}

// WithDomain scopes the lookup to params[domain][key]. A domain lookup
// never falls back to a top-level key of the same name.
func WithDomain(domain string) GetOption {
	return func(o *getOptions) { o.domain = domain }
}

// WithParams substitutes placeholders against the given mapping instead of
// the container's own key space.
func WithParams(params map[string]any) GetOption {
	return func(o *getOptions) { o.params = params }
}

// Get fetches a value and resolves any {key} placeholders it contains.
//
// Lookup order: a domain lookup when WithDomain is given and the domain
// mapping exists, otherwise the top-level key, otherwise the WithDefault
// value. A miss with no default returns ErrMissingKey. On the domain miss
// path the default is returned as-is without resolution, and an explicit
// nil default yields "" (domain values are allowed to be intentionally
// empty, e.g. a default message-queue exchange).
func (c *Config) Get(key string, opts ...GetOption) (any, error) {
	var o getOptions
	for _, opt := range opts {
		opt(&o)
	}

	source := o.params
	if source == nil {
		source = c.view()
	}

	if o.domain != "" {
		if dm, ok := c.lookup(o.domain); ok {
			if m, ok := dm.(map[string]any); ok {
				v, ok := m[key]
				if !ok || v == nil {
					if !o.hasDefault {
						return nil, fmt.Errorf("%w: %s (domain %s)", ErrMissingKey, key, o.domain)
					}
					if o.def == nil {
						return "", nil
					}
					return o.def, nil
				}
				return resolve(key, v, source)
			}
		}
		// domain mapping absent: fall through to the top-level key
	}

	if v, ok := c.lookup(key); ok {
		return resolve(key, v, source)
	}

	if !o.hasDefault {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	return resolve(key, o.def, source)
}

// Keys returns the top-level keys of the effective view in lexicographic
// order. The order is for determinism only, not semantics.
func (c *Config) Keys() []string {
	view := c.view()
	keys := make([]string, 0, len(view))
	for k := range view {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Has reports whether key exists at the top level of the effective view.
func (c *Config) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// Len returns the number of top-level keys in the effective view.
func (c *Config) Len() int {
	return len(c.view())
}

// AllSettings resolves every top-level key and returns the result as a
// plain mapping.
func (c *Config) AllSettings() (map[string]any, error) {
	out := make(map[string]any, c.Len())
	for _, k := range c.Keys() {
		v, err := c.Get(k)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

package overlay

import (
	"regexp"
	"strings"
)

// tokenPattern matches $$ (an escaped dollar), ${name}, and bare $name.
// Identifiers are [A-Za-z_][A-Za-z0-9_]*; anything else after a dollar is
// not a token and stays verbatim.
var tokenPattern = regexp.MustCompile(`\$(?:(\$)|\{([A-Za-z_][A-Za-z0-9_]*)\}|([A-Za-z_][A-Za-z0-9_]*))`)

// expandTree walks a configuration value and expands placeholders inside
// string leaf values only, returning a new tree of the same shape. Mapping
// keys and non-string scalars are never touched.
func expandTree(v any, lookup func(string) (string, bool)) any {
	switch t := v.(type) {
	case string:
		return expand(t, lookup)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = expandTree(e, lookup)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = expandTree(e, lookup)
		}
		return out
	default:
		return v
	}
}

// expand substitutes every token in s for which lookup reports a value.
// Unmatched tokens are left verbatim; $$ collapses to a single $.
func expand(s string, lookup func(string) (string, bool)) string {
	matches := tokenPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		switch {
		case m[2] >= 0:
			b.WriteString("$")
		default:
			var name string
			if m[4] >= 0 {
				name = s[m[4]:m[5]]
			} else {
				name = s[m[6]:m[7]]
			}
			if v, ok := lookup(name); ok {
				b.WriteString(v)
			} else {
				b.WriteString(s[m[0]:m[1]])
			}
		}
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

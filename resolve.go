package keel

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}]*)\}`)

// resolve substitutes {key} placeholders in a value read for key, using
// source as the substitution key space. The resolution path is seeded with
// the fetched key so a value referencing its own key fails immediately.
func resolve(key string, value any, source map[string]any) (any, error) {
	return resolveValue(value, source, []string{key})
}

// resolveValue walks a configuration value, preserving its shape. Sibling
// elements of a sequence or mapping are independent: they share the visited
// path of their parent but do not extend it for each other.
func resolveValue(v any, source map[string]any, path []string) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return resolveString(t, source, path)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			r, err := resolveValue(e, source, path)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			r, err := resolveValue(e, source, path)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	default:
		// non-string scalars pass through unchanged
		return v, nil
	}
}

func resolveString(s string, source map[string]any, path []string) (any, error) {
	if strings.EqualFold(s, "null") || strings.EqualFold(s, "none") {
		return "", nil
	}

	matches := placeholderPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		token := s[m[2]:m[3]]
		if slices.Contains(path, token) {
			return nil, fmt.Errorf("%w in value %q using reference {%s} (path %s)",
				ErrCircularReference, s, token, strings.Join(append(path, token), " -> "))
		}
		raw, ok := source[token]
		if !ok {
			return nil, fmt.Errorf("%w: %s (referenced by %q)", ErrMissingKey, token, s)
		}
		sub, err := resolveValue(raw, source, append(path, token))
		if err != nil {
			return nil, err
		}

		b.WriteString(s[last:m[0]])
		b.WriteString(stringify(sub))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String(), nil
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

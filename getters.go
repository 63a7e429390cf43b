package keel

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// Typed getters. Each fetches and resolves the value via Get, then converts
// it; a value that cannot be converted yields an error wrapping the cast
// cause.

// String returns the resolved value of key as a string.
func (c *Config) String(key string, opts ...GetOption) (string, error) {
	v, err := c.Get(key, opts...)
	if err != nil {
		return "", err
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("key %s: %w", key, err)
	}
	return s, nil
}

// Int returns the resolved value of key as an int.
func (c *Config) Int(key string, opts ...GetOption) (int, error) {
	v, err := c.Get(key, opts...)
	if err != nil {
		return 0, err
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("key %s: %w", key, err)
	}
	return n, nil
}

// Bool returns the resolved value of key as a bool.
func (c *Config) Bool(key string, opts ...GetOption) (bool, error) {
	v, err := c.Get(key, opts...)
	if err != nil {
		return false, err
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("key %s: %w", key, err)
	}
	return b, nil
}

// Float returns the resolved value of key as a float64.
func (c *Config) Float(key string, opts ...GetOption) (float64, error) {
	v, err := c.Get(key, opts...)
	if err != nil {
		return 0, err
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("key %s: %w", key, err)
	}
	return f, nil
}

// Duration returns the resolved value of key as a time.Duration.
func (c *Config) Duration(key string, opts ...GetOption) (time.Duration, error) {
	v, err := c.Get(key, opts...)
	if err != nil {
		return 0, err
	}
	d, err := cast.ToDurationE(v)
	if err != nil {
		return 0, fmt.Errorf("key %s: %w", key, err)
	}
	return d, nil
}

// Strings returns the resolved value of key as a string slice.
func (c *Config) Strings(key string, opts ...GetOption) ([]string, error) {
	v, err := c.Get(key, opts...)
	if err != nil {
		return nil, err
	}
	ss, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("key %s: %w", key, err)
	}
	return ss, nil
}

// StringMap returns the resolved value of key as a map[string]any.
func (c *Config) StringMap(key string, opts ...GetOption) (map[string]any, error) {
	v, err := c.Get(key, opts...)
	if err != nil {
		return nil, err
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, fmt.Errorf("key %s: %w", key, err)
	}
	return m, nil
}

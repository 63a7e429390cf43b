package keel

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Unmarshal resolves every top-level key and decodes the result into
// target, which must be a pointer to a struct with mapstructure tags.
func (c *Config) Unmarshal(target any) error {
	settings, err := c.AllSettings()
	if err != nil {
		return err
	}
	return decode(settings, target)
}

// UnmarshalKey resolves a single key and decodes its value into target.
func (c *Config) UnmarshalKey(key string, target any) error {
	v, err := c.Get(key)
	if err != nil {
		return err
	}
	return decode(v, target)
}

func decode(input, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

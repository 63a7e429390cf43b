package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// printValue writes a resolved configuration value in the requested
// format: yaml, json, or raw (a bare string, for shell consumption).
func printValue(w io.Writer, v any, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "raw":
		s, err := cast.ToStringE(v)
		if err != nil {
			s = fmt.Sprint(v)
		}
		_, err = fmt.Fprintln(w, s)
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

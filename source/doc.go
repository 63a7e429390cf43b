// Package source locates and parses on-disk configuration files.
//
// Find discovers a configuration file in a directory, trying config.yaml
// then config.json; the first file present wins and its absence overall is
// a fatal "no configuration found" error. Load parses a single file whose
// extension selects the parser (.yaml/.yml or .json).
//
// Both return the raw mapping untouched: placeholder substitution belongs
// to the overlay package and the keel container, not the loader.
package source

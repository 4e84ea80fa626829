// Package config loads, defaults, and validates stagehand's TOML
// configuration.
//
// Load resolves the config path (explicit flag, else the default location),
// decodes TOML over the repository defaults, expands tilde paths, and
// validates semantic constraints. A missing file at the default location is
// not an error; defaults apply.
package config

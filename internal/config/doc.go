// Package config loads, normalizes, and validates shotlog's TOML
// configuration.
//
// Resolution order: an explicit --config path, ~/.config/shotlog/config.toml,
// then a project-local shotlog.toml. Missing files fall back to defaults so
// the tool works with zero configuration.
package config

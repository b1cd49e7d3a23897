// Package config loads bugsniff's YAML configuration from repo-local and
// global locations. Precedence is resolved by the CLI layer: flags win
// over local config, which wins over global config.
package config

// Package config loads the optional YAML configuration file, applies
// defaults and validates the result.
package config

// Package config loads the tokenstudio server configuration.
//
// Values come from an optional YAML file and are then overridden by
// TOKENSTUDIO_* environment variables. Defaults apply to anything neither
// source sets.
package config

// Package config loads embedder configuration from a TOML file with
// environment variable overrides.
//
// Resolution order, later wins: built-in defaults, the TOML file, then
// KEYRELAY_* environment variables. Configuration is read once at startup;
// there is no live reload.
package config

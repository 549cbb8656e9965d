// Package config handles application configuration loading and validation.
//
// Settings are read from an optional .env file and environment variables.
// All required values are validated at startup, connection settings before
// delivery settings, so the tool fails fast and deterministically before
// any network call is attempted.
package config

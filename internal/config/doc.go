// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-f string   path to the local store file
//	-d int      login delay (milliseconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration, so delay values can be either strings
// like "500ms" or integer nanoseconds:
//
//	{
//	  "database_path": "brewmart.db",
//	  "login_delay": "500ms"
//	}
package config

// Package config handles loading and parsing the dexter configuration file.
//
// # Overview
//
// dexter works without any configuration. The optional TOML file lets an
// operator point at a PokeAPI mirror, change how many entries are fetched,
// cap concurrent detail requests, or move the log file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/dexter/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty/zero, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/dexter/config.toml
//   - API base: https://pokeapi.co/api/v2
//   - Limit: 151 entries
//   - Max in flight: 0 (every detail request is issued at once)
//   - Request timeout: 10s per request
//   - Log file: ~/.local/state/dexter/dexter.log
//
// # TOML Format
//
//	api_base        = "https://pokeapi.co/api/v2"
//	limit           = 151
//	max_in_flight   = 0
//	request_timeout = "10s"
//	log_file        = "~/.local/state/dexter/dexter.log"
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors, unparseable durations, negative max_in_flight
//
// Missing config files are NOT an error.
package config

// Package config loads runtime configuration for the gophnotes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file in the working
//     directory (see parseEnv): SERVER_ENDPOINT_ADDR,
//     ONLINE_CHECK_INTERVAL, DATABASE_DIR.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST endpoint
//	-i int      online status check interval (seconds)
//	-d string   directory for the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://localhost:12345",
//	  "online_check_interval": "30s",
//	  "database_dir": ".gophnotes"
//	}
package config

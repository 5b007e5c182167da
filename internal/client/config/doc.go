// Package config loads runtime configuration for the banking CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment: an optional .env file in the working directory is loaded
//     first (existing variables win), then MONZO_API_URL,
//     MONZO_ACCESS_TOKEN, MONZO_REQUEST_TIMEOUT and MONZO_LOG_LEVEL are read.
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   API base URL
//	-t string   access token
//	-r int      request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://api.monzo.com",
//	  "access_token": "...",
//	  "request_timeout": "30s",
//	  "log_level": "info"
//	}
package config

// Package config loads runtime configuration for the gigdesk CLI.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory.
//  3. GIGDESK_* environment variables.
//  4. Optional JSON file selected with -c or -config.
//  5. Command-line flags.
//
// Environment
//
//	GIGDESK_API_BASE_URL   API base URL
//	GIGDESK_SESSION_DB     session database path
//	GIGDESK_LOG_LEVEL      debug | info | warn | error
//	GIGDESK_LOG_FORMAT     text | json | console
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://api.example.com/api",
//	  "session_db": "/home/me/.config/gigdesk/session.db",
//	  "log_level": "debug",
//	  "log_format": "console"
//	}
package config

// ABOUTME: Package documentation for the config package
// ABOUTME: Explains configuration file format and loading behavior

// Package config loads the taskwell-server YAML configuration.
//
// Configuration is read from a single YAML file. Environment variables in
// ${VAR_NAME} form are expanded before parsing, so secrets like the JWT
// signing key can live outside the file:
//
//	server:
//	  http_addr: ":3001"
//
//	database:
//	  path: "~/.local/share/taskwell/taskwell.db"
//
//	identity:
//	  jwt_secret: "${TASKWELL_JWT_SECRET}"
//	  token_ttl: "1h"
//
//	logging:
//	  level: "info"
//	  format: "text"
//
// The HTTP address defaults to :3001 and the token TTL to one hour. The
// database path and JWT secret are required; Load returns an error
// describing the first missing field.
package config

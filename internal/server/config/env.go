package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset or
// malformed variables leave the current value untouched.
//
// Recognized variables:
//
//	ADDRESS                  HTTP bind address
//	DATABASE_DSN             PostgreSQL DSN
//	SESSION_TOKEN_VALIDITY   session cookie validity, e.g. "168h"
//	PASSWORD_MIN_LENGTH      minimum password length
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SESSION_TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("PASSWORD_MIN_LENGTH"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.PasswordMinLength = n
		}
	}
}

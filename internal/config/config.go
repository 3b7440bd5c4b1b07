package config

import "os"

// Get returns the value of an environment variable, or the fallback
// when it is unset or empty. Required variables are checked at the
// composition roots instead.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

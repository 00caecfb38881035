package env

import "os"

// Get reads key from the environment, falling back when unset or empty.
// It exists for the few reads that happen before config.Load, such as the
// logger's output format.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

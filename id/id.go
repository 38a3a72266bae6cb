// Package id provides helpers for resource ID parameters.
package id

// Unique asks the server to generate a unique ID.
func Unique() string {
	return "unique()"
}

// Custom returns a caller-chosen ID. IDs may contain a-z, A-Z, 0-9, period,
// hyphen and underscore, may not start with a special character and are at
// most 36 characters long.
func Custom(id string) string {
	return id
}

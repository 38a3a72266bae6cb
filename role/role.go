// Package role builds the role strings used inside permissions.
package role

import "fmt"

// Any grants access to anyone, authenticated or not.
func Any() string {
	return "any"
}

// User grants access to a specific user. status may be "verified",
// "unverified" or empty.
func User(id, status string) string {
	if status == "" {
		return fmt.Sprintf("user:%s", id)
	}
	return fmt.Sprintf("user:%s/%s", id, status)
}

// Users grants access to any authenticated user, optionally filtered by status.
func Users(status string) string {
	if status == "" {
		return "users"
	}
	return fmt.Sprintf("users/%s", status)
}

// Guests grants access to unauthenticated users only.
func Guests() string {
	return "guests"
}

// Team grants access to members of a team, optionally only those with role.
func Team(id, role string) string {
	if role == "" {
		return fmt.Sprintf("team:%s", id)
	}
	return fmt.Sprintf("team:%s/%s", id, role)
}

// Member grants access to a specific team membership.
func Member(id string) string {
	return fmt.Sprintf("member:%s", id)
}

// Label grants access to users carrying a label.
func Label(name string) string {
	return fmt.Sprintf("label:%s", name)
}

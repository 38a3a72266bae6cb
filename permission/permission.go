// Package permission builds permission strings for resources.
//
//	permissions := []string{
//	    permission.Read(role.Any()),
//	    permission.Update(role.Team("editors", "")),
//	}
package permission

import "fmt"

func format(action, role string) string {
	return fmt.Sprintf("%s(%q)", action, role)
}

// Read allows role to read the resource.
func Read(role string) string {
	return format("read", role)
}

// Write allows role to create, update and delete. It is an alias of the three.
func Write(role string) string {
	return format("write", role)
}

// Create allows role to create child resources.
func Create(role string) string {
	return format("create", role)
}

// Update allows role to update the resource.
func Update(role string) string {
	return format("update", role)
}

// Delete allows role to delete the resource.
func Delete(role string) string {
	return format("delete", role)
}

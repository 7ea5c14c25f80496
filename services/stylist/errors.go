package stylist

import "fmt"

// OwnershipError signals an attempt to manage a service or rule that belongs
// to another stylist.
type OwnershipError struct {
	Resource string
	ID       string
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("%s %q is not owned by the requesting stylist", e.Resource, e.ID)
}

// AuthError signals failed registration or login.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

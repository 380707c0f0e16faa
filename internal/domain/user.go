package domain

import "github.com/google/uuid"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
)

func (r Role) String() string {
	return string(r)
}

// User is an identity registered with the booking system. Customers and
// employees differ only by Role; what they may do is decided by the registry.
type User struct {
	ID   uuid.UUID
	Name string
	Role Role
}

func NewCustomer(name string) User {
	return User{ID: uuid.New(), Name: name, Role: RoleCustomer}
}

func NewEmployee(name string) User {
	return User{ID: uuid.New(), Name: name, Role: RoleEmployee}
}

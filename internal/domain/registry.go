package domain

import (
	"context"

	"github.com/google/uuid"
)

// BookingRegistry is the set of operations callers may perform against the
// registered theaters, customers and employees.
type BookingRegistry interface {
	AddTheater(theater *Theater)
	AddCustomer(user User) error
	AddEmployee(user User) error

	Theater(id uuid.UUID) (*Theater, bool)
	Theaters() []*Theater

	EmployeeAddMovie(ctx context.Context, employeeID, theaterID uuid.UUID, movie Movie) error
	EmployeeUpdateMovie(ctx context.Context, employeeID, theaterID uuid.UUID, oldTitle string, movie Movie) error
	CheckAvailability(theaterID uuid.UUID, title string) int
	CustomerBookSeat(ctx context.Context, customerID, theaterID uuid.UUID, title string, numSeats int) (int, error)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/metinatakli/seat-ledger/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockRegistry struct {
	mock.Mock
}

var _ domain.BookingRegistry = (*MockRegistry)(nil)

func (m *MockRegistry) AddTheater(theater *domain.Theater) {
	m.Called(theater)
}

func (m *MockRegistry) AddCustomer(user domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockRegistry) AddEmployee(user domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockRegistry) Theater(id uuid.UUID) (*domain.Theater, bool) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Theater), args.Bool(1)
}

func (m *MockRegistry) Theaters() []*domain.Theater {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.Theater)
}

func (m *MockRegistry) EmployeeAddMovie(ctx context.Context, employeeID, theaterID uuid.UUID, movie domain.Movie) error {
	args := m.Called(ctx, employeeID, theaterID, movie)
	return args.Error(0)
}

func (m *MockRegistry) EmployeeUpdateMovie(
	ctx context.Context,
	employeeID, theaterID uuid.UUID,
	oldTitle string,
	movie domain.Movie) error {

	args := m.Called(ctx, employeeID, theaterID, oldTitle, movie)
	return args.Error(0)
}

func (m *MockRegistry) CheckAvailability(theaterID uuid.UUID, title string) int {
	args := m.Called(theaterID, title)
	return args.Int(0)
}

func (m *MockRegistry) CustomerBookSeat(
	ctx context.Context,
	customerID, theaterID uuid.UUID,
	title string,
	numSeats int) (int, error) {

	args := m.Called(ctx, customerID, theaterID, title, numSeats)
	return args.Int(0), args.Error(1)
}

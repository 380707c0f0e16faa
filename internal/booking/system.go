// Package booking implements the registry that gates every change to theater
// listings and seat counts behind customer and employee registration.
package booking

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/metinatakli/seat-ledger/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	outcomeSuccess      = "success"
	outcomeUnauthorized = "unauthorized"
	outcomeNotFound     = "not_found"
	outcomeNoCapacity   = "insufficient_seats"
	outcomeInvalid      = "invalid"
)

// System is the booking registry. Membership is keyed by ID, so two entities
// with the same name are still distinct.
type System struct {
	logger  *slog.Logger
	metrics *metrics

	mu        sync.RWMutex
	theaters  map[uuid.UUID]*domain.Theater
	customers map[uuid.UUID]domain.User
	employees map[uuid.UUID]domain.User
}

var _ domain.BookingRegistry = (*System)(nil)

type Option func(*options)

type options struct {
	meterProvider metric.MeterProvider
}

// WithMeterProvider records the registry counters on mp instead of the global
// meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

func NewSystem(logger *slog.Logger, opts ...Option) *System {
	o := options{meterProvider: otel.GetMeterProvider()}
	for _, opt := range opts {
		opt(&o)
	}

	return &System{
		logger:    logger,
		metrics:   newMetrics(o.meterProvider, logger),
		theaters:  make(map[uuid.UUID]*domain.Theater),
		customers: make(map[uuid.UUID]domain.User),
		employees: make(map[uuid.UUID]domain.User),
	}
}

func (s *System) AddTheater(theater *domain.Theater) {
	if theater == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.theaters[theater.ID()]; ok {
		return
	}

	s.theaters[theater.ID()] = theater
	s.logger.Info("theater registered", "theater_id", theater.ID(), "theater", theater.Name(), "total_seats", theater.TotalSeats())
}

func (s *System) AddCustomer(user domain.User) error {
	return s.addUser(user, domain.RoleCustomer, s.customers)
}

func (s *System) AddEmployee(user domain.User) error {
	return s.addUser(user, domain.RoleEmployee, s.employees)
}

func (s *System) addUser(user domain.User, role domain.Role, members map[uuid.UUID]domain.User) error {
	if user.Role != role {
		return fmt.Errorf("%w: %s is a %s, not a %s", domain.ErrRoleMismatch, user.Name, user.Role, role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := members[user.ID]; ok {
		return nil
	}

	members[user.ID] = user
	s.logger.Info("user registered", "user_id", user.ID, "name", user.Name, "role", role)

	return nil
}

func (s *System) Theater(id uuid.UUID) (*domain.Theater, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.theaters[id]
	return t, ok
}

// Theaters returns the registered theaters ordered by name.
func (s *System) Theaters() []*domain.Theater {
	s.mu.RLock()
	theaters := make([]*domain.Theater, 0, len(s.theaters))
	for _, t := range s.theaters {
		theaters = append(theaters, t)
	}
	s.mu.RUnlock()

	slices.SortFunc(theaters, func(a, b *domain.Theater) int {
		if c := cmp.Compare(a.Name(), b.Name()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})

	return theaters
}

func (s *System) Customer(id uuid.UUID) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.customers[id]
	return u, ok
}

func (s *System) Employee(id uuid.UUID) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.employees[id]
	return u, ok
}

func (s *System) EmployeeAddMovie(ctx context.Context, employeeID, theaterID uuid.UUID, movie domain.Movie) error {
	employee, theater, err := s.authorizeEmployee(ctx, employeeID, theaterID)
	if err != nil {
		return err
	}

	if err := movie.Validate(); err != nil {
		s.logger.WarnContext(ctx, "rejected movie", "theater", theater.Name(), "error", err)
		return err
	}

	logger := s.logger.With("employee", employee.Name, "theater", theater.Name(), "movie", movie.Title)

	if !theater.AddMovie(movie) {
		logger.InfoContext(ctx, "movie already listed")
		return nil
	}

	s.metrics.recordSchedule(ctx, theater.Name(), "add")
	logger.InfoContext(ctx, "movie added", "available_seats", theater.TotalSeats())

	return nil
}

func (s *System) EmployeeUpdateMovie(
	ctx context.Context,
	employeeID, theaterID uuid.UUID,
	oldTitle string,
	movie domain.Movie) error {

	employee, theater, err := s.authorizeEmployee(ctx, employeeID, theaterID)
	if err != nil {
		return err
	}

	if err := movie.Validate(); err != nil {
		s.logger.WarnContext(ctx, "rejected movie", "theater", theater.Name(), "error", err)
		return err
	}

	logger := s.logger.With("employee", employee.Name, "theater", theater.Name(), "old_movie", oldTitle, "movie", movie.Title)

	err = theater.UpdateMovie(oldTitle, movie)
	if err != nil {
		logger.WarnContext(ctx, "movie update failed", "error", err)
		return err
	}

	s.metrics.recordSchedule(ctx, theater.Name(), "update")
	logger.InfoContext(ctx, "movie updated", "available_seats", theater.TotalSeats())

	return nil
}

// CheckAvailability returns the free seats for title at the theater, or 0 when
// the theater is not registered or the movie is not listed there.
func (s *System) CheckAvailability(theaterID uuid.UUID, title string) int {
	theater, ok := s.Theater(theaterID)
	if !ok {
		return 0
	}

	n, _ := theater.Available(title)
	return n
}

// CustomerBookSeat reserves numSeats for the customer and returns the seats
// left afterwards. Nothing changes unless the whole request can be met.
func (s *System) CustomerBookSeat(
	ctx context.Context,
	customerID, theaterID uuid.UUID,
	title string,
	numSeats int) (int, error) {

	s.mu.RLock()
	customer, isCustomer := s.customers[customerID]
	theater, isTheater := s.theaters[theaterID]
	s.mu.RUnlock()

	if !isCustomer {
		s.logger.WarnContext(ctx, "unauthorized booking attempt", "customer_id", customerID)
		s.metrics.recordReservation(ctx, "", outcomeUnauthorized, 0)
		return 0, fmt.Errorf("%w: customer %s is not registered", domain.ErrUnauthorized, customerID)
	}

	if !isTheater {
		s.logger.WarnContext(ctx, "booking against unregistered theater", "customer", customer.Name, "theater_id", theaterID)
		s.metrics.recordReservation(ctx, "", outcomeNotFound, 0)
		return 0, fmt.Errorf("%w: %s is not registered in the booking system", domain.ErrTheaterNotRegistered, theaterID)
	}

	if numSeats < 1 {
		s.metrics.recordReservation(ctx, theater.Name(), outcomeInvalid, 0)
		return 0, fmt.Errorf("%w, got %d", domain.ErrInvalidSeatCount, numSeats)
	}

	logger := s.logger.With("customer", customer.Name, "theater", theater.Name(), "movie", title, "seats", numSeats)

	remaining, err := theater.Reserve(title, numSeats)
	if err != nil {
		outcome := outcomeNotFound
		if errors.Is(err, domain.ErrInsufficientSeats) {
			outcome = outcomeNoCapacity
		}

		logger.WarnContext(ctx, "reservation failed", "error", err)
		s.metrics.recordReservation(ctx, theater.Name(), outcome, 0)

		return remaining, err
	}

	logger.InfoContext(ctx, "seats reserved", "available_seats", remaining)
	s.metrics.recordReservation(ctx, theater.Name(), outcomeSuccess, numSeats)

	return remaining, nil
}

// ReserveSeat books a single seat.
func (s *System) ReserveSeat(ctx context.Context, customerID, theaterID uuid.UUID, title string) (int, error) {
	return s.CustomerBookSeat(ctx, customerID, theaterID, title, 1)
}

func (s *System) authorizeEmployee(ctx context.Context, employeeID, theaterID uuid.UUID) (domain.User, *domain.Theater, error) {
	s.mu.RLock()
	employee, isEmployee := s.employees[employeeID]
	theater, isTheater := s.theaters[theaterID]
	s.mu.RUnlock()

	if !isEmployee {
		s.logger.WarnContext(ctx, "unauthorized movie management attempt", "employee_id", employeeID)
		return domain.User{}, nil, fmt.Errorf("%w: employee %s is not registered", domain.ErrUnauthorized, employeeID)
	}

	if !isTheater {
		s.logger.WarnContext(ctx, "movie management against unregistered theater", "employee", employee.Name, "theater_id", theaterID)
		return domain.User{}, nil, fmt.Errorf("%w: %s is not registered in the booking system", domain.ErrTheaterNotRegistered, theaterID)
	}

	return employee, theater, nil
}

package app

import (
	"context"

	"github.com/metinatakli/seat-ledger/internal/domain"
)

// seed registers the demo theater, movies and users so a fresh server can be
// exercised right away. Generated IDs are logged for use in X-User-ID.
func (app *Application) seed(ctx context.Context) error {
	theater, err := domain.NewTheater("Downtown Cinema", 100)
	if err != nil {
		return err
	}

	customer := domain.NewCustomer("Alice")
	employee := domain.NewEmployee("Bob")

	app.registry.AddTheater(theater)

	if err := app.registry.AddCustomer(customer); err != nil {
		return err
	}

	if err := app.registry.AddEmployee(employee); err != nil {
		return err
	}

	movies := []domain.Movie{
		{Title: "The Matrix", Duration: 136, Rating: "R"},
		{Title: "Inception", Duration: 148, Rating: "PG-13"},
	}

	for _, m := range movies {
		if err := app.registry.EmployeeAddMovie(ctx, employee.ID, theater.ID(), m); err != nil {
			return err
		}
	}

	app.logger.Info("seeded demo data",
		"theater_id", theater.ID(),
		"customer_id", customer.ID,
		"employee_id", employee.ID,
	)

	return nil
}

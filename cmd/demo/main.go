// Command demo walks the booking registry through the reference scenarios and
// prints one line per event.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/metinatakli/seat-ledger/internal/booking"
	"github.com/metinatakli/seat-ledger/internal/domain"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	err := run(context.Background(), os.Stdout, logger)
	if err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, logger *slog.Logger) error {
	system := booking.NewSystem(logger)

	theater, err := domain.NewTheater("Downtown Cinema", 100)
	if err != nil {
		return err
	}

	matrix, err := domain.NewMovie("The Matrix", 136, "R")
	if err != nil {
		return err
	}

	inception, err := domain.NewMovie("Inception", 148, "PG-13")
	if err != nil {
		return err
	}

	interstellar, err := domain.NewMovie("Interstellar", 169, "PG-13")
	if err != nil {
		return err
	}

	alice := domain.NewCustomer("Alice")
	bob := domain.NewEmployee("Bob")
	eve := domain.NewEmployee("Eve")
	david := domain.NewCustomer("David")

	system.AddTheater(theater)
	if err := system.AddCustomer(alice); err != nil {
		return err
	}
	if err := system.AddEmployee(bob); err != nil {
		return err
	}

	report := func(step string, err error) {
		if err != nil {
			fmt.Fprintf(out, "%s: failed: %v\n", step, err)
			return
		}
		fmt.Fprintf(out, "%s: ok\n", step)
	}

	report("add The Matrix", system.EmployeeAddMovie(ctx, bob.ID, theater.ID(), matrix))
	report("add Inception", system.EmployeeAddMovie(ctx, bob.ID, theater.ID(), inception))
	fmt.Fprintf(out, "initial availability for %s: %d\n", matrix.Title, system.CheckAvailability(theater.ID(), matrix.Title))

	_, err = system.CustomerBookSeat(ctx, alice.ID, theater.ID(), matrix.Title, 5)
	report("reserve 5 seats for The Matrix", err)
	fmt.Fprintf(out, "availability after booking for %s: %d\n", matrix.Title, system.CheckAvailability(theater.ID(), matrix.Title))

	_, err = system.CustomerBookSeat(ctx, alice.ID, theater.ID(), inception.Title, 105)
	report("reserve 105 seats for Inception", err)

	report("unregistered employee adds Interstellar", system.EmployeeAddMovie(ctx, eve.ID, theater.ID(), interstellar))

	report("replace Inception with Interstellar", system.EmployeeUpdateMovie(ctx, bob.ID, theater.ID(), inception.Title, interstellar))
	fmt.Fprintf(out, "availability for %s: %d\n", interstellar.Title, system.CheckAvailability(theater.ID(), interstellar.Title))

	_, err = system.CustomerBookSeat(ctx, david.ID, theater.ID(), matrix.Title, 2)
	report("unregistered customer books The Matrix", err)

	for _, m := range theater.Movies() {
		fmt.Fprintf(out, "%s | %s | %d seat(s) left\n", theater, m, system.CheckAvailability(theater.ID(), m.Title))
	}

	return nil
}

package booking

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/metinatakli/seat-ledger/internal/booking"

type metrics struct {
	reservations    metric.Int64Counter
	seatsReserved   metric.Int64Counter
	moviesScheduled metric.Int64Counter
}

// newMetrics builds the registry counters. If an instrument cannot be created
// it falls back to a no-op one.
func newMetrics(mp metric.MeterProvider, logger *slog.Logger) *metrics {
	meter := mp.Meter(meterName)

	reservations, err := meter.Int64Counter("booking.reservations",
		metric.WithDescription("Reservation attempts by outcome"))
	if err != nil {
		logger.Warn("failed to create reservations counter", "error", err)
		reservations = noop.Int64Counter{}
	}

	seatsReserved, err := meter.Int64Counter("booking.seats.reserved",
		metric.WithDescription("Seats taken by successful reservations"),
		metric.WithUnit("{seat}"))
	if err != nil {
		logger.Warn("failed to create seats counter", "error", err)
		seatsReserved = noop.Int64Counter{}
	}

	moviesScheduled, err := meter.Int64Counter("booking.movies.scheduled",
		metric.WithDescription("Movies added or replaced by employees"))
	if err != nil {
		logger.Warn("failed to create movies counter", "error", err)
		moviesScheduled = noop.Int64Counter{}
	}

	return &metrics{
		reservations:    reservations,
		seatsReserved:   seatsReserved,
		moviesScheduled: moviesScheduled,
	}
}

func (m *metrics) recordReservation(ctx context.Context, theater string, outcome string, seats int) {
	attrs := metric.WithAttributes(
		attribute.String("theater", theater),
		attribute.String("outcome", outcome),
	)

	m.reservations.Add(ctx, 1, attrs)

	if outcome == outcomeSuccess {
		m.seatsReserved.Add(ctx, int64(seats), metric.WithAttributes(attribute.String("theater", theater)))
	}
}

func (m *metrics) recordSchedule(ctx context.Context, theater string, op string) {
	m.moviesScheduled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("theater", theater),
		attribute.String("operation", op),
	))
}

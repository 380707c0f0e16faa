package integration_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/seat-ledger/internal/app"
	"github.com/metinatakli/seat-ledger/internal/booking"
	"github.com/metinatakli/seat-ledger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TestApp struct {
	App      *app.Application
	Handler  http.Handler
	Registry *booking.System
	Theater  *domain.Theater
	Customer domain.User
	Employee domain.User
}

// newTestApp wires the application the way Run does and registers the demo
// theater, users and movies.
func newTestApp(t testing.TB) *TestApp {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := booking.NewSystem(logger)

	application := app.NewApp(app.Config{Port: 3000, Env: "test"}, logger, registry)

	theater, err := domain.NewTheater("Downtown Cinema", 100)
	require.NoError(t, err)

	customer := domain.NewCustomer("Alice")
	employee := domain.NewEmployee("Bob")

	registry.AddTheater(theater)
	require.NoError(t, registry.AddCustomer(customer))
	require.NoError(t, registry.AddEmployee(employee))

	for _, m := range []domain.Movie{
		{Title: "The Matrix", Duration: 136, Rating: "R"},
		{Title: "Inception", Duration: 148, Rating: "PG-13"},
	} {
		require.NoError(t, registry.EmployeeAddMovie(context.Background(), employee.ID, theater.ID(), m))
	}

	return &TestApp{
		App:      application,
		Handler:  application.Routes(),
		Registry: registry,
		Theater:  theater,
		Customer: customer,
		Employee: employee,
	}
}

type BaseSuite struct {
	suite.Suite
	app *TestApp
}

func (s *BaseSuite) SetupTest() {
	s.app = newTestApp(s.T())
}

type Scenario struct {
	Name             string
	Method           string
	URL              string
	Body             io.Reader
	Headers          map[string]string
	ExpectedStatus   int
	ExpectedResponse string
	BeforeTestFunc   func(t testing.TB, app *TestApp)
	AfterTestFunc    func(t testing.TB, app *TestApp, res *http.Response)
}

func (s Scenario) Run(t *testing.T, testApp *TestApp) {
	t.Run(s.Name, func(t *testing.T) {
		req, err := prepareRequest(s.Method, s.URL, s.Body, s.Headers)
		require.NoError(t, err)

		if s.BeforeTestFunc != nil {
			s.BeforeTestFunc(t, testApp)
		}

		rec := httptest.NewRecorder()
		testApp.Handler.ServeHTTP(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		assert.Equal(t, s.ExpectedStatus, res.StatusCode)

		if s.ExpectedResponse != "" {
			compareResponse(t, res.Body, s.ExpectedResponse)
		}

		if s.AfterTestFunc != nil {
			s.AfterTestFunc(t, testApp, res)
		}
	})
}

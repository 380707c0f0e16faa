package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/metinatakli/seat-ledger/api"
	"github.com/metinatakli/seat-ledger/internal/domain"
)

func (s *LedgerTestSuite) TestAddMovie() {
	eve := domain.NewEmployee("Eve")

	tests := []struct {
		name           string
		theaterID      func() string
		userId         func() *uuid.UUID
		body           any
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.MovieListing
		wantTitles     []string
	}{
		{
			name:       "employee adds movie",
			userId:     s.employeeID,
			body:       api.MovieRequest{Title: "Interstellar", Duration: 169, Rating: "pg-13"},
			wantStatus: http.StatusCreated,
			wantResponse: &api.MovieListing{
				Movie:          api.Movie{Title: "Interstellar", Duration: 169, Rating: "PG-13"},
				AvailableSeats: 100,
			},
			wantTitles: []string{"The Matrix", "Inception", "Interstellar"},
		},
		{
			name:       "already listed title keeps existing listing",
			userId:     s.employeeID,
			body:       api.MovieRequest{Title: "The Matrix", Duration: 140, Rating: "PG"},
			wantStatus: http.StatusCreated,
			wantResponse: &api.MovieListing{
				Movie:          api.Movie{Title: "The Matrix", Duration: 136, Rating: "R"},
				AvailableSeats: 100,
			},
			wantTitles: []string{"The Matrix", "Inception"},
		},
		{
			name:           "missing identity",
			body:           api.MovieRequest{Title: "Interstellar", Duration: 169, Rating: "PG-13"},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrUnauthenticated,
			wantTitles:     []string{"The Matrix", "Inception"},
		},
		{
			name:       "unregistered employee",
			userId:     func() *uuid.UUID { return ptr(eve.ID) },
			body:       api.MovieRequest{Title: "Interstellar", Duration: 169, Rating: "PG-13"},
			wantStatus: http.StatusForbidden,
			wantTitles: []string{"The Matrix", "Inception"},
		},
		{
			name:       "customer cannot add movies",
			userId:     s.customerID,
			body:       api.MovieRequest{Title: "Interstellar", Duration: 169, Rating: "PG-13"},
			wantStatus: http.StatusForbidden,
			wantTitles: []string{"The Matrix", "Inception"},
		},
		{
			name:       "unregistered theater",
			theaterID:  func() string { return uuid.NewString() },
			userId:     s.employeeID,
			body:       api.MovieRequest{Title: "Interstellar", Duration: 169, Rating: "PG-13"},
			wantStatus: http.StatusNotFound,
			wantTitles: []string{"The Matrix", "Inception"},
		},
		{
			name:           "unknown rating",
			userId:         s.employeeID,
			body:           api.MovieRequest{Title: "Interstellar", Duration: 169, Rating: "XXX"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be one of G, PG, PG-13, R, NC-17, NR",
			wantTitles:     []string{"The Matrix", "Inception"},
		},
		{
			name:           "non-positive duration",
			userId:         s.employeeID,
			body:           map[string]any{"title": "Interstellar", "duration": -10, "rating": "PG-13"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be at least 1",
			wantTitles:     []string{"The Matrix", "Inception"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			theaterID := s.theater.ID().String()
			if tt.theaterID != nil {
				theaterID = tt.theaterID()
			}

			var userId *uuid.UUID
			if tt.userId != nil {
				userId = tt.userId()
			}

			w := executeRequest(s.T(), s.app, http.MethodPost, fmt.Sprintf("/theaters/%s/movies", theaterID), tt.body, userId)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.MovieListing
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			s.Equal(tt.wantTitles, titles(s.theater.Movies()))

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *LedgerTestSuite) TestUpdateMovie() {
	tests := []struct {
		name           string
		oldTitle       string
		userId         func() *uuid.UUID
		body           any
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.MovieListing
		wantTitles     []string
	}{
		{
			name:       "replaces movie with a fresh schedule",
			oldTitle:   "Inception",
			userId:     s.employeeID,
			body:       api.MovieRequest{Title: "Interstellar", Duration: 169, Rating: "PG-13"},
			wantStatus: http.StatusOK,
			wantResponse: &api.MovieListing{
				Movie:          api.Movie{Title: "Interstellar", Duration: 169, Rating: "PG-13"},
				AvailableSeats: 100,
			},
			wantTitles: []string{"The Matrix", "Interstellar"},
		},
		{
			name:       "title with spaces is matched after unescaping",
			oldTitle:   "The Matrix",
			userId:     s.employeeID,
			body:       api.MovieRequest{Title: "The Matrix Reloaded", Duration: 138, Rating: "R"},
			wantStatus: http.StatusOK,
			wantResponse: &api.MovieListing{
				Movie:          api.Movie{Title: "The Matrix Reloaded", Duration: 138, Rating: "R"},
				AvailableSeats: 100,
			},
			wantTitles: []string{"The Matrix Reloaded", "Inception"},
		},
		{
			name:           "movie not found",
			oldTitle:       "Avatar",
			userId:         s.employeeID,
			body:           api.MovieRequest{Title: "Interstellar", Duration: 169, Rating: "PG-13"},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "movie not found: 'Avatar' is not listed at Downtown Cinema",
			wantTitles:     []string{"The Matrix", "Inception"},
		},
		{
			name:       "title collides with another listing",
			oldTitle:   "Inception",
			userId:     s.employeeID,
			body:       api.MovieRequest{Title: "The Matrix", Duration: 136, Rating: "R"},
			wantStatus: http.StatusConflict,
			wantTitles: []string{"The Matrix", "Inception"},
		},
		{
			name:       "customer cannot update movies",
			oldTitle:   "Inception",
			userId:     s.customerID,
			body:       api.MovieRequest{Title: "Interstellar", Duration: 169, Rating: "PG-13"},
			wantStatus: http.StatusForbidden,
			wantTitles: []string{"The Matrix", "Inception"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			_, err := s.registry.CustomerBookSeat(s.T().Context(), s.customer.ID, s.theater.ID(), tt.oldTitle, 10)
			if tt.wantStatus != http.StatusNotFound {
				s.Require().NoError(err)
			}

			u := fmt.Sprintf("/theaters/%s/movies/%s", s.theater.ID(), url.PathEscape(tt.oldTitle))
			w := executeRequest(s.T(), s.app, http.MethodPut, u, tt.body, tt.userId())

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.MovieListing
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			s.Equal(tt.wantTitles, titles(s.theater.Movies()))

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func titles(movies []domain.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

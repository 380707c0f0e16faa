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

func (s *LedgerTestSuite) TestGetAvailability() {
	_, err := s.registry.CustomerBookSeat(s.T().Context(), s.customer.ID, s.theater.ID(), matrix.Title, 5)
	s.Require().NoError(err)

	tests := []struct {
		name          string
		theaterID     uuid.UUID
		title         string
		wantAvailable int
	}{
		{name: "after a reservation", theaterID: s.theater.ID(), title: matrix.Title, wantAvailable: 95},
		{name: "untouched movie", theaterID: s.theater.ID(), title: inception.Title, wantAvailable: 100},
		{name: "movie not listed", theaterID: s.theater.ID(), title: "Avatar", wantAvailable: 0},
		{name: "theater not registered", theaterID: uuid.New(), title: matrix.Title, wantAvailable: 0},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			u := fmt.Sprintf("/theaters/%s/movies/%s/availability", tt.theaterID, url.PathEscape(tt.title))
			w := executeRequest(s.T(), s.app, http.MethodGet, u, nil, nil)

			s.Require().Equal(http.StatusOK, w.Code)

			var response api.AvailabilityResponse
			s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))

			want := api.AvailabilityResponse{TheaterId: tt.theaterID, Title: tt.title, AvailableSeats: tt.wantAvailable}
			diff := cmp.Diff(want, response)
			s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
		})
	}
}

func (s *LedgerTestSuite) TestCreateReservation() {
	david := domain.NewCustomer("David")

	tests := []struct {
		name           string
		theaterID      func() uuid.UUID
		title          string
		userId         func() *uuid.UUID
		body           any
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.ReservationResponse
		wantAvailable  int
	}{
		{
			name:          "reserves seats",
			title:         matrix.Title,
			userId:        s.customerID,
			body:          api.ReservationRequest{Seats: 5},
			wantStatus:    http.StatusCreated,
			wantResponse:  &api.ReservationResponse{Title: matrix.Title, ReservedSeats: 5, AvailableSeats: 95},
			wantAvailable: 95,
		},
		{
			name:           "overbooking",
			title:          matrix.Title,
			userId:         s.customerID,
			body:           api.ReservationRequest{Seats: 105},
			wantStatus:     http.StatusConflict,
			wantErrMessage: "not enough seats available: could not reserve 105 seat(s), only 100 seat(s) available for 'The Matrix'",
			wantAvailable:  100,
		},
		{
			name:          "unregistered customer",
			title:         matrix.Title,
			userId:        func() *uuid.UUID { return ptr(david.ID) },
			body:          api.ReservationRequest{Seats: 2},
			wantStatus:    http.StatusForbidden,
			wantAvailable: 100,
		},
		{
			name:          "employee cannot book",
			title:         matrix.Title,
			userId:        s.employeeID,
			body:          api.ReservationRequest{Seats: 2},
			wantStatus:    http.StatusForbidden,
			wantAvailable: 100,
		},
		{
			name:           "missing identity",
			title:          matrix.Title,
			userId:         func() *uuid.UUID { return nil },
			body:           api.ReservationRequest{Seats: 2},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrUnauthenticated,
			wantAvailable:  100,
		},
		{
			name:          "unregistered theater",
			theaterID:     uuid.New,
			title:         matrix.Title,
			userId:        s.customerID,
			body:          api.ReservationRequest{Seats: 2},
			wantStatus:    http.StatusNotFound,
			wantAvailable: 100,
		},
		{
			name:          "movie not playing",
			title:         "Avatar",
			userId:        s.customerID,
			body:          api.ReservationRequest{Seats: 2},
			wantStatus:    http.StatusNotFound,
			wantAvailable: 100,
		},
		{
			name:           "zero seats",
			title:          matrix.Title,
			userId:         s.customerID,
			body:           map[string]any{"seats": 0},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
			wantAvailable:  100,
		},
		{
			name:           "negative seats",
			title:          matrix.Title,
			userId:         s.customerID,
			body:           api.ReservationRequest{Seats: -4},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be at least 1",
			wantAvailable:  100,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			theaterID := s.theater.ID()
			if tt.theaterID != nil {
				theaterID = tt.theaterID()
			}

			u := fmt.Sprintf("/theaters/%s/movies/%s/reservations", theaterID, url.PathEscape(tt.title))
			w := executeRequest(s.T(), s.app, http.MethodPost, u, tt.body, tt.userId())

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.ReservationResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))

				tt.wantResponse.TheaterId = theaterID
				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			s.Equal(tt.wantAvailable, s.registry.CheckAvailability(s.theater.ID(), matrix.Title))

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

package app

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/metinatakli/seat-ledger/api"
)

func (s *LedgerTestSuite) TestCreateTheater() {
	tests := []struct {
		name           string
		body           any
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.TheaterResponse
	}{
		{
			name:       "creates theater",
			body:       api.CreateTheaterRequest{Name: "Uptown Screens", TotalSeats: 50},
			wantStatus: http.StatusCreated,
			wantResponse: &api.TheaterResponse{
				Name:       "Uptown Screens",
				TotalSeats: 50,
				Movies:     []api.MovieListing{},
			},
		},
		{
			name:           "missing seats",
			body:           map[string]any{"name": "Uptown Screens"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name:           "blank name",
			body:           api.CreateTheaterRequest{Name: "  ", TotalSeats: 50},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must not be blank",
		},
		{
			name:           "malformed body",
			body:           `{"name": "Uptown"`,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "body contains badly-formed JSON",
		},
		{
			name:           "unknown field",
			body:           `{"name": "Uptown", "totalSeats": 10, "price": 5}`,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `body contains unknown key "price"`,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			w := executeRequest(s.T(), s.app, http.MethodPost, "/theaters", tt.body, nil)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.TheaterResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response, cmpopts.IgnoreFields(api.TheaterResponse{}, "Id"))
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)

				s.Equal(fmt.Sprintf("/theaters/%s", response.Id), w.Header().Get("Location"))

				_, ok := s.registry.Theater(response.Id)
				s.True(ok, "theater was not registered")
			}

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

func (s *LedgerTestSuite) TestGetTheater() {
	_, err := s.registry.CustomerBookSeat(s.T().Context(), s.customer.ID, s.theater.ID(), matrix.Title, 5)
	s.Require().NoError(err)

	tests := []struct {
		name           string
		url            string
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.TheaterResponse
	}{
		{
			name:       "returns listings with availability",
			url:        fmt.Sprintf("/theaters/%s", s.theater.ID()),
			wantStatus: http.StatusOK,
			wantResponse: &api.TheaterResponse{
				Id:         s.theater.ID(),
				Name:       "Downtown Cinema",
				TotalSeats: 100,
				Movies: []api.MovieListing{
					{Movie: api.Movie{Title: "The Matrix", Duration: 136, Rating: "R"}, AvailableSeats: 95},
					{Movie: api.Movie{Title: "Inception", Duration: 148, Rating: "PG-13"}, AvailableSeats: 100},
				},
			},
		},
		{
			name:           "invalid theater ID",
			url:            "/theaters/not-a-uuid",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid theaterId path parameter",
		},
		{
			name:           "unknown theater",
			url:            fmt.Sprintf("/theaters/%s", uuid.New()),
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := executeRequest(s.T(), s.app, http.MethodGet, tt.url, nil, nil)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.TheaterResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

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

func (s *LedgerTestSuite) TestListTheaters() {
	w := executeRequest(s.T(), s.app, http.MethodPost, "/theaters",
		api.CreateTheaterRequest{Name: "Arcade Picture House", TotalSeats: 80}, nil)
	s.Require().Equal(http.StatusCreated, w.Code)

	w = executeRequest(s.T(), s.app, http.MethodGet, "/theaters", nil, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var response api.TheaterListResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))

	var names []string
	for _, t := range response.Theaters {
		names = append(names, t.Name)
	}

	s.Equal([]string{"Arcade Picture House", "Downtown Cinema"}, names)
}

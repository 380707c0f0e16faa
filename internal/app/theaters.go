package app

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/metinatakli/seat-ledger/api"
	"github.com/metinatakli/seat-ledger/internal/domain"
)

func (app *Application) CreateTheater(w http.ResponseWriter, r *http.Request) {
	var input api.CreateTheaterRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	theater, err := domain.NewTheater(input.Name, input.TotalSeats)
	if err != nil {
		app.registryErrorResponse(w, r, err)
		return
	}

	app.registry.AddTheater(theater)

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/theaters/%s", theater.ID()))

	err = app.writeJSON(w, http.StatusCreated, toTheaterResponse(theater), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListTheaters(w http.ResponseWriter, r *http.Request) {
	theaters := app.registry.Theaters()

	resp := api.TheaterListResponse{
		Theaters: make([]api.TheaterSummary, len(theaters)),
	}

	for i, t := range theaters {
		resp.Theaters[i] = api.TheaterSummary{
			Id:         t.ID(),
			Name:       t.Name(),
			TotalSeats: t.TotalSeats(),
		}
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTheater(w http.ResponseWriter, r *http.Request, theaterId uuid.UUID) {
	theater, ok := app.registry.Theater(theaterId)
	if !ok {
		app.contextGetLogger(r).Warn("theater not found", "theater_id", theaterId)
		app.notFoundResponse(w, r)
		return
	}

	err := app.writeJSON(w, http.StatusOK, toTheaterResponse(theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toTheaterResponse(theater *domain.Theater) api.TheaterResponse {
	movies := theater.Movies()

	resp := api.TheaterResponse{
		Id:         theater.ID(),
		Name:       theater.Name(),
		TotalSeats: theater.TotalSeats(),
		Movies:     make([]api.MovieListing, 0, len(movies)),
	}

	for _, m := range movies {
		available, _ := theater.Available(m.Title)
		resp.Movies = append(resp.Movies, toMovieListing(m, available))
	}

	return resp
}

func toMovieListing(movie domain.Movie, available int) api.MovieListing {
	return api.MovieListing{
		Movie: api.Movie{
			Title:    movie.Title,
			Duration: movie.Duration,
			Rating:   movie.Rating,
		},
		AvailableSeats: available,
	}
}

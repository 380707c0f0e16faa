package app

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/metinatakli/seat-ledger/api"
	"github.com/metinatakli/seat-ledger/internal/domain"
)

func (app *Application) AddMovie(w http.ResponseWriter, r *http.Request, theaterId uuid.UUID) {
	movie, ok := app.readMovie(w, r)
	if !ok {
		return
	}

	err := app.registry.EmployeeAddMovie(r.Context(), app.contextGetUserId(r), theaterId, movie)
	if err != nil {
		app.registryErrorResponse(w, r, err)
		return
	}

	// an already listed title keeps its original movie and seat count
	listing, ok := app.movieListing(theaterId, movie.Title)
	if !ok {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, listing, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateMovie replaces the movie listed under title.
func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, theaterId uuid.UUID, title string) {
	movie, ok := app.readMovie(w, r)
	if !ok {
		return
	}

	err := app.registry.EmployeeUpdateMovie(r.Context(), app.contextGetUserId(r), theaterId, title, movie)
	if err != nil {
		app.registryErrorResponse(w, r, err)
		return
	}

	listing, ok := app.movieListing(theaterId, movie.Title)
	if !ok {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, listing, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// readMovie decodes and validates a movie body, writing the error response
// itself when the body is unusable.
func (app *Application) readMovie(w http.ResponseWriter, r *http.Request) (domain.Movie, bool) {
	var input api.MovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return domain.Movie{}, false
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return domain.Movie{}, false
	}

	movie, err := domain.NewMovie(input.Title, input.Duration, strings.ToUpper(input.Rating))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return domain.Movie{}, false
	}

	return movie, true
}

func (app *Application) movieListing(theaterID uuid.UUID, title string) (api.MovieListing, bool) {
	theater, ok := app.registry.Theater(theaterID)
	if !ok {
		return api.MovieListing{}, false
	}

	for _, m := range theater.Movies() {
		if m.Title == title {
			available, _ := theater.Available(title)
			return toMovieListing(m, available), true
		}
	}

	return api.MovieListing{}, false
}

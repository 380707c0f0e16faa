package app

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/metinatakli/seat-ledger/api"
)

func (app *Application) GetAvailability(w http.ResponseWriter, r *http.Request, theaterId uuid.UUID, title string) {
	resp := api.AvailabilityResponse{
		TheaterId:      theaterId,
		Title:          title,
		AvailableSeats: app.registry.CheckAvailability(theaterId, title),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request, theaterId uuid.UUID, title string) {
	var input api.ReservationRequest

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

	remaining, err := app.registry.CustomerBookSeat(r.Context(), app.contextGetUserId(r), theaterId, title, input.Seats)
	if err != nil {
		app.registryErrorResponse(w, r, err)
		return
	}

	resp := api.ReservationResponse{
		TheaterId:      theaterId,
		Title:          title,
		ReservedSeats:  input.Seats,
		AvailableSeats: remaining,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

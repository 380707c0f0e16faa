package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/seat-ledger/api"
	"github.com/metinatakli/seat-ledger/internal/domain"
	appvalidator "github.com/metinatakli/seat-ledger/internal/validator"
)

const (
	ErrInternalServer       = "The server encountered a problem and could not process your request"
	ErrNotFound             = "The requested resource not found"
	ErrUnauthenticated      = "You must be authenticated to access this resource"
	ErrFailedValidation     = "One or more fields are invalid"
	ErrMethodNotAllowedTmpl = "The %s method is not supported for this resource"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.contextGetLogger(r).Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) notFoundResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, fmt.Sprintf(ErrMethodNotAllowedTmpl, r.Method))
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthenticated)
}

func (app *Application) forbiddenResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusForbidden, err.Error())
}

func (app *Application) editConflictResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: make([]api.ValidationError, len(validationErrors)),
	}

	for i, fe := range validationErrors {
		resp.ValidationErrors[i] = api.ValidationError{
			Field: fe.Field(),
			Issue: appvalidator.ValidationMessage(fe),
		}
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// paramErrorResponse reports path parameters the generated router could not bind.
func (app *Application) paramErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var paramErr *api.InvalidParamFormatError
	if errors.As(err, &paramErr) {
		app.badRequestResponse(w, r, fmt.Errorf("invalid %s path parameter", paramErr.ParamName))
		return
	}

	app.badRequestResponse(w, r, err)
}

// registryErrorResponse maps a booking registry failure to its HTTP status.
func (app *Application) registryErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		app.forbiddenResponse(w, r, err)
	case errors.Is(err, domain.ErrTheaterNotRegistered),
		errors.Is(err, domain.ErrMovieNotPlaying),
		errors.Is(err, domain.ErrMovieNotFound):
		app.notFoundResponseWithErr(w, r, err)
	case errors.Is(err, domain.ErrInsufficientSeats),
		errors.Is(err, domain.ErrMovieAlreadyListed):
		app.editConflictResponseWithErr(w, r, err)
	case errors.Is(err, domain.ErrInvalidSeatCount),
		errors.Is(err, domain.ErrInvalidMovie),
		errors.Is(err, domain.ErrInvalidTheater),
		errors.Is(err, domain.ErrRoleMismatch):
		app.badRequestResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/metinatakli/seat-ledger/api"
)

const userIdHeader = "X-User-ID"

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *Application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With("request_id", middleware.GetReqID(r.Context()))

		next.ServeHTTP(w, app.contextSetLogger(r, logger))
	})
}

// identifyUser stores the caller named by the X-User-ID header in the request
// context. Whether that caller may act is decided by the registry.
func (app *Application) identifyUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(userIdHeader)
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		userId, err := uuid.Parse(header)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("invalid X-User-ID header"))
			return
		}

		r = app.contextSetUserId(r, userId)
		r = app.contextSetLogger(r, app.contextGetLogger(r).With("user_id", userId))

		next.ServeHTTP(w, r)
	})
}

// requireIdentity rejects anonymous callers of operations secured by the
// userId scheme.
func (app *Application) requireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, secured := r.Context().Value(api.UserIdScopes).([]string)

		if secured && !app.contextHasUserId(r) {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

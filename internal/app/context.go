package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const (
	contextKeyUserId = contextKey("userID")
	contextKeyLogger = contextKey("logger")
)

func (k contextKey) String() string {
	return string(k)
}

func (app *Application) contextSetUserId(r *http.Request, userId uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), contextKeyUserId, userId)
	return r.WithContext(ctx)
}

func (app *Application) contextGetUserId(r *http.Request) uuid.UUID {
	userId, ok := r.Context().Value(contextKeyUserId).(uuid.UUID)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}

func (app *Application) contextHasUserId(r *http.Request) bool {
	_, ok := r.Context().Value(contextKeyUserId).(uuid.UUID)
	return ok
}

func (app *Application) contextSetLogger(r *http.Request, logger *slog.Logger) *http.Request {
	ctx := context.WithValue(r.Context(), contextKeyLogger, logger)
	return r.WithContext(ctx)
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(contextKeyLogger).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}

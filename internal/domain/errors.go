package domain

import "errors"

var (
	ErrUnauthorized         = errors.New("authorization error")
	ErrTheaterNotRegistered = errors.New("theater is not registered")
	ErrMovieNotPlaying      = errors.New("movie is not currently playing")
	ErrInsufficientSeats    = errors.New("not enough seats available")
	ErrMovieNotFound        = errors.New("movie not found")
	ErrMovieAlreadyListed   = errors.New("movie is already listed")
	ErrInvalidSeatCount     = errors.New("number of seats must be at least 1")
	ErrInvalidMovie         = errors.New("invalid movie")
	ErrInvalidTheater       = errors.New("invalid theater")
	ErrRoleMismatch         = errors.New("user has the wrong role")
)

package domain

import (
	"fmt"
	"strings"
)

// Movie is a value; a theater keeps its own copy and never mutates it.
type Movie struct {
	Title    string
	Duration int
	Rating   string
}

func NewMovie(title string, duration int, rating string) (Movie, error) {
	m := Movie{
		Title:    strings.TrimSpace(title),
		Duration: duration,
		Rating:   strings.TrimSpace(rating),
	}

	if err := m.Validate(); err != nil {
		return Movie{}, err
	}

	return m, nil
}

func (m Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidMovie)
	}

	if m.Duration < 1 {
		return fmt.Errorf("%w: duration must be a positive number of minutes, got %d", ErrInvalidMovie, m.Duration)
	}

	return nil
}

func (m Movie) String() string {
	return fmt.Sprintf("%s (%s) - %d mins", m.Title, m.Rating, m.Duration)
}

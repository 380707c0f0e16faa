package domain

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Theater owns the movies it is showing and the remaining seat count of each.
// Every listed title has exactly one entry in available, and every count stays
// within [0, totalSeats]. Identity and capacity are fixed by NewTheater.
type Theater struct {
	id         uuid.UUID
	name       string
	totalSeats int

	mu        sync.Mutex
	movies    []Movie
	available map[string]int
}

func NewTheater(name string, totalSeats int) (*Theater, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidTheater)
	}

	if totalSeats < 1 {
		return nil, fmt.Errorf("%w: total seats must be positive, got %d", ErrInvalidTheater, totalSeats)
	}

	return &Theater{
		id:         uuid.New(),
		name:       name,
		totalSeats: totalSeats,
		available:  make(map[string]int),
	}, nil
}

func (t *Theater) ID() uuid.UUID {
	return t.id
}

func (t *Theater) Name() string {
	return t.name
}

func (t *Theater) TotalSeats() int {
	return t.totalSeats
}

// AddMovie lists the movie with a full house of free seats. A movie whose
// title is already listed is left untouched and false is returned.
func (t *Theater) AddMovie(movie Movie) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.indexOf(movie.Title) >= 0 {
		return false
	}

	t.movies = append(t.movies, movie)
	t.available[movie.Title] = t.totalSeats

	return true
}

// UpdateMovie replaces the movie titled oldTitle with movie. The seat count
// restarts at the theater capacity; seats sold against the old title are discarded.
func (t *Theater) UpdateMovie(oldTitle string, movie Movie) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(oldTitle)
	if i < 0 {
		return fmt.Errorf("%w: '%s' is not listed at %s", ErrMovieNotFound, oldTitle, t.name)
	}

	if movie.Title != oldTitle && t.indexOf(movie.Title) >= 0 {
		return fmt.Errorf("%w: '%s' is already listed at %s", ErrMovieAlreadyListed, movie.Title, t.name)
	}

	t.movies[i] = movie
	delete(t.available, oldTitle)
	t.available[movie.Title] = t.totalSeats

	return nil
}

func (t *Theater) IsPlaying(title string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.indexOf(title) >= 0
}

// Movies returns a copy of the listing in the order movies were added.
func (t *Theater) Movies() []Movie {
	t.mu.Lock()
	defer t.mu.Unlock()

	movies := make([]Movie, len(t.movies))
	copy(movies, t.movies)

	return movies
}

func (t *Theater) Available(title string) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.available[title]
	return n, ok
}

// Reserve takes n seats for title if that many are free. The check and the
// decrement happen under the same lock, so concurrent callers cannot oversell.
func (t *Theater) Reserve(title string, n int) (int, error) {
	if n < 1 {
		return 0, ErrInvalidSeatCount
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.available[title]
	if !ok {
		return 0, fmt.Errorf("%w: '%s' is not currently playing at %s", ErrMovieNotPlaying, title, t.name)
	}

	if current < n {
		return current, fmt.Errorf(
			"%w: could not reserve %d seat(s), only %d seat(s) available for '%s'",
			ErrInsufficientSeats, n, current, title,
		)
	}

	t.available[title] = current - n

	return current - n, nil
}

func (t *Theater) String() string {
	return fmt.Sprintf("Theater: %s | Total Seats: %d", t.name, t.totalSeats)
}

func (t *Theater) indexOf(title string) int {
	for i, m := range t.movies {
		if m.Title == title {
			return i
		}
	}

	return -1
}

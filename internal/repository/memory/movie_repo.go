package memory

import (
	"context"
	"errors"
	"sync"
	"videostore/internal/domain/entities"
)

var (
	ErrMovieNotFound  = errors.New("movie not found")
	ErrMovieIDMissing = errors.New("movie has no id")
)

// MovieRepository is the in-memory movie catalogue. Movies are immutable, so
// the stored pointers can be handed out directly.
type MovieRepository struct {
	mu     sync.RWMutex
	movies map[string]*entities.Movie
	order  []string
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{
		movies: make(map[string]*entities.Movie),
	}
}

func (r *MovieRepository) Create(ctx context.Context, movie *entities.Movie) error {
	if movie.ID() == "" {
		return ErrMovieIDMissing
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.movies[movie.ID()]; !exists {
		r.order = append(r.order, movie.ID())
	}
	r.movies[movie.ID()] = movie
	return nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id string) (*entities.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, exists := r.movies[id]
	if !exists {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

// List returns every movie in the order it was added to the catalogue.
func (r *MovieRepository) List(ctx context.Context) ([]*entities.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*entities.Movie, 0, len(r.order))
	for _, id := range r.order {
		movies = append(movies, r.movies[id])
	}
	return movies, nil
}

// Delete removes a movie from the catalogue. Rentals already made keep their
// own reference to it, so existing statements are unaffected.
func (r *MovieRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.movies[id]; !exists {
		return ErrMovieNotFound
	}
	delete(r.movies, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"videostore/internal/domain/entities"
	"videostore/internal/repository"
	"videostore/internal/repository/memory"
	"videostore/pkg/utils"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrInvalidMovie  = errors.New("invalid movie")
)

// CatalogService manages the movies available for rent.
type CatalogService struct {
	movieRepo repository.MovieRepository
	logger    *zap.Logger
}

func NewCatalogService(movieRepo repository.MovieRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		movieRepo: movieRepo,
		logger:    logger.Named("catalog"),
	}
}

// MovieResponse is the JSON view of a catalogue entry.
type MovieResponse struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	PriceCode entities.PriceCode `json:"price_code"`
}

// QuoteResponse is the price and points a single rental would earn.
type QuoteResponse struct {
	PriceCode  entities.PriceCode `json:"price_code"`
	DaysRented int                `json:"days_rented"`
	Charge     string             `json:"charge"`
	Points     int                `json:"points"`
}

// PriceCodeResponse describes one tariff with the charge for a one-day rental.
type PriceCodeResponse struct {
	PriceCode    entities.PriceCode `json:"price_code"`
	OneDayCharge string             `json:"one_day_charge"`
	OneDayPoints int                `json:"one_day_points"`
}

func toMovieResponse(m *entities.Movie) *MovieResponse {
	return &MovieResponse{
		ID:        m.ID(),
		Title:     m.Title(),
		PriceCode: m.PriceCategory().Code(),
	}
}

// AddMovie resolves the price code, assigns an ID and stores the movie.
func (s *CatalogService) AddMovie(ctx context.Context, title string, code entities.PriceCode) (*MovieResponse, error) {
	policy, err := entities.PolicyFor(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMovie, err)
	}

	movie, err := entities.NewMovie(title, policy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMovie, err)
	}
	movie = movie.WithID(utils.GenerateID())

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.logger.Info("movie added",
		zap.String("movie_id", movie.ID()),
		zap.String("title", movie.Title()),
		zap.String("price_code", string(code)))

	return toMovieResponse(movie), nil
}

// GetMovie retrieves a movie by ID
func (s *CatalogService) GetMovie(ctx context.Context, movieID string) (*MovieResponse, error) {
	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return toMovieResponse(movie), nil
}

// ListMovies returns the whole catalogue
func (s *CatalogService) ListMovies(ctx context.Context) ([]*MovieResponse, error) {
	movies, err := s.movieRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResponse(m))
	}
	return out, nil
}

// RemoveMovie takes a movie out of the catalogue
func (s *CatalogService) RemoveMovie(ctx context.Context, movieID string) error {
	if err := s.movieRepo.Delete(ctx, movieID); err != nil {
		return translateRepoError(err)
	}
	s.logger.Info("movie removed", zap.String("movie_id", movieID))
	return nil
}

// Quote prices a hypothetical rental without recording anything.
func (s *CatalogService) Quote(code entities.PriceCode, days int) (*QuoteResponse, error) {
	policy, err := entities.PolicyFor(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMovie, err)
	}
	if err := entities.ValidateDays(days); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRental, err)
	}
	return &QuoteResponse{
		PriceCode:  code,
		DaysRented: days,
		Charge:     utils.FormatAmount(policy.Price(days)),
		Points:     policy.Points(days),
	}, nil
}

// PriceCodes lists every tariff the catalogue can assign.
func (s *CatalogService) PriceCodes() []PriceCodeResponse {
	policies := entities.Policies()
	out := make([]PriceCodeResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, PriceCodeResponse{
			PriceCode:    p.Code(),
			OneDayCharge: utils.FormatAmount(p.Price(1)),
			OneDayPoints: p.Points(1),
		})
	}
	return out
}

// demoMovies is the starter catalogue, one title per price code.
var demoMovies = []struct {
	title string
	code  entities.PriceCode
}{
	{"Mulan", entities.PriceCodeNewRelease},
	{"CitizenFour", entities.PriceCodeRegular},
	{"Frozen", entities.PriceCodeChildrens},
}

// SeedDemoCatalog adds the starter titles to the catalogue.
func (s *CatalogService) SeedDemoCatalog(ctx context.Context) ([]*MovieResponse, error) {
	seeded := make([]*MovieResponse, 0, len(demoMovies))
	for _, dm := range demoMovies {
		movie, err := s.AddMovie(ctx, dm.title, dm.code)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", dm.title, err)
		}
		seeded = append(seeded, movie)
	}
	return seeded, nil
}

// translateRepoError maps storage errors onto the service's own sentinels so
// handlers never import the repository package.
func translateRepoError(err error) error {
	switch {
	case errors.Is(err, memory.ErrMovieNotFound):
		return ErrMovieNotFound
	case errors.Is(err, memory.ErrCustomerNotFound):
		return ErrCustomerNotFound
	default:
		return err
	}
}

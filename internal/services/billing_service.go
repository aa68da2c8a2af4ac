package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"videostore/internal/config"
	"videostore/internal/domain/entities"
	"videostore/internal/repository"
	"videostore/pkg/utils"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidRental    = errors.New("invalid rental")
	ErrInvalidCustomer  = errors.New("invalid customer")
)

// BillingService records rentals against customers and produces their
// statements.
type BillingService struct {
	customerRepo        repository.CustomerRepository
	movieRepo           repository.MovieRepository
	notificationService *NotificationService
	logger              *zap.Logger
	statementWorkers    int
}

func NewBillingService(
	customerRepo repository.CustomerRepository,
	movieRepo repository.MovieRepository,
	notificationService *NotificationService,
	cfg *config.Config,
	logger *zap.Logger,
) *BillingService {
	workers := cfg.Billing.StatementWorkers
	if workers < 1 {
		workers = 1
	}
	return &BillingService{
		customerRepo:        customerRepo,
		movieRepo:           movieRepo,
		notificationService: notificationService,
		logger:              logger.Named("billing"),
		statementWorkers:    workers,
	}
}

// CustomerResponse is the JSON view of a customer and their running totals.
type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rentals     int    `json:"rentals"`
	TotalCharge string `json:"total_charge"`
	TotalPoints int    `json:"total_points"`
}

// RentalLineResponse is the JSON view of one statement line.
type RentalLineResponse struct {
	Title      string             `json:"title"`
	PriceCode  entities.PriceCode `json:"price_code"`
	DaysRented int                `json:"days_rented"`
	Charge     string             `json:"charge"`
	Points     int                `json:"points"`
}

// StatementResponse is the JSON view of a customer's statement.
type StatementResponse struct {
	CustomerID   string               `json:"customer_id"`
	CustomerName string               `json:"customer_name"`
	Lines        []RentalLineResponse `json:"lines"`
	TotalCharge  string               `json:"total_charge"`
	TotalPoints  int                  `json:"total_points"`
}

func toCustomerResponse(c *entities.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Rentals:     len(c.Rentals()),
		TotalCharge: utils.FormatAmount(c.TotalCharge()),
		TotalPoints: c.TotalPoints(),
	}
}

func toStatementResponse(customerID string, stmt entities.Statement) *StatementResponse {
	lines := make([]RentalLineResponse, 0, len(stmt.Lines))
	for _, l := range stmt.Lines {
		lines = append(lines, RentalLineResponse{
			Title:      l.Title,
			PriceCode:  l.PriceCode,
			DaysRented: l.DaysRented,
			Charge:     utils.FormatDecimal(l.Charge),
			Points:     l.Points,
		})
	}
	return &StatementResponse{
		CustomerID:   customerID,
		CustomerName: stmt.CustomerName,
		Lines:        lines,
		TotalCharge:  utils.FormatDecimal(stmt.TotalCharge),
		TotalPoints:  stmt.TotalPoints,
	}
}

// CreateCustomer registers a new customer with no rentals
func (s *BillingService) CreateCustomer(ctx context.Context, name string) (*CustomerResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidCustomer)
	}

	customer := entities.NewCustomer(name)
	customer.ID = utils.GenerateID()

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer created",
		zap.String("customer_id", customer.ID),
		zap.String("name", customer.Name))

	return toCustomerResponse(customer), nil
}

// GetCustomer retrieves a customer by ID
func (s *BillingService) GetCustomer(ctx context.Context, customerID string) (*CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return toCustomerResponse(customer), nil
}

// ListCustomers returns every customer with their totals
func (s *BillingService) ListCustomers(ctx context.Context) ([]*CustomerResponse, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// RemoveCustomer deletes a customer together with their rental history
func (s *BillingService) RemoveCustomer(ctx context.Context, customerID string) error {
	if err := s.customerRepo.Delete(ctx, customerID); err != nil {
		return translateRepoError(err)
	}
	s.logger.Info("customer removed", zap.String("customer_id", customerID))
	return nil
}

// RentMovie records a rental of movieID for the given number of days and
// returns the resulting statement line.
func (s *BillingService) RentMovie(ctx context.Context, customerID, movieID string, days int) (*RentalLineResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	rental, err := entities.NewRental(movie, days)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRental, err)
	}

	if err := s.customerRepo.AddRental(ctx, customerID, rental); err != nil {
		return nil, translateRepoError(err)
	}

	s.notificationService.NotifyRentalRecorded(customer, rental)

	return &RentalLineResponse{
		Title:      movie.Title(),
		PriceCode:  movie.PriceCategory().Code(),
		DaysRented: rental.DaysRented(),
		Charge:     utils.FormatAmount(rental.Price()),
		Points:     rental.RentalPoints(),
	}, nil
}

// Statement renders the customer's text statement
func (s *BillingService) Statement(ctx context.Context, customerID string) (string, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return "", translateRepoError(err)
	}

	stmt := customer.BuildStatement()
	s.notificationService.NotifyStatementIssued(customerID, stmt)
	return stmt.String(), nil
}

// StatementSummary returns the customer's statement in structured form
func (s *BillingService) StatementSummary(ctx context.Context, customerID string) (*StatementResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	stmt := customer.BuildStatement()
	s.notificationService.NotifyStatementIssued(customerID, stmt)
	return toStatementResponse(customerID, stmt), nil
}

// AllStatements builds the statement of every customer.
//
// Go Learning Note — Worker Pools:
// Each customer's statement depends only on that customer's own snapshot, so
// the work splits cleanly. A fixed number of goroutines read customer
// snapshots from a jobs channel and write results into their own slot of a
// pre-sized slice. Because every goroutine writes a different index, the
// slice needs no mutex; wg.Wait() is the only synchronization. The select on
// ctx.Done() lets a cancelled request stop handing out new work.
func (s *BillingService) AllStatements(ctx context.Context) ([]*StatementResponse, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	type job struct {
		index    int
		customer *entities.Customer
	}

	results := make([]*StatementResponse, len(customers))
	jobs := make(chan job)

	var wg sync.WaitGroup
	for w := 0; w < s.statementWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = toStatementResponse(j.customer.ID, j.customer.BuildStatement())
			}
		}()
	}

dispatch:
	for i, c := range customers {
		select {
		case jobs <- job{index: i, customer: c}:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Debug("statements generated", zap.Int("customers", len(results)))
	return results, nil
}

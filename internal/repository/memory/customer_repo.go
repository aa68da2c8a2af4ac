package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"videostore/internal/domain/entities"
)

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository stores customers in memory.
//
// Go Learning Note — Copy on Read:
// A Customer's rental list grows through AddRental while other requests may be
// rendering its statement. Instead of locking each Customer, the repository
// owns the only mutable copy and hands callers a Clone() taken under the read
// lock. Readers then work on a private snapshot with no further locking.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*entities.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers: make(map[string]*entities.Customer),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *entities.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.customers[customer.ID] = customer.Clone()
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entities.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, exists := r.customers[id]
	if !exists {
		return nil, ErrCustomerNotFound
	}
	return customer.Clone(), nil
}

// List returns snapshots of every customer sorted by name, then ID.
func (r *CustomerRepository) List(ctx context.Context) ([]*entities.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]*entities.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		customers = append(customers, customer.Clone())
	}
	sort.Slice(customers, func(i, j int) bool {
		if customers[i].Name != customers[j].Name {
			return customers[i].Name < customers[j].Name
		}
		return customers[i].ID < customers[j].ID
	})
	return customers, nil
}

// AddRental appends a rental to the stored customer.
func (r *CustomerRepository) AddRental(ctx context.Context, customerID string, rental *entities.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, exists := r.customers[customerID]
	if !exists {
		return ErrCustomerNotFound
	}
	customer.AddRental(rental)
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[id]; !exists {
		return ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

package repository

import (
	"context"
	"videostore/internal/domain/entities"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entities.Movie) error
	GetByID(ctx context.Context, id string) (*entities.Movie, error)
	List(ctx context.Context) ([]*entities.Movie, error)
	Delete(ctx context.Context, id string) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *entities.Customer) error
	GetByID(ctx context.Context, id string) (*entities.Customer, error)
	List(ctx context.Context) ([]*entities.Customer, error)
	AddRental(ctx context.Context, customerID string, rental *entities.Rental) error
	Delete(ctx context.Context, id string) error
}

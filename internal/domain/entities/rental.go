package entities

import "fmt"

// Rental is one movie rented for a whole number of days. The rental period is
// recorded directly rather than derived from pickup and return dates.
type Rental struct {
	movie      *Movie
	daysRented int
}

// MaxDaysRented caps a single rental at one year. Charges and points stay far
// from overflow even when many long rentals are summed.
const MaxDaysRented = 365

// ValidateDays reports whether daysRented is a rental period the store accepts.
func ValidateDays(daysRented int) error {
	switch {
	case daysRented < 0:
		return ErrNegativeDays
	case daysRented > MaxDaysRented:
		return fmt.Errorf("%w: %d > %d", ErrRentalTooLong, daysRented, MaxDaysRented)
	}
	return nil
}

// NewRental creates a Rental. Out-of-range durations are rejected here so
// that no negative or runaway charge can ever reach a statement.
func NewRental(movie *Movie, daysRented int) (*Rental, error) {
	if movie == nil {
		return nil, ErrNilMovie
	}
	if err := ValidateDays(daysRented); err != nil {
		return nil, err
	}
	return &Rental{movie: movie, daysRented: daysRented}, nil
}

func (r *Rental) Movie() *Movie { return r.movie }

func (r *Rental) DaysRented() int { return r.daysRented }

// Price delegates to the movie's pricing policy.
func (r *Rental) Price() float64 {
	return r.movie.Price(r.daysRented)
}

// RentalPoints delegates to the movie's pricing policy.
func (r *Rental) RentalPoints() int {
	return r.movie.RentalPoints(r.daysRented)
}

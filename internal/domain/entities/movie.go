package entities

import "strings"

// Movie is a title available for rent together with the pricing policy chosen
// for it. A Movie never changes after construction and may be shared by any
// number of rentals.
//
// Go Learning Note — Unexported Fields:
// The fields are lowercase, so code outside this package can only read them
// through the accessor methods. That is how Go expresses "immutable after
// construction": there is simply no exported way to assign to them.
type Movie struct {
	id     string
	title  string
	policy PricingPolicy
}

// NewMovie creates a Movie. A nil policy is rejected rather than priced as
// zero later on.
func NewMovie(title string, policy PricingPolicy) (*Movie, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if policy == nil {
		return nil, ErrUnknownPriceCode
	}
	return &Movie{title: title, policy: policy}, nil
}

// WithID returns a copy of the movie carrying the given catalogue ID.
func (m *Movie) WithID(id string) *Movie {
	cp := *m
	cp.id = id
	return &cp
}

func (m *Movie) ID() string { return m.id }

func (m *Movie) Title() string { return m.title }

// PriceCategory returns the policy the movie is priced by.
func (m *Movie) PriceCategory() PricingPolicy { return m.policy }

// Price is the charge for renting this movie for the given number of days.
func (m *Movie) Price(days int) float64 {
	return m.policy.Price(days)
}

// RentalPoints is the number of frequent-renter points earned for the rental.
func (m *Movie) RentalPoints(days int) int {
	return m.policy.Points(days)
}

func (m *Movie) String() string { return m.title }

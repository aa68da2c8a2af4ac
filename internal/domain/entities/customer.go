package entities

import "github.com/shopspring/decimal"

// Customer owns an ordered list of rentals. Rentals are only ever appended, and
// their order is the order the statement lists them in.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	rentals []*Rental
}

// NewCustomer creates a Customer with no rentals.
//
// Go Learning Note — nil Slices:
// rentals starts out nil. A nil slice has length 0, ranges zero times and can
// be appended to, so there is no need to allocate an empty slice up front.
func NewCustomer(name string) *Customer {
	return &Customer{Name: name}
}

// AddRental appends a rental to the end of the customer's list. No de-duplication
// is done; renting the same movie twice produces two lines.
func (c *Customer) AddRental(rental *Rental) {
	c.rentals = append(c.rentals, rental)
}

// Rentals returns a copy of the rental list in insertion order.
func (c *Customer) Rentals() []*Rental {
	out := make([]*Rental, len(c.rentals))
	copy(out, c.rentals)
	return out
}

// Clone returns a customer with its own rental slice. Rentals themselves are
// immutable and are shared.
func (c *Customer) Clone() *Customer {
	cp := *c
	cp.rentals = c.Rentals()
	return &cp
}

// TotalCharge sums the price of every rental. The sum is carried out in
// decimal so that long statements do not accumulate float drift.
func (c *Customer) TotalCharge() float64 {
	return c.totalChargeDecimal().InexactFloat64()
}

// TotalPoints sums the frequent-renter points of every rental.
func (c *Customer) TotalPoints() int {
	total := 0
	for _, r := range c.rentals {
		total += r.RentalPoints()
	}
	return total
}

func (c *Customer) totalChargeDecimal() decimal.Decimal {
	total := decimal.Zero
	for _, r := range c.rentals {
		total = total.Add(decimal.NewFromFloat(r.Price()))
	}
	return total
}

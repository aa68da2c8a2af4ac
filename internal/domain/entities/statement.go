package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StatementLine is the billing detail of a single rental.
type StatementLine struct {
	Title      string
	PriceCode  PriceCode
	DaysRented int
	Charge     decimal.Decimal
	Points     int
}

// Statement is the structured form of a customer's bill. Statement() renders it
// as text; the HTTP API serves it as JSON.
type Statement struct {
	CustomerName string
	Lines        []StatementLine
	TotalCharge  decimal.Decimal
	TotalPoints  int
}

const (
	titleColumnWidth = 32
	daysColumnWidth  = 5
	priceColumnWidth = 9
)

// BuildStatement collects one line per rental, in insertion order, along with
// the totals.
func (c *Customer) BuildStatement() Statement {
	stmt := Statement{
		CustomerName: c.Name,
		Lines:        make([]StatementLine, 0, len(c.rentals)),
		TotalCharge:  c.totalChargeDecimal(),
		TotalPoints:  c.TotalPoints(),
	}
	for _, r := range c.rentals {
		stmt.Lines = append(stmt.Lines, StatementLine{
			Title:      r.Movie().Title(),
			PriceCode:  r.Movie().PriceCategory().Code(),
			DaysRented: r.DaysRented(),
			Charge:     decimal.NewFromFloat(r.Price()),
			Points:     r.RentalPoints(),
		})
	}
	return stmt
}

// Statement renders the customer's bill as text. The total always appears as
// "Total Charges" followed by whitespace and a two-decimal amount.
func (c *Customer) Statement() string {
	return c.BuildStatement().String()
}

// String renders the statement as a fixed-width text report.
//
// Go Learning Note — strings.Builder:
// Concatenating strings with + in a loop copies the whole string every time.
// strings.Builder grows a single buffer instead, and fmt.Fprintf can write
// straight into it because *strings.Builder implements io.Writer.
func (s Statement) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Rental Report for %s\n\n", s.CustomerName)
	fmt.Fprintf(&b, "%-*s %*s %*s\n",
		titleColumnWidth, "Movie Title",
		daysColumnWidth, "Days",
		priceColumnWidth, "Price")

	for _, line := range s.Lines {
		fmt.Fprintf(&b, "%-*s %*d %*s\n",
			titleColumnWidth, line.Title,
			daysColumnWidth, line.DaysRented,
			priceColumnWidth, line.Charge.StringFixed(2))
	}

	fmt.Fprintf(&b, "%-*s %*s %*s\n",
		titleColumnWidth, "Total Charges",
		daysColumnWidth, "",
		priceColumnWidth, s.TotalCharge.StringFixed(2))
	fmt.Fprintf(&b, "Frequent Renter Points earned: %d\n", s.TotalPoints)

	return b.String()
}

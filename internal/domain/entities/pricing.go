// Package entities defines the core domain models for the video store: pricing
// policies, movies, rentals and customers. They live in the innermost layer of
// the architecture and have no dependencies on storage, HTTP, or logging.
//
// Go Learning Note — "internal/" directory:
// Packages under internal/ cannot be imported by code outside this module. Go
// enforces this at the compiler level, so the domain stays an implementation
// detail of this repository.
package entities

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPriceCode = errors.New("unknown price code")
	ErrNegativeDays     = errors.New("days rented must not be negative")
	ErrRentalTooLong    = errors.New("days rented exceeds the maximum rental period")
	ErrNilMovie         = errors.New("rental requires a movie")
	ErrEmptyTitle       = errors.New("movie title is required")
)

// PriceCode is a typed string enum naming a pricing policy at the boundary
// (JSON payloads, config, feature files).
type PriceCode string

const (
	PriceCodeNewRelease PriceCode = "new_release"
	PriceCodeRegular    PriceCode = "regular"
	PriceCodeChildrens  PriceCode = "childrens"
)

// PricingPolicy computes the charge and frequent-renter points for a rental of
// the given number of days.
//
// Go Learning Note — Sealed Interfaces:
// Go has no "sealed" or "final" keyword. Adding an unexported method to an
// interface has the same effect: only types declared in this package can
// implement it. The set of policies is therefore closed at compile time, and
// the three package-level values below are the only policies that exist.
type PricingPolicy interface {
	Code() PriceCode
	Price(days int) float64
	Points(days int) int
	sealed()
}

// The shared policy values. Policies carry no state, so a single value per
// category serves every Movie.
//
// Go Learning Note — Zero-Size Types:
// An empty struct occupies zero bytes. Every newReleasePolicy{} is
// indistinguishable from every other, so comparing two PricingPolicy interface
// values with == is true whenever their dynamic types match.
var (
	NewRelease PricingPolicy = newReleasePolicy{}
	Regular    PricingPolicy = regularPolicy{}
	Childrens  PricingPolicy = childrensPolicy{}
)

// Policies lists every pricing policy in a stable order.
func Policies() []PricingPolicy {
	return []PricingPolicy{NewRelease, Regular, Childrens}
}

// PolicyFor resolves a price code to its policy.
func PolicyFor(code PriceCode) (PricingPolicy, error) {
	switch code {
	case PriceCodeNewRelease:
		return NewRelease, nil
	case PriceCodeRegular:
		return Regular, nil
	case PriceCodeChildrens:
		return Childrens, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPriceCode, code)
	}
}

// newReleasePolicy charges 3.00 per day and earns one point per day.
type newReleasePolicy struct{}

func (newReleasePolicy) Code() PriceCode { return PriceCodeNewRelease }

func (newReleasePolicy) Price(days int) float64 {
	return 3.0 * float64(days)
}

func (newReleasePolicy) Points(days int) int {
	return days
}

func (newReleasePolicy) sealed() {}

// regularPolicy charges 2.00 for the first two days, then 1.50 per extra day.
type regularPolicy struct{}

func (regularPolicy) Code() PriceCode { return PriceCodeRegular }

func (regularPolicy) Price(days int) float64 {
	return tieredPrice(days, 2.0, 2, 1.5)
}

func (regularPolicy) Points(int) int { return 1 }

func (regularPolicy) sealed() {}

// childrensPolicy charges 1.50 for the first three days, then 1.50 per extra day.
type childrensPolicy struct{}

func (childrensPolicy) Code() PriceCode { return PriceCodeChildrens }

func (childrensPolicy) Price(days int) float64 {
	return tieredPrice(days, 1.5, 3, 1.5)
}

func (childrensPolicy) Points(int) int { return 1 }

func (childrensPolicy) sealed() {}

// tieredPrice is a flat base fee covering includedDays, plus perExtraDay for
// every day beyond that.
func tieredPrice(days int, base float64, includedDays int, perExtraDay float64) float64 {
	price := base
	if days > includedDays {
		price += perExtraDay * float64(days-includedDays)
	}
	return price
}

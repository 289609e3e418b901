// Package money provides a cents-backed amount type for expense tracking.
//
// Amounts are stored as integer cents to avoid floating-point drift in
// totals and percentage breakdowns. Parsing accepts both dot and comma
// decimal separators and rounds half-up on the third decimal place.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a monetary value in cents.
type Amount int64

// Parse converts a decimal string to an Amount.
//
// Only strictly positive values are accepted: zero, negative, and signed
// inputs all yield ErrInvalidAmount.
//
// Examples:
//
//	Parse("12.34") -> 1234, nil
//	Parse("12,34") -> 1234, nil
//	Parse("12.346") -> 1235, nil (rounds up)
//	Parse("0") -> 0, ErrInvalidAmount
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}

	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return Amount(cents), nil
}

// FromFloat converts a float amount (e.g. a budget value) to cents with
// half-up rounding. Intended for display-layer inputs, not arithmetic.
func FromFloat(f float64) Amount {
	if f < 0 {
		return 0
	}
	return Amount(f*100 + 0.5)
}

// Float64 returns the amount in whole currency units for display.
// Use cents for calculations.
func (a Amount) Float64() float64 {
	return float64(a) / 100.0
}

// String formats the amount with two decimal places.
func (a Amount) String() string {
	neg := a < 0
	v := int64(a)
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d.%02d", v/100, v%100)
	if neg {
		return "-" + s
	}
	return s
}

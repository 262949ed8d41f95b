package bank

import (
	"errors"
	"fmt"
)

// ErrSamplingDeficit is matched by *SamplingDeficitError.
var ErrSamplingDeficit = errors.New("sampling deficit")

// ErrUnknownBank is returned when no embedded bank has the requested name.
var ErrUnknownBank = errors.New("unknown question bank")

// SamplingDeficitError indicates a category could not supply its target
// count even after padding from neighbouring difficulty tiers.
type SamplingDeficitError struct {
	Category Category
	Want     int
	Have     int
}

func (e *SamplingDeficitError) Error() string {
	return fmt.Sprintf("category %s: want %d items, bank has %d", e.Category, e.Want, e.Have)
}

func (e *SamplingDeficitError) Unwrap() error { return ErrSamplingDeficit }

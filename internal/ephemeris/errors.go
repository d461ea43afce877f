package ephemeris

import (
	"errors"
	"fmt"

	"github.com/electa-app/electa/internal/contracts"
)

// Supported epoch. The VSOP87 truncated series degrade outside a few
// thousand years of J2000; this window is the range the service vouches for.
const (
	MinYear = 1800
	MaxYear = 2400
)

// RangeError reports an instant outside the supported ephemeris epoch.
// User-correctable: surfaced as a rejected request.
type RangeError struct {
	Date string
	Year int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ephemeris: date %s (year %d) outside supported epoch %d-%d",
		e.Date, e.Year, MinYear, MaxYear)
}

// ComputeError reports a numerical failure in position derivation for one
// instant. Ephemeris computation is deterministic, so it is never retried.
type ComputeError struct {
	Body contracts.Body
	Date string
	Err  error
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("ephemeris: computing %s at %s: %v", e.Body, e.Date, e.Err)
}

func (e *ComputeError) Unwrap() error { return e.Err }

// IsRangeError reports whether err is (or wraps) a RangeError.
func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}

// IsComputeError reports whether err is (or wraps) a ComputeError.
func IsComputeError(err error) bool {
	var ce *ComputeError
	return errors.As(err, &ce)
}

package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrValidation covers malformed, duplicate, or otherwise invalid input records.
	ErrValidation = errors.New("population validation failed")

	// ErrInvalidParameters covers non-positive z or margin of error, or a zero population.
	ErrInvalidParameters = errors.New("invalid sampling parameters")

	// ErrDegenerateVariance is raised for a zero-variance stratum with no override
	// when the full-census fallback is disabled.
	ErrDegenerateVariance = errors.New("degenerate variance")

	// ErrInsufficientPopulation is raised when a draw requests more records than a stratum holds.
	ErrInsufficientPopulation = errors.New("insufficient population")

	// ErrIncompleteRun is raised at audit assembly when decisions and results do not match up.
	ErrIncompleteRun = errors.New("incomplete run")

	// ErrNotFound covers ledger lookups for unknown runs.
	ErrNotFound = errors.New("resource not found")
)

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrValidation, field, reason)
}

func NewInvalidParametersError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameters, reason)
}

func NewDegenerateVarianceError(stratum StratumLabel) error {
	return fmt.Errorf("%w: stratum %q has zero cost variance, no override, and census fallback disabled", ErrDegenerateVariance, stratum)
}

func NewInsufficientPopulationError(stratum StratumLabel, requested, available int) error {
	return fmt.Errorf("%w: stratum %q: requested %d of %d records", ErrInsufficientPopulation, stratum, requested, available)
}

func NewIncompleteRunError(stratum StratumLabel, missing string) error {
	return fmt.Errorf("%w: stratum %q has no matching %s", ErrIncompleteRun, stratum, missing)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsInvalidParametersError(err error) bool {
	return errors.Is(err, ErrInvalidParameters)
}

func IsDegenerateVarianceError(err error) bool {
	return errors.Is(err, ErrDegenerateVariance)
}

func IsInsufficientPopulationError(err error) bool {
	return errors.Is(err, ErrInsufficientPopulation)
}

func IsIncompleteRunError(err error) bool {
	return errors.Is(err, ErrIncompleteRun)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

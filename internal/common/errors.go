// Package common defines shared sentinel errors used across the storefront
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository/catalog-level errors.
	ErrorNotFound = errors.New("not found")

	// Input validation errors; wrapped with a human-readable reason.
	ErrorValidation = errors.New("validation error")
)

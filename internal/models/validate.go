package models

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks an entity against its struct tags. The same constraints are
// enforced server-side by the collection validators in internal/database, so
// a document passing here should never be rejected by the storage layer.
func Validate(v any) error {
	return validate.Struct(v)
}

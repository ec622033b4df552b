package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Single validator instance shared by all services, as the package docs suggest
var validate = validator.New()

// validateInput runs struct validation and folds failures into ErrValidation
// so callers can tell malformed input apart from domain conditions
func validateInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// registerSuffix adds the "suffix" rule: a file extension starting with a dot
// and free of path separators.
func registerSuffix(validate *validator.Validate) error {
	if err := validate.RegisterValidation("suffix", validateSuffix); err != nil {
		return fmt.Errorf("registering suffix validation: %w", err)
	}

	return nil
}

func validateSuffix(fl validator.FieldLevel) bool {
	suffix := fl.Field().String()

	return len(suffix) > 1 && strings.HasPrefix(suffix, ".") && !strings.ContainsAny(suffix, `/\`)
}

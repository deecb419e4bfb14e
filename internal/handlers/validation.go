package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validationErrorMessage turns binding failures into messages a client
// can act on without seeing Go struct internals.
func validationErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, ve := range verrs {
			field := strings.ToLower(ve.Field())
			switch ve.Tag() {
			case "required":
				return fmt.Sprintf("%s is required", field)
			case "hexcolor":
				return fmt.Sprintf("%s must contain hex colors like #1a2b3c", field)
			case "min":
				return fmt.Sprintf("%s must have at least %s entries or characters", field, ve.Param())
			case "max":
				return fmt.Sprintf("%s must have at most %s entries or characters", field, ve.Param())
			case "oneof":
				return fmt.Sprintf("%s must be one of: %s", field, ve.Param())
			}
		}
	}
	return "invalid request"
}

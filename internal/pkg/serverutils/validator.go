package serverutils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and maps the first failure to
// a 400 with a readable field message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Field '%s' failed on '%s' validation", first.Field(), first.Tag()))
	}
	return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
}

package controllers

import (
	"strings"

	"github.com/pcrantfo/3-movie-api/models"

	"github.com/go-playground/validator/v10"
)

// validationErrors maps binding failures to client-facing field errors.
// A malformed body (not a validation failure) yields a single generic entry.
func validationErrors(err error) []models.FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []models.FieldError{{Field: "body", Message: "Invalid request format"}}
	}

	out := make([]models.FieldError, 0, len(ve))
	for _, e := range ve {
		field := strings.ToLower(e.Field())
		var message string
		switch field {
		case "username":
			switch e.Tag() {
			case "min":
				message = "Username must be at least 5 characters long."
			case "alphanum":
				message = "Username contains non alphanumeric characters - not allowed."
			default:
				message = "Username is required."
			}
		case "password":
			message = "Password is required."
		case "email":
			message = "Email does not appear to be valid."
		default:
			message = "Invalid value."
		}
		out = append(out, models.FieldError{Field: field, Message: message})
	}
	return out
}

// Package validation wraps go-playground/validator with a shared instance
// and field -> message error maps suitable for JSON responses.
package validation

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance
}

// FieldErrors maps lowercased field names to human-readable messages.
type FieldErrors map[string]string

// Error implements the error interface.
func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Struct validates v against its `validate` tags. Returns nil when valid.
func Struct(v any) FieldErrors {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"request": "invalid request"}
	}

	fe := make(FieldErrors, len(verrs))
	for _, f := range verrs {
		fe[strings.ToLower(f.Field())] = messageFor(f)
	}
	return fe
}

func messageFor(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Must be at least " + f.Param() + " characters"
	case "max":
		return "Must be at most " + f.Param() + " characters"
	case "oneof":
		return "Must be one of: " + f.Param()
	default:
		return "Invalid value"
	}
}

package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	pkerrors "github.com/devlance074/pricing-ui-kit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their config key rather than the Go name.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("host_key_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			if strings.ContainsRune(path, '\x00') {
				return false
			}
			return filepath.Clean(path) != "."
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks value ranges on a loaded configuration.
func Validate(cfg Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := strings.TrimPrefix(ve.Namespace(), "Config.")
		return pkerrors.NewValidationError(field, describe(ve), err)
	}
	return pkerrors.NewValidationError("config", err.Error(), err)
}

func describe(ve validator.FieldError) string {
	switch ve.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", ve.Param(), ve.Value())
	case "min", "max":
		return fmt.Sprintf("must satisfy %s=%s, got %v", ve.Tag(), ve.Param(), ve.Value())
	case "gt":
		return fmt.Sprintf("must be greater than %s", ve.Param())
	case "host_key_path":
		return "must name a file, not the current directory"
	default:
		return fmt.Sprintf("failed validation for tag '%s'", ve.Tag())
	}
}

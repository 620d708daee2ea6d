package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/devlance074/pricing-ui-kit/internal/theme"
	pkerrors "github.com/devlance074/pricing-ui-kit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("token", func(fl validator.FieldLevel) bool {
			_, err := theme.ParseToken(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a catalog.
func Validate(c *Catalog) error {
	if c == nil {
		return pkerrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	for id, page := range c.Pages {
		if err := validateBilling(id, page); err != nil {
			return err
		}
		if err := validatePopular(id, page.Plans, "plans"); err != nil {
			return err
		}
	}

	return nil
}

// validateBilling checks that a yearly table mirrors the monthly one plan for
// plan and that every yearly plan names the price it replaces.
func validateBilling(id string, page Page) error {
	if !page.HasBillingToggle() {
		return nil
	}
	if len(page.Yearly) != len(page.Plans) {
		return pkerrors.NewValidationError(
			fieldFor(id, "yearly"),
			fmt.Sprintf("has %d plans, monthly table has %d", len(page.Yearly), len(page.Plans)),
			nil,
		)
	}
	for i, yearly := range page.Yearly {
		if yearly.Name != page.Plans[i].Name {
			return pkerrors.NewValidationError(
				fieldFor(id, fmt.Sprintf("yearly[%d].name", i)),
				fmt.Sprintf("%q does not match monthly plan %q", yearly.Name, page.Plans[i].Name),
				nil,
			)
		}
		if yearly.OriginalPrice == "" {
			return pkerrors.NewValidationError(fieldFor(id, fmt.Sprintf("yearly[%d].original_price", i)), "is required", nil)
		}
	}
	return validatePopular(id, page.Yearly, "yearly")
}

func validatePopular(id string, plans []Plan, field string) error {
	count := 0
	for _, p := range plans {
		if p.Popular {
			count++
		}
	}
	if count > 1 {
		return pkerrors.NewValidationError(fieldFor(id, field), fmt.Sprintf("%d plans marked popular, at most one allowed", count), nil)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return pkerrors.NewValidationError(field, msg, err)
	}

	return pkerrors.NewValidationError("catalog", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldFor(id, field string) string {
	return fmt.Sprintf("pages.%s.%s", id, field)
}

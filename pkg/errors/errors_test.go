package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("catalog.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "catalog.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "catalog.yaml:12")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("pages.centered.yearly[0].original_price", "is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "pages.centered.yearly[0].original_price", validationErr.Field)
	require.Contains(t, validationErr.Message, "is required")
}

func TestUnknownVariantErrorNamesFallback(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("select: %w", NewUnknownVariantError("nonexistent", "classic"))

	var unknownErr *UnknownVariantError
	require.ErrorAs(t, err, &unknownErr)
	require.Equal(t, "nonexistent", unknownErr.ID)
	require.Equal(t, "classic", unknownErr.Fallback)
	require.Contains(t, err.Error(), `using "classic"`)
}

func TestUnknownVariantErrorWithoutFallback(t *testing.T) {
	t.Parallel()

	err := NewUnknownVariantError("ghost", "")
	require.Equal(t, `unknown variant "ghost"`, err.Error())
	var unknownErr *UnknownVariantError
	require.False(t, stdErrors.As(stdErrors.New("other"), &unknownErr))
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var unknownErr *UnknownVariantError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, unknownErr.Error())
}

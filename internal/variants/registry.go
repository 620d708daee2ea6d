package variants

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/devlance074/pricing-ui-kit/internal/theme"
	pkerrors "github.com/devlance074/pricing-ui-kit/pkg/errors"
)

// Descriptor binds a variant id to its display name, accent and factory.
type Descriptor struct {
	ID          string         `validate:"required"`
	DisplayName string         `validate:"required"`
	Accent      theme.AccentID `validate:"required,accent"`
	New         Factory        `validate:"required"`
}

// Registry is the ordered, immutable list of variants. The first entry is
// the default.
type Registry struct {
	descs []Descriptor
	index map[string]int
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("accent", func(fl validator.FieldLevel) bool {
			return theme.Known(theme.AccentID(fl.Field().String()))
		})

		validateInst = v
	})

	return validateInst
}

// NewRegistry validates the descriptors and builds a registry. Ids must be
// unique and every accent must belong to the closed accent set.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	if len(descs) == 0 {
		return nil, pkerrors.NewValidationError("variants", "at least one variant is required", nil)
	}

	r := &Registry{
		descs: make([]Descriptor, 0, len(descs)),
		index: make(map[string]int, len(descs)),
	}
	v := validatorInstance()
	for i, d := range descs {
		if err := v.Struct(d); err != nil {
			return nil, convertValidationError(i, err)
		}
		if _, exists := r.index[d.ID]; exists {
			return nil, pkerrors.NewValidationError(
				fmt.Sprintf("variants[%d].id", i),
				fmt.Sprintf("duplicate variant id %q", d.ID),
				nil,
			)
		}
		r.index[d.ID] = len(r.descs)
		r.descs = append(r.descs, d)
	}
	return r, nil
}

func convertValidationError(i int, err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := fmt.Sprintf("variants[%d].%s", i, ve.Field())
		return pkerrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag()), err)
	}
	return pkerrors.NewValidationError(fmt.Sprintf("variants[%d]", i), err.Error(), err)
}

// FindByID returns the descriptor with the given id.
func (r *Registry) FindByID(id string) (Descriptor, bool) {
	i, ok := r.index[id]
	if !ok {
		return Descriptor{}, false
	}
	return r.descs[i], true
}

// Resolve returns the descriptor for id, or the default with an
// UnknownVariantError when the id is not registered. The descriptor is
// always usable.
func (r *Registry) Resolve(id string) (Descriptor, error) {
	if d, ok := r.FindByID(id); ok {
		return d, nil
	}
	def := r.Default()
	return def, pkerrors.NewUnknownVariantError(id, def.ID)
}

// Default returns the first registered descriptor.
func (r *Registry) Default() Descriptor {
	return r.descs[0]
}

// All returns a copy of the descriptors in registry order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.descs))
	copy(out, r.descs)
	return out
}

// IDs lists the ids in registry order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.descs))
	for i, d := range r.descs {
		ids[i] = d.ID
	}
	return ids
}

// Len returns the number of variants.
func (r *Registry) Len() int {
	return len(r.descs)
}

// IndexOf returns the position of id, or -1.
func (r *Registry) IndexOf(id string) int {
	i, ok := r.index[id]
	if !ok {
		return -1
	}
	return i
}

// At returns the descriptor at position i, wrapping in both directions.
func (r *Registry) At(i int) Descriptor {
	n := len(r.descs)
	return r.descs[((i%n)+n)%n]
}

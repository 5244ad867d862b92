package vaa

import (
	"github.com/go-playground/validator/v10"

	"github.com/wormhole-foundation/vaa/types"
)

// newValidator returns a validator with the VAA specific tags registered.
func newValidator() *validator.Validate {
	validate := validator.New()
	// Registration only fails for an empty tag or a nil func.
	_ = validate.RegisterValidation("ascending_indexes", ascendingIndexes)

	return validate
}

// ascendingIndexes checks that signature guardian indexes are strictly ascending.
func ascendingIndexes(fl validator.FieldLevel) bool {
	sigs, ok := fl.Field().Interface().([]*types.Signature)
	if !ok {
		return false
	}

	last := -1
	for _, sig := range sigs {
		if sig == nil {
			continue
		}
		if int(sig.Index) <= last {
			return false
		}
		last = int(sig.Index)
	}

	return true
}

// Validate checks the envelope is well formed: supported version, at most 255 signatures and
// signature indexes in strictly ascending order.
func (v *VAA) Validate() error {
	return newValidator().Struct(v)
}

package validator

import (
	"fmt"
	"reflect"

	playground "github.com/go-playground/validator/v10"
)

// TagPrefix is prepended to every check name registered by RegisterTags.
const TagPrefix = "str_"

// RegisterTags registers every named check as a go-playground struct tag,
// e.g. `validate:"str_iban"`. Non-string fields never validate.
func RegisterTags(v *playground.Validate) error {
	for _, name := range Names() {
		check := checks[name]
		fn := func(fl playground.FieldLevel) bool {
			f := fl.Field()
			if f.Kind() != reflect.String {
				return false
			}
			return check(f.String())
		}
		if err := v.RegisterValidation(TagPrefix+name, fn); err != nil {
			return fmt.Errorf("register tag %s%s: %w", TagPrefix, name, err)
		}
	}
	return nil
}

// NewStructValidator returns a go-playground validator with the str_ tags registered.
func NewStructValidator() (*playground.Validate, error) {
	v := playground.New()
	if err := RegisterTags(v); err != nil {
		return nil, err
	}
	return v, nil
}

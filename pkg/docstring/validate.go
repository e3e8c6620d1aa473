package docstring

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

// getValidator returns the shared validator instance, creating it lazily on
// first use.
func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()
	})
	return validatorInstance
}

// Validate checks the producer contract that construction leaves to the
// caller: a Param must carry a non-empty ArgName, and a parse result must
// not be tagged StyleAuto, which is a detection request rather than a style.
// Every finding is reported, joined into a single error; a nil docstring or
// one with no findings yields nil.
func Validate(d *Docstring) error {
	if d == nil {
		return nil
	}

	var errs []error
	if d.Style == StyleAuto {
		errs = append(errs, errors.New("style: auto is a detection request, not a parse result"))
	}

	v := getValidator()
	for i, m := range d.Meta {
		if m == nil {
			errs = append(errs, fmt.Errorf("meta[%d]: nil fragment", i))
			continue
		}
		if err := v.Struct(m); err != nil {
			errs = append(errs, fmt.Errorf("meta[%d] %s: %w", i, m.Kind(), err))
		}
	}
	return errors.Join(errs...)
}

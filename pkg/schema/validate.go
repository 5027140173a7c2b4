package schema

import (
	"fmt"
)

// Min requires a numeric value of at least lo.
func Min(lo float64) Validator {
	return func(v any) error {
		f, err := ToFloat(v)
		if err != nil {
			return err
		}
		if f < lo {
			return fmt.Errorf("%v is less than %v", v, lo)
		}
		return nil
	}
}

// Max requires a numeric value of at most hi.
func Max(hi float64) Validator {
	return func(v any) error {
		f, err := ToFloat(v)
		if err != nil {
			return err
		}
		if f > hi {
			return fmt.Errorf("%v is greater than %v", v, hi)
		}
		return nil
	}
}

// Range requires lo <= v <= hi.
func Range(lo, hi float64) Validator {
	return func(v any) error {
		f, err := ToFloat(v)
		if err != nil {
			return err
		}
		if f < lo || f > hi {
			return fmt.Errorf("%v is outside [%v, %v]", v, lo, hi)
		}
		return nil
	}
}

// NonZero rejects zero.
func NonZero() Validator {
	return func(v any) error {
		f, err := ToFloat(v)
		if err != nil {
			return err
		}
		if f == 0 {
			return fmt.Errorf("value must be non-zero")
		}
		return nil
	}
}

// Not rejects the listed values.
func Not(values ...int64) Validator {
	return func(v any) error {
		i, err := ToInt(v)
		if err != nil {
			return err
		}
		for _, x := range values {
			if i == x {
				return fmt.Errorf("%#x is not allowed", i)
			}
		}
		return nil
	}
}

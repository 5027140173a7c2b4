package schema

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// ToInt converts an integer-like value to int64. It accepts every Go integer
// kind (including named enum types), integral floats, bools and json.Number.
func ToInt(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || math.IsNaN(x) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidValue, x)
		}
		return int64(x), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return i, nil
	case nil:
		return 0, fmt.Errorf("%w: nil is not an integer", ErrInvalidValue)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %v overflows int64", ErrInvalidValue, u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return ToInt(rv.Float())
	}
	return 0, fmt.Errorf("%w: %T is not an integer", ErrInvalidValue, v)
}

// ToFloat converts a numeric value to float64.
func ToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("%w: nil is not a number", ErrInvalidValue)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	i, err := ToInt(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %T is not a number", ErrInvalidValue, v)
	}
	return float64(i), nil
}

// ToBytes converts v to a byte slice. It accepts []byte, a hex string, and
// slices of integers.
func ToBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return x, nil
	case string:
		b, err := hex.DecodeString(strings.TrimPrefix(strings.ReplaceAll(x, " ", ""), "0x"))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return b, nil
	case nil:
		return nil, fmt.Errorf("%w: nil is not a byte string", ErrInvalidValue)
	}

	items, err := ToSlice(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %T is not a byte string", ErrInvalidValue, v)
	}
	out := make([]byte, len(items))
	for i, item := range items {
		n, err := ToInt(item)
		if err != nil {
			return nil, err
		}
		if n < 0 || n > 0xFF {
			return nil, fmt.Errorf("%w: byte value %d out of range", ErrInvalidValue, n)
		}
		out[i] = byte(n)
	}
	return out, nil
}

// ToSlice converts any slice or array value to []any.
func ToSlice(v any) ([]any, error) {
	if s, ok := v.([]any); ok {
		return s, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T is not a sequence", ErrInvalidValue, v)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// ToContainer converts v to a Container. It accepts Container and any map
// with string keys.
func ToContainer(v any) (Container, error) {
	if c, ok := v.(Container); ok {
		return c, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: %T is not a structure", ErrInvalidValue, v)
	}
	out := make(Container, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, nil
}

// IsZero reports whether v is the zero value for an internal field.
func IsZero(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case []byte:
		for _, c := range x {
			if c != 0 {
				return false
			}
		}
		return true
	case bool:
		return !x
	}
	i, err := ToInt(v)
	return err == nil && i == 0
}

package access

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/backkem/btmesh/pkg/schema"
)

// ProjectionOptions controls the plain-value rendering of a message.
type ProjectionOptions struct {
	// CamelCase renames keys from snake_case to camelCase.
	CamelCase bool
}

// Loggable converts m to plain values suitable for logging or JSON:
// enum members become their names, byte strings become hex, dates become
// YYYY-MM-DD and internal fields are dropped. It is not meant to be encoded
// back.
func Loggable(m *Message, opts ProjectionOptions) map[string]any {
	out := map[string]any{}
	if m == nil {
		return out
	}

	name := m.Name
	if name == "" {
		name = m.Opcode.String()
	}
	out["opcode"] = name

	if m.Known() {
		out["params"] = Project(m.Params, opts)
	} else {
		out["params"] = hex.EncodeToString(m.Raw)
	}
	return out
}

// LoggableJSON returns the JSON form of Loggable. Map keys are sorted.
func LoggableJSON(m *Message, opts ProjectionOptions) ([]byte, error) {
	return json.Marshal(Loggable(m, opts))
}

// validator is implemented by enums that can tell members from raw values.
type validator interface {
	IsValid() bool
}

// Project converts a decoded value tree to plain values.
func Project(v any, opts ProjectionOptions) any {
	switch x := v.(type) {
	case nil:
		return nil
	case schema.Container:
		out := make(map[string]any, len(x))
		for k, e := range x {
			if schema.IsInternal(k) {
				continue
			}
			if opts.CamelCase {
				k = camelCase(k)
			}
			out[k] = Project(e, opts)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Project(e, opts)
		}
		return out
	case []byte:
		return hex.EncodeToString(x)
	case []int:
		return x
	case string, bool, int:
		return x
	case float64:
		switch {
		case math.IsInf(x, 1):
			return "inf"
		case math.IsInf(x, -1):
			return "-inf"
		case math.IsNaN(x):
			return "nan"
		}
		return x
	case time.Time:
		return x.Format("2006-01-02")
	}

	if s, ok := v.(fmt.Stringer); ok && isInteger(v) {
		if val, ok := v.(validator); ok && !val.IsValid() {
			return reflect.ValueOf(v).Convert(reflect.TypeOf(int64(0))).Interface()
		}
		return s.String()
	}
	return v
}

func isInteger(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func camelCase(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

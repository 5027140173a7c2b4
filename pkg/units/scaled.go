// Package units provides the numeric adapters that convert Access-layer
// wire integers to physical quantities and back, together with a few
// composite leaves (key indexes, retransmit parameters, bit lists) that
// recur across model families.
//
// Adapters that declare an "unknown" sentinel decode it to nil and encode
// nil back to the sentinel.
package units

import (
	"fmt"
	"math"
	"strconv"

	"github.com/backkem/btmesh/pkg/schema"
)

// NoRounding disables decimal rounding of decoded values.
const NoRounding = -1

// Scaled multiplies the raw integer by a fixed resolution.
//
// With a resolution of 1 the decoded value is an int, otherwise a float64
// rounded to the configured number of decimals.
type Scaled struct {
	resolution float64
	decimals   int
	sentinel   int64
	unknown    bool
}

// Scale returns an adapter with the given resolution and no sentinel.
func Scale(resolution float64, decimals int) *Scaled {
	return &Scaled{resolution: resolution, decimals: decimals}
}

// WithUnknown returns a copy of s that maps raw to "unknown".
func (s *Scaled) WithUnknown(raw int64) *Scaled {
	c := *s
	c.sentinel = raw
	c.unknown = true
	return &c
}

// Resolution returns the value of one raw step.
func (s *Scaled) Resolution() float64 { return s.resolution }

// Sentinel returns the raw "unknown" value, if any.
func (s *Scaled) Sentinel() (int64, bool) { return s.sentinel, s.unknown }

func (s *Scaled) String() string {
	out := "scaled(" + strconv.FormatFloat(s.resolution, 'g', -1, 64) + ")"
	if s.unknown {
		out += fmt.Sprintf(" unknown=%#x", s.sentinel)
	}
	return out
}

func (s *Scaled) Decode(raw int64) (any, error) {
	if s.unknown && raw == s.sentinel {
		return nil, nil
	}
	if s.resolution == 1 {
		return int(raw), nil
	}
	v := float64(raw) * s.resolution
	if s.decimals >= 0 {
		v = round(v, s.decimals)
	}
	return v, nil
}

func (s *Scaled) Encode(v any) (int64, error) {
	if v == nil {
		if !s.unknown {
			return 0, schema.Invalid("unknown value not allowed")
		}
		return s.sentinel, nil
	}
	f, err := schema.ToFloat(v)
	if err != nil {
		return 0, err
	}
	raw := int64(math.RoundToEven(f / s.resolution))
	if s.unknown && raw == s.sentinel {
		return 0, schema.Invalid("%v collides with the unknown value", v)
	}
	return raw, nil
}

// round rounds half to even at the given number of decimals.
func round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.RoundToEven(v*p) / p
}

// maxRaw returns the largest unsigned value of size bytes.
func maxRaw(size int) int64 {
	return int64(1)<<(8*size) - 1
}

// Count returns an unsigned integer leaf of size bytes whose largest value
// means "unknown".
func Count(size int) *schema.Int {
	return schema.Uint(size).As(Scale(1, 0).WithUnknown(maxRaw(size)))
}

// Scaled leaves used across sensor properties and model families.
var (
	// Percentage8 is a 0.5 % step, 0xFF unknown.
	Percentage8 = schema.U8.As(Scale(0.5, 1).WithUnknown(0xFF))

	// ElectricCurrent is a 0.01 A step.
	ElectricCurrent = schema.U16.As(Scale(0.01, 2))

	// Voltage is a 1/64 V step, 0xFFFF unknown.
	Voltage = schema.U16.As(Scale(1.0/64, NoRounding).WithUnknown(0xFFFF))

	// TimeMillis24 is a 1 ms step in seconds, 0xFFFFFF unknown.
	TimeMillis24 = schema.U24.As(Scale(0.001, 3).WithUnknown(0xFFFFFF))

	// Illuminance is a 0.01 lux step, 0xFFFFFF unknown.
	Illuminance = schema.U24.As(Scale(0.01, 2).WithUnknown(0xFFFFFF))

	// Energy is a whole kWh count.
	Energy = schema.U24.As(Scale(1, 0))

	// Count16 and Count24 are the common default-count widths.
	Count16 = Count(2)
	Count24 = Count(3)
)

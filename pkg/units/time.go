package units

import (
	"math"

	"github.com/backkem/btmesh/pkg/schema"
)

// Transition time resolutions, indexed by the 2-bit resolution code.
var stepUnits = [4]float64{0.1, 1, 10, 600}

const (
	unknownSteps = 0x3F
	maxSteps     = 0x3E
)

// TransitionAdapter converts the packed resolution/steps byte to seconds.
type TransitionAdapter struct {
	allowUnknown bool
}

// String implements fmt.Stringer.
func (a TransitionAdapter) String() string {
	if a.allowUnknown {
		return "transition_time(unknown=0x3f)"
	}
	return "transition_time"
}

func (a TransitionAdapter) Decode(raw int64) (any, error) {
	res, steps := raw>>6&0x3, raw&0x3F
	if steps == unknownSteps {
		if !a.allowUnknown {
			return nil, schema.Invalid("transition steps 0x3f not allowed")
		}
		return nil, nil
	}
	if res == 0 {
		return float64(steps) / 10, nil
	}
	return float64(steps) * stepUnits[res], nil
}

func (a TransitionAdapter) Encode(v any) (int64, error) {
	if v == nil {
		if !a.allowUnknown {
			return 0, schema.Invalid("unknown transition time not allowed")
		}
		return unknownSteps, nil
	}
	f, err := schema.ToFloat(v)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, schema.Invalid("negative transition time %v", f)
	}

	for res, unit := range stepUnits {
		if f > unit*unknownSteps {
			continue
		}
		steps := int64(math.RoundToEven(f / unit))
		if steps > maxSteps {
			return 0, schema.Invalid("transition time %v needs %d steps at %vs", f, steps, unit)
		}
		return int64(res)<<6 | steps, nil
	}
	return 0, schema.Invalid("transition time %v out of range", f)
}

// DelayAdapter converts 5 ms steps to seconds.
type DelayAdapter struct{}

func (DelayAdapter) String() string { return "delay" }

func (DelayAdapter) Decode(raw int64) (any, error) {
	return float64(raw) / 200, nil
}

func (DelayAdapter) Encode(v any) (int64, error) {
	f, err := schema.ToFloat(v)
	if err != nil {
		return 0, err
	}
	return int64(math.RoundToEven(f * 200)), nil
}

// ExponentialAdapter is the 8-bit 1.1^(n-64) time format used by sensor
// cadence and similar properties.
type ExponentialAdapter struct{}

func (ExponentialAdapter) String() string { return "time_exponential" }

func (ExponentialAdapter) Decode(raw int64) (any, error) {
	if raw == 0 {
		return 0.0, nil
	}
	return round(math.Pow(1.1, float64(raw-64)), 4), nil
}

func (ExponentialAdapter) Encode(v any) (int64, error) {
	f, err := schema.ToFloat(v)
	if err != nil {
		return 0, err
	}
	if f == 0 {
		return 0, nil
	}
	if f < 0 {
		return 0, schema.Invalid("negative time %v", f)
	}
	return int64(math.RoundToEven(math.Log(f)/math.Log(1.1))) + 64, nil
}

var (
	// TransitionTime is the set-message transition time. 0x3F is rejected.
	TransitionTime = schema.U8.As(TransitionAdapter{})

	// RemainingTime is the status-message form in which 0x3F means unknown.
	RemainingTime = schema.U8.As(TransitionAdapter{allowUnknown: true})

	// Delay is the message execution delay in seconds.
	Delay = schema.U8.As(DelayAdapter{})

	// TimeExponential8 is the exponential 8-bit time in seconds.
	TimeExponential8 = schema.U8.As(ExponentialAdapter{})
)

// TransitionFields are the optional trailing transition_time and delay
// fields of most set messages.
func TransitionFields() []schema.Field {
	return []schema.Field{
		schema.F("transition_time", TransitionTime),
		schema.F("delay", Delay),
	}
}

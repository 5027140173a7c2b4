package meshtime

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/backkem/btmesh/pkg/schema"
)

// Epoch is TAI second zero of mesh time.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	zoneOffsetZero  = 0x40
	zoneOffsetStep  = 15 * time.Minute
	taiUTCDeltaZero = 0xFF
	maxTAIUTCDelta  = 1<<15 - 1
	uncertaintyStep = 10 * time.Millisecond
)

// ErrUnknownTime is returned by ToTime for a time state whose TAI seconds
// are zero.
var ErrUnknownTime = errors.New("meshtime: time is unknown")

// State is the time state carried by TIME_SET and TIME_STATUS.
type State struct {
	// Time is the TAI instant in the node's local zone.
	Time time.Time

	// Uncertainty is the accuracy of Time.
	Uncertainty time.Duration

	// TAIUTCDelta is the current TAI-UTC difference.
	TAIUTCDelta time.Duration

	// Authority reports whether the node has a reliable time source.
	Authority bool
}

// TAI returns the instant of a TAI seconds field.
func TAI(seconds int64) time.Time {
	return Epoch.Add(time.Duration(seconds) * time.Second)
}

// ZoneOffset converts a raw time zone offset to a duration.
func ZoneOffset(raw int64) time.Duration {
	return time.Duration(raw-zoneOffsetZero) * zoneOffsetStep
}

// ZoneOffsetRaw converts a zone offset to its raw form. The offset must be
// a whole number of quarter hours.
func ZoneOffsetRaw(d time.Duration) (int64, error) {
	if d%zoneOffsetStep != 0 {
		return 0, fmt.Errorf("%w: zone offset %s is not a multiple of %s", schema.ErrInvalidValue, d, zoneOffsetStep)
	}
	raw := int64(d/zoneOffsetStep) + zoneOffsetZero
	if raw < 0 || raw > math.MaxUint8 {
		return 0, fmt.Errorf("%w: zone offset %s out of range", schema.ErrInvalidValue, d)
	}
	return raw, nil
}

// TAIUTCDelta converts a raw TAI-UTC delta to a duration.
func TAIUTCDelta(raw int64) time.Duration {
	return time.Duration(raw-taiUTCDeltaZero) * time.Second
}

// TAIUTCDeltaRaw converts a whole-second TAI-UTC delta to its raw form.
func TAIUTCDeltaRaw(d time.Duration) (int64, error) {
	if d%time.Second != 0 {
		return 0, fmt.Errorf("%w: TAI-UTC delta %s is not whole seconds", schema.ErrInvalidValue, d)
	}
	raw := int64(d/time.Second) + taiUTCDeltaZero
	if raw < 0 || raw > maxTAIUTCDelta {
		return 0, fmt.Errorf("%w: TAI-UTC delta %s out of range", schema.ErrInvalidValue, d)
	}
	return raw, nil
}

// ToTime converts decoded TIME_SET or TIME_STATUS parameters.
func ToTime(params schema.Container) (State, error) {
	tai, err := intField(params, "tai_seconds")
	if err != nil {
		return State{}, err
	}
	if tai == 0 {
		return State{}, ErrUnknownTime
	}

	var raw [4]int64
	for i, key := range []string{"subsecond", "uncertainty", "tai_utc_delta", "time_zone_offset"} {
		if raw[i], err = intField(params, key); err != nil {
			return State{}, err
		}
	}
	subsecond, uncertainty, delta, zone := raw[0], raw[1], raw[2], raw[3]

	authority, _ := params["time_authority"].(bool)

	offset := ZoneOffset(zone)
	instant := TAI(tai).Add(time.Duration(subsecond) * time.Second / 256)

	return State{
		Time:        instant.In(time.FixedZone("", int(offset/time.Second))),
		Uncertainty: time.Duration(uncertainty) * uncertaintyStep,
		TAIUTCDelta: TAIUTCDelta(delta),
		Authority:   authority,
	}, nil
}

// FromTime builds TIME_SET parameters from s. The zone offset is taken
// from the location of s.Time.
func FromTime(s State) (schema.Container, error) {
	since := s.Time.Sub(Epoch)
	if since < time.Second {
		return nil, fmt.Errorf("%w: %s is before the mesh epoch", schema.ErrInvalidValue, s.Time)
	}

	tai := int64(since / time.Second)
	subsecond := int64(math.Round(float64(since%time.Second) * 256 / float64(time.Second)))
	if subsecond == 256 {
		tai++
		subsecond = 0
	}

	_, offset := s.Time.Zone()
	zone, err := ZoneOffsetRaw(time.Duration(offset) * time.Second)
	if err != nil {
		return nil, err
	}

	delta, err := TAIUTCDeltaRaw(s.TAIUTCDelta)
	if err != nil {
		return nil, err
	}

	uncertainty := int64(s.Uncertainty / uncertaintyStep)
	if s.Uncertainty < 0 || uncertainty > math.MaxUint8 {
		return nil, fmt.Errorf("%w: uncertainty %s out of range", schema.ErrInvalidValue, s.Uncertainty)
	}

	return schema.Container{
		"tai_seconds":      int(tai),
		"subsecond":        int(subsecond),
		"uncertainty":      int(uncertainty),
		"tai_utc_delta":    int(delta),
		"time_authority":   s.Authority,
		"time_zone_offset": int(zone),
	}, nil
}

func intField(params schema.Container, key string) (int64, error) {
	v, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", schema.ErrMissingField, key)
	}
	return schema.ToInt(v)
}

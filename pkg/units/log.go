package units

import (
	"fmt"
	"math"

	"github.com/backkem/btmesh/pkg/schema"
)

// Log2Adapter is the heartbeat logarithmic encoding: raw n > 0 stands for
// 2^(n-1), and raw 0 for zero.
type Log2Adapter struct {
	max      int64
	infinity bool
	size     int
}

// Log2 returns a size-byte heartbeat log field accepting raw values up to
// max. With infinity set, the all-ones raw value decodes to +Inf.
func Log2(size int, max int64, infinity bool) *schema.Int {
	return schema.Uint(size).As(&Log2Adapter{max: max, infinity: infinity, size: size})
}

func (a *Log2Adapter) String() string {
	if a.infinity {
		return fmt.Sprintf("log2(max=%#x, infinity)", a.max)
	}
	return fmt.Sprintf("log2(max=%#x)", a.max)
}

func (a *Log2Adapter) Decode(raw int64) (any, error) {
	if raw == 0 {
		return 0, nil
	}
	if a.infinity && raw == maxRaw(a.size) {
		return math.Inf(1), nil
	}
	if raw > a.max {
		return nil, schema.Invalid("log value %#x exceeds %#x", raw, a.max)
	}
	return int(1) << (raw - 1), nil
}

func (a *Log2Adapter) Encode(v any) (int64, error) {
	f, err := schema.ToFloat(v)
	if err != nil {
		return 0, err
	}
	switch {
	case f == 0:
		return 0, nil
	case math.IsInf(f, 1):
		if !a.infinity {
			return 0, schema.Invalid("infinity not allowed")
		}
		return maxRaw(a.size), nil
	case f < 1:
		return 0, schema.Invalid("%v is not a positive power of two", v)
	}
	raw := math.Log2(f) + 1
	if raw > float64(a.max) {
		return 0, schema.Invalid("%v exceeds log value %#x", v, a.max)
	}
	return int64(raw), nil
}

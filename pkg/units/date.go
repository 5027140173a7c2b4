package units

import (
	"fmt"
	"time"

	"github.com/backkem/btmesh/pkg/schema"
)

// DateLayout is the textual form accepted and produced for dates.
const DateLayout = "2006-01-02"

// DateAdapter counts days since 1970-01-01. Day 0 means "unknown".
type DateAdapter struct{}

func (DateAdapter) String() string { return "date" }

func (DateAdapter) Decode(raw int64) (any, error) {
	if raw == 0 {
		return nil, nil
	}
	return time.Unix(0, 0).UTC().AddDate(0, 0, int(raw)), nil
}

func (DateAdapter) Encode(v any) (int64, error) {
	var t time.Time
	switch x := v.(type) {
	case nil:
		return 0, nil
	case time.Time:
		t = x
	case string:
		var err error
		if t, err = time.Parse(DateLayout, x); err != nil {
			return 0, fmt.Errorf("%w: %v", schema.ErrInvalidValue, err)
		}
	case schema.Container:
		var ymd [3]int64
		for i, k := range []string{"year", "month", "day"} {
			n, err := schema.ToInt(x[k])
			if err != nil {
				return 0, &schema.FieldError{Path: k, Err: err}
			}
			ymd[i] = n
		}
		t = time.Date(int(ymd[0]), time.Month(ymd[1]), int(ymd[2]), 0, 0, 0, 0, time.UTC)
	default:
		return schema.ToInt(v)
	}

	y, m, d := t.Date()
	days := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
	if days <= 0 {
		return 0, schema.Invalid("date %s is not after 1970-01-01", t.Format(DateLayout))
	}
	return days, nil
}

// Date is a 24-bit day count.
var Date = schema.U24.As(DateAdapter{})

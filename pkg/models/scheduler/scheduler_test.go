package scheduler

import (
	"testing"

	"github.com/backkem/btmesh/pkg/models/internal/modeltest"
	"github.com/backkem/btmesh/pkg/schema"
)

type C = schema.Container

func TestScheduler(t *testing.T) {
	c := modeltest.Codec(t, Families()...)

	weekdays := C{
		"index":           2,
		"year":            24,
		"month":           []int{0, 5},
		"day":             15,
		"hour":            8,
		"minute":          30,
		"second":          0,
		"day_of_week":     []int{0, 1, 2, 3, 4},
		"action":          ActionSceneRecall,
		"transition_time": 1.0,
		"scene_number":    5,
	}
	wildcard := C{
		"index":           0,
		"year":            AnyYear,
		"month":           []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		"day":             AnyDay,
		"hour":            AnyHour,
		"minute":          AnyMinute,
		"second":          RandomSecond,
		"day_of_week":     []int{0, 1, 2, 3, 4, 5, 6},
		"action":          ActionNone,
		"transition_time": nil,
		"scene_number":    0,
	}

	modeltest.Run(t, c, []modeltest.Vector{
		{Name: "get", PDU: "8249", Msg: "SCHEDULER_GET"},
		{Name: "status", PDU: "824a 0580", Msg: "SCHEDULER_STATUS",
			Params: C{"schedules": []int{0, 2, 15}}},
		{Name: "action get", PDU: "8248 03", Msg: "SCHEDULER_ACTION_GET",
			Params: C{"index": 3}},
		{Name: "action set", PDU: "60 820981873ce023 0a 0500", Msg: "SCHEDULER_ACTION_SET",
			Params: weekdays},
		{Name: "action set unacknowledged", PDU: "61 820981873ce023 0a 0500", Msg: "SCHEDULER_ACTION_SET_UNACKNOWLEDGED",
			Params: weekdays},
		{Name: "action status wildcard", PDU: "5f 40fe7f80f9ffff 3f 0000", Msg: "SCHEDULER_ACTION_STATUS",
			Params: wildcard},
	})

	modeltest.DecodeFails(t, c, "8248 10", schema.ErrFieldValidationFailed)
	modeltest.DecodeFails(t, c, "5f 820981873ce023 0a", schema.ErrTruncatedInput)

	bad := C{}
	for k, v := range weekdays {
		bad[k] = v
	}
	bad["action"] = 5
	modeltest.EncodeFails(t, c, "SCHEDULER_ACTION_SET", bad, schema.ErrFieldValidationFailed)

	bad["action"] = "TURN_ON"
	bad["index"] = 16
	modeltest.EncodeFails(t, c, "SCHEDULER_ACTION_SET", bad, schema.ErrInvalidValue)
}

func TestYear(t *testing.T) {
	if y, ok := Year(24); !ok || y != 2024 {
		t.Errorf("Year(24) = %d, %v", y, ok)
	}
	if _, ok := Year(AnyYear); ok {
		t.Error("Year(AnyYear) reported a year")
	}
}

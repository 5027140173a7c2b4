package silvair

import (
	"testing"

	"github.com/backkem/btmesh/pkg/models/internal/modeltest"
	"github.com/backkem/btmesh/pkg/schema"
)

func dt(year, month, day, hour, minute, second int) C {
	return C{"year": year, "month": month, "day": day, "hour": hour, "minute": minute, "second": second}
}

func rr(id RuleID, v any) C {
	return C{"rule_id": id, "rule": v}
}

func slotOf(id, element int, param string) C {
	return C{"slot_id": id, "element": element, "slot_parameter": []byte(param)}
}

func TestRRuleScheduler(t *testing.T) {
	c := modeltest.Codec(t, Families()...)
	const msg = "SILVAIR_RRULE_SCHEDULER"

	threeSlots := []any{
		slotOf(0xABCD, 0x00, "\xbb\xcc"),
		slotOf(0xABCC, 0x02, "\xab\xff\x15\x72\x88"),
		slotOf(0xABCB, 0x05, "\x00\x02\xbb\xcc\xcc\xab\x00\x05\xab\xff\x15\x72\x88\xcb\xab\x00"),
	}
	dates := []any{dt(2020, 11, 25, 22, 17, 56), dt(2030, 11, 25, 22, 17, 56), dt(2040, 11, 25, 22, 17, 56)}

	modeltest.Run(t, c, []modeltest.Vector{
		{Name: "register entry set", PDU: "e83601 08 05 01 cdab 00 00 0001 030200 020500", Msg: msg,
			Params: C{
				"subopcode": RRuleRegisterEntrySet,
				"entry_id":  5,
				"scheduler_register_entry": C{
					"array_of_slots": []any{slotOf(0xABCD, 0, "")},
					"rules": []any{
						rr(RuleFreq, Minutely),
						rr(RuleInterval, 2),
						rr(RuleCount, 5),
					},
				},
			}},
		{Name: "register entry set slots",
			PDU: "e83601 08 05 03 cdab 00 02 bbcc ccab 02 05 abff157288 cbab 05 10 0002bbccccab0005abff157288cbab00" +
				"0001 030200 020500",
			Msg: msg,
			Params: C{
				"subopcode": RRuleRegisterEntrySet,
				"entry_id":  5,
				"scheduler_register_entry": C{
					"array_of_slots": threeSlots,
					"rules": []any{
						rr(RuleFreq, Minutely),
						rr(RuleInterval, 2),
						rr(RuleCount, 5),
					},
				},
			}},
		{Name: "register entry set every rule",
			PDU: "e83601 08 05 03 cdab 00 02 bbcc ccab 02 05 abff157288 cbab 05 10 0002bbccccab0005abff157288cbab00" +
				"0001 032010 020550 040100 0502010b 0603020c10 0704010507fa" +
				"080504 10111213 0908 0400 1000 0200 3000 4000 5000 0001 2001 0a04 0616262a 0b0102" +
				"0c06 0a00 1000 a000 d000 5000 5001 0df8c7661be1 01f8c7661be1" +
				"0e03 e4c7661be1 eec7661be1 f8c7661be1 0f03 e4c7661be1 eec7661be1 f8c7661be1",
			Msg: msg,
			Params: C{
				"subopcode": RRuleRegisterEntrySet,
				"entry_id":  5,
				"scheduler_register_entry": C{
					"array_of_slots": threeSlots,
					"rules": []any{
						rr(RuleFreq, Minutely),
						rr(RuleInterval, 0x1020),
						rr(RuleCount, 0x5005),
						rr(RuleBySecond, []any{0}),
						rr(RuleByMinute, []any{1, 11}),
						rr(RuleByHour, []any{2, 12, 16}),
						rr(RuleByDay, []any{NextMonday, NextFriday, NextSunday, PreviousSaturday}),
						rr(RuleByMonthDay, []any{4, 16, 17, 18, 19}),
						rr(RuleByYearDay, []any{4, 16, 2, 48, 64, 80, 256, 288}),
						rr(RuleByWeekNo, []any{6, 22, 38, 42}),
						rr(RuleByMonth, 0x0201),
						rr(RuleBySetPos, []any{10, 16, 160, 208, 80, 336}),
						rr(RuleDTStart, dt(2040, 11, 25, 22, 17, 56)),
						rr(RuleUntil, dt(2040, 11, 25, 22, 17, 56)),
						rr(RuleExplicitRDate, dates),
						rr(RuleExclusionsRDate, dates),
					},
				},
			}},
		{Name: "rules list status", PDU: "e83601 01 0102030405", Msg: msg,
			Params: C{
				"subopcode": RRuleRulesListStatus,
				"rule_ids":  []any{RuleUntil, RuleCount, RuleInterval, RuleBySecond, RuleByMinute},
			}},
		{Name: "register max size status", PDU: "e83601 03 efcdab89", Msg: msg,
			Params: C{"subopcode": RRuleRegisterMaxSizeStatus, "register_max_size": 0x89ABCDEF}},
		{Name: "scheduler mode set", PDU: "e83601 05 01", Msg: msg,
			Params: C{"subopcode": RRuleSchedulerModeSet, "scheduler_mode": SchedulerEnabled}},
		{Name: "scheduler mode status", PDU: "e83601 06 00", Msg: msg,
			Params: C{"subopcode": RRuleSchedulerModeStatus, "scheduler_mode": SchedulerDisabled}},
		{Name: "register entry get", PDU: "e83601 07 05", Msg: msg,
			Params: C{"subopcode": RRuleRegisterEntryGet, "entry_id": 5}},
		{Name: "register entry delete", PDU: "e83601 09 05", Msg: msg,
			Params: C{"subopcode": RRuleRegisterEntryDelete, "entry_id": 5}},
		{Name: "register entry delete all", PDU: "e83601 0a", Msg: msg,
			Params: C{"subopcode": RRuleRegisterEntryDeleteAll}},
		{Name: "register entry status without entry", PDU: "e83601 0b fe 03", Msg: msg,
			Params: C{"subopcode": RRuleRegisterEntryStatus, "entry_id": 0xFE, "status": RRuleInvalidRule}},
		{Name: "register entry status", PDU: "e83601 0b fe 00 01 cdab 00 02 0a0b 0002 030200 020500 06020f17", Msg: msg,
			Params: C{
				"subopcode": RRuleRegisterEntryStatus,
				"entry_id":  0xFE,
				"status":    RRuleSuccess,
				"scheduler_register_entry": C{
					"array_of_slots": []any{slotOf(0xABCD, 0, "\x0a\x0b")},
					"rules": []any{
						rr(RuleFreq, Hourly),
						rr(RuleInterval, 2),
						rr(RuleCount, 5),
						rr(RuleByHour, []any{15, 23}),
					},
				},
			}},
		{Name: "register list status", PDU: "e83601 0d 01050a", Msg: msg,
			Params: C{"subopcode": RRuleRegisterListStatus, "entry_ids": []any{1, 5, 10}}},
	})

	modeltest.DecodeFails(t, c, "e83601 08 05 02 cdab 00 00", schema.ErrTruncatedInput)
	modeltest.DecodeFails(t, c, "e83601 08 05 01 cdab 00 03 0a0b", schema.ErrTruncatedInput)
	modeltest.DecodeFails(t, c, "e83601 08 05 00 07 01 00", schema.ErrFieldValidationFailed)
}

func TestDayNames(t *testing.T) {
	for d, want := range map[Day]string{
		NextMonday:       "NEXT_MONDAY",
		NextSunday:       "NEXT_SUNDAY",
		PreviousSaturday: "PREVIOUS_SATURDAY",
		PreviousMonday:   "PREVIOUS_MONDAY",
		Day(0):           "UNKNOWN",
	} {
		if got := d.String(); got != want {
			t.Errorf("Day(%d).String() = %s, want %s", int8(d), got, want)
		}
	}
}

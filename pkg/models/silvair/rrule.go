package silvair

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
)

// RRuleScheduler is the opcode of every recurrence rule scheduler message.
const RRuleScheduler opcode.Opcode = 0xE83601

// RRuleCommand is a recurrence rule scheduler command.
type RRuleCommand uint8

const (
	RRuleRulesListGet           RRuleCommand = 0x00
	RRuleRulesListStatus        RRuleCommand = 0x01
	RRuleRegisterMaxSizeGet     RRuleCommand = 0x02
	RRuleRegisterMaxSizeStatus  RRuleCommand = 0x03
	RRuleSchedulerModeGet       RRuleCommand = 0x04
	RRuleSchedulerModeSet       RRuleCommand = 0x05
	RRuleSchedulerModeStatus    RRuleCommand = 0x06
	RRuleRegisterEntryGet       RRuleCommand = 0x07
	RRuleRegisterEntrySet       RRuleCommand = 0x08
	RRuleRegisterEntryDelete    RRuleCommand = 0x09
	RRuleRegisterEntryDeleteAll RRuleCommand = 0x0A
	RRuleRegisterEntryStatus    RRuleCommand = 0x0B
	RRuleRegisterListGet        RRuleCommand = 0x0C
	RRuleRegisterListStatus     RRuleCommand = 0x0D
)

var rruleCommandNames = []string{
	"RULES_LIST_GET",
	"RULES_LIST_STATUS",
	"REGISTER_MAX_SIZE_GET",
	"REGISTER_MAX_SIZE_STATUS",
	"SCHEDULER_MODE_GET",
	"SCHEDULER_MODE_SET",
	"SCHEDULER_MODE_STATUS",
	"SCHEDULE_REGISTER_ENTRY_GET",
	"SCHEDULE_REGISTER_ENTRY_SET",
	"SCHEDULE_REGISTER_ENTRY_DELETE",
	"SCHEDULE_REGISTER_ENTRY_DELETE_ALL",
	"SCHEDULE_REGISTER_ENTRY_STATUS",
	"SCHEDULE_REGISTER_LIST_GET",
	"SCHEDULE_REGISTER_LIST_STATUS",
}

func (c RRuleCommand) String() string { return enumName(rruleCommandNames, int(c)) }

func rruleCommands() []RRuleCommand {
	out := make([]RRuleCommand, len(rruleCommandNames))
	for i := range out {
		out[i] = RRuleCommand(i)
	}
	return out
}

// SchedulerMode enables or disables the scheduler.
type SchedulerMode uint8

const (
	SchedulerDisabled SchedulerMode = 0
	SchedulerEnabled  SchedulerMode = 1
)

func (m SchedulerMode) String() string { return enumName([]string{"DISABLED", "ENABLED"}, int(m)) }

// RRuleStatus is the result of a register entry operation.
type RRuleStatus uint8

const (
	RRuleSuccess RRuleStatus = iota
	RRuleInvalidSlot
	RRuleInvalidSlotParameters
	RRuleInvalidRule
	RRuleInvalidRuleValue
	RRuleRegisterSizeExceeded
	RRuleStorageFailure
)

var rruleStatusNames = []string{
	"SUCCESS",
	"INVALID_SLOT",
	"INVALID_SLOT_PARAMETERS",
	"INVALID_RULE",
	"INVALID_RULE_VALUE",
	"REGISTER_SIZE_EXCEEDED",
	"STORAGE_FAILURE",
}

func (s RRuleStatus) String() string { return enumName(rruleStatusNames, int(s)) }

// RuleID identifies a recurrence rule part.
type RuleID uint8

const (
	RuleFreq RuleID = iota
	RuleUntil
	RuleCount
	RuleInterval
	RuleBySecond
	RuleByMinute
	RuleByHour
	RuleByDay
	RuleByMonthDay
	RuleByYearDay
	RuleByWeekNo
	RuleByMonth
	RuleBySetPos
	RuleDTStart
	RuleExplicitRDate
	RuleExclusionsRDate
)

var ruleIDNames = []string{
	"FREQ", "UNTIL", "COUNT", "INTERVAL", "BYSECOND", "BYMINUTE", "BYHOUR", "BYDAY",
	"BYMONTHDAY", "BYYEARDAY", "BYWEEKNO", "BYMONTH", "BYSETPOS", "DTSTART",
	"EXPLICIT_RDATE", "EXCLUSIONS_RDATE",
}

func (r RuleID) String() string { return enumName(ruleIDNames, int(r)) }

func ruleIDs() []RuleID {
	out := make([]RuleID, len(ruleIDNames))
	for i := range out {
		out[i] = RuleID(i)
	}
	return out
}

// Freq is the recurrence frequency.
type Freq uint8

const (
	Secondly Freq = iota
	Minutely
	Hourly
	Daily
	Weekly
	Monthly
	Yearly
)

func (f Freq) String() string {
	return enumName([]string{"SECONDLY", "MINUTELY", "HOURLY", "DAILY", "WEEKLY", "MONTHLY", "YEARLY"}, int(f))
}

// Day is a weekday relative to the recurrence start: positive values are
// the following days, negative values the preceding ones.
type Day int8

const (
	PreviousSunday    Day = -7
	PreviousSaturday  Day = -6
	PreviousFriday    Day = -5
	PreviousThursday  Day = -4
	PreviousWednesday Day = -3
	PreviousTuesday   Day = -2
	PreviousMonday    Day = -1
	NextMonday        Day = 1
	NextTuesday       Day = 2
	NextWednesday     Day = 3
	NextThursday      Day = 4
	NextFriday        Day = 5
	NextSaturday      Day = 6
	NextSunday        Day = 7
)

var weekdayNames = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

func (d Day) String() string {
	switch {
	case d >= 1 && d <= 7:
		return "NEXT_" + weekdayNames[d-1]
	case d >= -7 && d <= -1:
		return "PREVIOUS_" + weekdayNames[-d-1]
	}
	return "UNKNOWN"
}

func days() []Day {
	out := make([]Day, 0, 14)
	for d := Day(-7); d <= 7; d++ {
		if d != 0 {
			out = append(out, d)
		}
	}
	return out
}

// listOf is a sequence preceded by a one-byte element count.
func listOf(elem schema.Node) schema.Node {
	return schema.CountPrefixed(schema.U8, elem)
}

var (
	rruleCommand = schema.Enum(rruleCommands()...)
	ruleID       = schema.Enum(ruleIDs()...)

	// A calendar time packed into five little-endian bytes.
	rruleDateTime = schema.PackLE(5,
		schema.Bit("second", 6),
		schema.Bit("minute", 6),
		schema.Bit("hour", 5),
		schema.Bit("day", 5),
		schema.Bit("month", 4),
		schema.Bit("year", 14),
	)

	rule = schema.NewStruct(
		schema.F("rule_id", schema.U8.As(ruleID)),
		schema.F("rule", schema.On("rule_id",
			schema.When(RuleFreq, schema.U8.As(schema.Enum(Secondly, Minutely, Hourly, Daily, Weekly, Monthly, Yearly))),
			schema.When(RuleUntil, rruleDateTime),
			schema.When(RuleCount, schema.U16),
			schema.When(RuleInterval, schema.U16),
			schema.When(RuleBySecond, listOf(schema.U8)),
			schema.When(RuleByMinute, listOf(schema.U8)),
			schema.When(RuleByHour, listOf(schema.U8)),
			schema.When(RuleByDay, listOf(schema.S8.As(schema.Enum(days()...)))),
			schema.When(RuleByMonthDay, listOf(schema.S8)),
			schema.When(RuleByYearDay, listOf(schema.S16)),
			schema.When(RuleByWeekNo, listOf(schema.S8)),
			schema.When(RuleByMonth, schema.U16),
			schema.When(RuleBySetPos, listOf(schema.S16)),
			schema.When(RuleDTStart, rruleDateTime),
			schema.When(RuleExplicitRDate, listOf(rruleDateTime)),
			schema.When(RuleExclusionsRDate, listOf(rruleDateTime)),
		).Via(ruleID).
			Labeled(func(k int64) string { return RuleID(k).String() })),
	)

	slot = schema.NewStruct(
		schema.F("slot_id", schema.U16),
		schema.F("element", schema.U8),
		schema.F("slot_parameter", schema.LengthPrefixed(schema.U8, schema.GreedyBytes)),
	)

	registerEntry = schema.NewStruct(
		schema.F("array_of_slots", listOf(slot)),
		schema.F("rules", schema.Greedy(rule)),
	)

	entryID = schema.F("entry_id", schema.U8)

	rrule = schema.NewStruct(
		schema.F("subopcode", schema.U8.As(rruleCommand)),
		schema.Embed(schema.On("subopcode",
			schema.When(RRuleRulesListStatus, schema.NewStruct(
				schema.F("rule_ids", schema.Greedy(schema.U8.As(ruleID))),
			)),
			schema.When(RRuleRegisterMaxSizeStatus, schema.NewStruct(
				schema.F("register_max_size", schema.U32),
			)),
			schema.When(RRuleSchedulerModeSet, schedulerMode),
			schema.When(RRuleSchedulerModeStatus, schedulerMode),
			schema.When(RRuleRegisterEntryGet, schema.NewStruct(entryID)),
			schema.When(RRuleRegisterEntrySet, schema.NewStruct(
				entryID,
				schema.F("scheduler_register_entry", registerEntry),
			)),
			schema.When(RRuleRegisterEntryDelete, schema.NewStruct(entryID)),
			schema.When(RRuleRegisterEntryStatus, schema.Optional(
				[]schema.Field{
					entryID,
					schema.F("status", schema.U8.As(schema.Enum(
						RRuleSuccess, RRuleInvalidSlot, RRuleInvalidSlotParameters, RRuleInvalidRule,
						RRuleInvalidRuleValue, RRuleRegisterSizeExceeded, RRuleStorageFailure,
					))),
				},
				schema.F("scheduler_register_entry", registerEntry),
			)),
			schema.When(RRuleRegisterListStatus, schema.NewStruct(
				schema.F("entry_ids", schema.Greedy(schema.U8)),
			)),
		).Default(access.Empty).
			Via(rruleCommand).
			Labeled(func(k int64) string { return RRuleCommand(k).String() })),
	)

	schedulerMode = schema.NewStruct(
		schema.F("scheduler_mode", schema.U8.As(schema.Enum(SchedulerDisabled, SchedulerEnabled))),
	)
)

// RRuleSchedulerFamily returns the Silvair recurrence rule scheduler
// family.
func RRuleSchedulerFamily() access.Family {
	return access.Family{
		Name: "silvair_rrule_scheduler",
		Messages: []access.Definition{
			access.Def(RRuleScheduler, "SILVAIR_RRULE_SCHEDULER", rrule),
		},
	}
}

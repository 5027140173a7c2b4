// Package health defines the Health model family.
package health

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
)

// Health opcodes.
const (
	AttentionGet      opcode.Opcode = 0x8004
	AttentionSet      opcode.Opcode = 0x8005
	AttentionSetUnack opcode.Opcode = 0x8006
	AttentionStatus   opcode.Opcode = 0x8007
	CurrentStatus     opcode.Opcode = 0x04
	FaultClear        opcode.Opcode = 0x802F
	FaultClearUnack   opcode.Opcode = 0x8030
	FaultGet          opcode.Opcode = 0x8031
	FaultStatus       opcode.Opcode = 0x05
	FaultTest         opcode.Opcode = 0x8032
	FaultTestUnack    opcode.Opcode = 0x8033
	PeriodGet         opcode.Opcode = 0x8034
	PeriodSet         opcode.Opcode = 0x8035
	PeriodSetUnack    opcode.Opcode = 0x8036
	PeriodStatus      opcode.Opcode = 0x8037
)

// MaxFastPeriodDivisor is the largest health fast period divisor.
const MaxFastPeriodDivisor = 15

var (
	companyID = schema.NewStruct(schema.F("company_id", schema.U16))

	faultTest = schema.NewStruct(
		schema.F("test_id", schema.U8),
		schema.F("company_id", schema.U16),
	)

	// A missing fault_array encodes as an empty one.
	faultStatus = schema.Optional(
		[]schema.Field{
			schema.F("test_id", schema.U8),
			schema.F("company_id", schema.U16),
		},
		schema.F("fault_array", schema.Greedy(schema.U8)),
	)

	period = schema.NewStruct(
		schema.F("fast_period_divisor", schema.U8.Check(schema.Max(MaxFastPeriodDivisor))),
	)

	attention = schema.NewStruct(schema.F("attention", schema.U8))
)

// Families returns the Health family.
func Families() []access.Family {
	return []access.Family{Health()}
}

// Health returns the Health family.
func Health() access.Family {
	return access.Family{
		Name: "health",
		Messages: []access.Definition{
			access.Def(AttentionGet, "HEALTH_ATTENTION_GET", access.Empty),
			access.Def(AttentionSet, "HEALTH_ATTENTION_SET", attention),
			access.Def(AttentionSetUnack, "HEALTH_ATTENTION_SET_UNACKNOWLEDGED", attention),
			access.Def(AttentionStatus, "HEALTH_ATTENTION_STATUS", attention),
			access.Def(CurrentStatus, "HEALTH_CURRENT_STATUS", faultStatus),
			access.Def(FaultClear, "HEALTH_FAULT_CLEAR", companyID),
			access.Def(FaultClearUnack, "HEALTH_FAULT_CLEAR_UNACKNOWLEDGED", companyID),
			access.Def(FaultGet, "HEALTH_FAULT_GET", companyID),
			access.Def(FaultStatus, "HEALTH_FAULT_STATUS", faultStatus),
			access.Def(FaultTest, "HEALTH_FAULT_TEST", faultTest),
			access.Def(FaultTestUnack, "HEALTH_FAULT_TEST_UNACKNOWLEDGED", faultTest),
			access.Def(PeriodGet, "HEALTH_PERIOD_GET", access.Empty),
			access.Def(PeriodSet, "HEALTH_PERIOD_SET", period),
			access.Def(PeriodSetUnack, "HEALTH_PERIOD_SET_UNACKNOWLEDGED", period),
			access.Def(PeriodStatus, "HEALTH_PERIOD_STATUS", period),
		},
	}
}

package silvair

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/units"
)

// LightExtendedController is the opcode of every Light Extended Controller
// message.
const LightExtendedController opcode.Opcode = 0xF63601

// LECCommand is a Light Extended Controller command. Unacknowledged
// property set shares its code with property set, and bulk LEC property
// status with bulk LEC property set.
type LECCommand uint8

const (
	LECPropertyGet          LECCommand = 0x00
	LECPropertySet          LECCommand = 0x01
	LECPropertyStatus       LECCommand = 0x03
	LECBulkLCPropertySet    LECCommand = 0x04
	LECBulkLCPropertyStatus LECCommand = 0x05
	LECBulkLECPropertySet   LECCommand = 0x06
	LECSyncIntegralGet      LECCommand = 0x08
	LECSyncIntegralStatus   LECCommand = 0x09
)

var lecCommandNames = []string{
	LECPropertyGet:          "PROPERTY_GET",
	LECPropertySet:          "PROPERTY_SET",
	LECPropertyStatus:       "PROPERTY_STATUS",
	LECBulkLCPropertySet:    "BULK_LC_PROPERTY_SET",
	LECBulkLCPropertyStatus: "BULK_LC_PROPERTY_STATUS",
	LECBulkLECPropertySet:   "BULK_LEC_PROPERTY_SET",
	LECSyncIntegralGet:      "SYNC_INTEGRAL_GET",
	LECSyncIntegralStatus:   "SYNC_INTEGRAL_STATUS",
}

func (c LECCommand) String() string { return enumName(lecCommandNames, int(c)) }

// LECProperty identifies a Light Extended Controller property.
type LECProperty uint16

const (
	AutoResumeMode  LECProperty = 0xFF71
	AutoResumeTimer LECProperty = 0xFF72
)

func (p LECProperty) String() string {
	switch p {
	case AutoResumeMode:
		return "AUTO_RESUME_MODE"
	case AutoResumeTimer:
		return "AUTO_RESUME_TIMER"
	default:
		return "UNKNOWN"
	}
}

var (
	lecCommand = schema.Enum(
		LECPropertyGet, LECPropertySet, LECPropertyStatus, LECBulkLCPropertySet,
		LECBulkLCPropertyStatus, LECBulkLECPropertySet, LECSyncIntegralGet, LECSyncIntegralStatus,
	)
	lecProperty = schema.Enum(AutoResumeMode, AutoResumeTimer)

	// The auto resume timer is in seconds with millisecond resolution.
	lecValue = schema.On("id",
		schema.When(AutoResumeMode, schema.Flag),
		schema.When(AutoResumeTimer, schema.U24.As(units.Scale(0.001, 3))),
	).Via(lecProperty).
		Labeled(func(k int64) string { return LECProperty(k).String() })

	lecPropertyGet = schema.NewStruct(schema.F("id", schema.U16.As(lecProperty)))
	lecPropertySet = schema.NewStruct(
		schema.F("id", schema.U16.As(lecProperty)),
		schema.F("value", lecValue),
	)

	lec = schema.NewStruct(
		schema.F("subopcode", schema.U8.As(lecCommand)),
		schema.Embed(schema.On("subopcode",
			schema.When(LECPropertyGet, lecPropertyGet),
			schema.When(LECPropertySet, lecPropertySet),
			schema.When(LECPropertyStatus, lecPropertySet),
			schema.When(LECSyncIntegralStatus, schema.NewStruct(schema.F("sync_integral", schema.U16))),
		).Default(access.Empty).
			Via(lecCommand).
			Labeled(func(k int64) string { return LECCommand(k).String() })),
	)
)

// LightExtendedControllerFamily returns the Silvair Light Extended
// Controller family.
func LightExtendedControllerFamily() access.Family {
	return access.Family{
		Name: "silvair_light_extended_controller",
		Messages: []access.Definition{
			access.Def(LightExtendedController, "SILVAIR_LEC", lec),
		},
	}
}

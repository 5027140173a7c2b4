package light

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/units"
)

// Light HSL opcodes.
const (
	HSLGet                opcode.Opcode = 0x826D
	HSLHueGet             opcode.Opcode = 0x826E
	HSLHueSet             opcode.Opcode = 0x826F
	HSLHueSetUnack        opcode.Opcode = 0x8270
	HSLHueStatus          opcode.Opcode = 0x8271
	HSLSaturationGet      opcode.Opcode = 0x8272
	HSLSaturationSet      opcode.Opcode = 0x8273
	HSLSaturationSetUnack opcode.Opcode = 0x8274
	HSLSaturationStatus   opcode.Opcode = 0x8275
	HSLSet                opcode.Opcode = 0x8276
	HSLSetUnack           opcode.Opcode = 0x8277
	HSLStatus             opcode.Opcode = 0x8278
	HSLTargetGet          opcode.Opcode = 0x8279
	HSLTargetStatus       opcode.Opcode = 0x827A
	HSLDefaultGet         opcode.Opcode = 0x827B
	HSLDefaultStatus      opcode.Opcode = 0x827C
	HSLRangeGet           opcode.Opcode = 0x827D
	HSLRangeStatus        opcode.Opcode = 0x827E

	HSLDefaultSet      opcode.Opcode = 0x827F
	HSLDefaultSetUnack opcode.Opcode = 0x8280
	HSLRangeSet        opcode.Opcode = 0x8281
	HSLRangeSetUnack   opcode.Opcode = 0x8282
)

var hslState = []string{"hsl_lightness", "hsl_hue", "hsl_saturation"}

var (
	hslDefault = schema.NewStruct(u16(hslState...)...)
	hslSet     = setLayout(u16(hslState...)...)
	hslStatus  = schema.Optional(u16(hslState...), schema.F("remaining_time", units.RemainingTime))

	hueSet    = setLayout(u16("hue")...)
	hueStatus = statusLayout(u16("present_hue"), u16("target_hue"))

	saturationSet    = setLayout(u16("saturation")...)
	saturationStatus = statusLayout(u16("present_saturation"), u16("target_saturation"))

	hslRange       = schema.NewStruct(u16("hue_range_min", "hue_range_max", "saturation_range_min", "saturation_range_max")...)
	hslRangeStatus = rangeStatus(u16("hue_range_min", "hue_range_max", "saturation_range_min", "saturation_range_max")...)
)

// HSL returns the Light HSL family.
func HSL() access.Family {
	return access.Family{
		Name: "light_hsl",
		Messages: []access.Definition{
			access.Def(HSLGet, "LIGHT_HSL_GET", access.Empty),
			access.Def(HSLHueGet, "LIGHT_HSL_HUE_GET", access.Empty),
			access.Def(HSLHueSet, "LIGHT_HSL_HUE_SET", hueSet),
			access.Def(HSLHueSetUnack, "LIGHT_HSL_HUE_SET_UNACKNOWLEDGED", hueSet),
			access.Def(HSLHueStatus, "LIGHT_HSL_HUE_STATUS", hueStatus),
			access.Def(HSLSaturationGet, "LIGHT_HSL_SATURATION_GET", access.Empty),
			access.Def(HSLSaturationSet, "LIGHT_HSL_SATURATION_SET", saturationSet),
			access.Def(HSLSaturationSetUnack, "LIGHT_HSL_SATURATION_SET_UNACKNOWLEDGED", saturationSet),
			access.Def(HSLSaturationStatus, "LIGHT_HSL_SATURATION_STATUS", saturationStatus),
			access.Def(HSLSet, "LIGHT_HSL_SET", hslSet),
			access.Def(HSLSetUnack, "LIGHT_HSL_SET_UNACKNOWLEDGED", hslSet),
			access.Def(HSLStatus, "LIGHT_HSL_STATUS", hslStatus),
			access.Def(HSLTargetGet, "LIGHT_HSL_TARGET_GET", access.Empty),
			access.Def(HSLTargetStatus, "LIGHT_HSL_TARGET_STATUS", hslStatus),
			access.Def(HSLDefaultGet, "LIGHT_HSL_DEFAULT_GET", access.Empty),
			access.Def(HSLDefaultStatus, "LIGHT_HSL_DEFAULT_STATUS", hslDefault),
			access.Def(HSLRangeGet, "LIGHT_HSL_RANGE_GET", access.Empty),
			access.Def(HSLRangeStatus, "LIGHT_HSL_RANGE_STATUS", hslRangeStatus),
		},
	}
}

// HSLSetup returns the Light HSL Setup family.
func HSLSetup() access.Family {
	return access.Family{
		Name: "light_hsl_setup",
		Messages: []access.Definition{
			access.Def(HSLDefaultSet, "LIGHT_HSL_SETUP_DEFAULT_SET", hslDefault),
			access.Def(HSLDefaultSetUnack, "LIGHT_HSL_SETUP_DEFAULT_SET_UNACKNOWLEDGED", hslDefault),
			access.Def(HSLRangeSet, "LIGHT_HSL_SETUP_RANGE_SET", hslRange),
			access.Def(HSLRangeSetUnack, "LIGHT_HSL_SETUP_RANGE_SET_UNACKNOWLEDGED", hslRange),
		},
	}
}

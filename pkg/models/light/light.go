// Package light defines the Light Lightness, Light CTL and Light HSL model
// families with their setup counterparts.
package light

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/models/config"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/units"
)

// Families returns every family declared by this package.
func Families() []access.Family {
	return []access.Family{
		Lightness(),
		LightnessSetup(),
		CTL(),
		CTLSetup(),
		HSL(),
		HSLSetup(),
	}
}

// u16 is shorthand for the 16-bit state fields every light message uses.
func u16(names ...string) []schema.Field {
	out := make([]schema.Field, len(names))
	for i, n := range names {
		out[i] = schema.F(n, schema.U16)
	}
	return out
}

// setLayout appends a transaction identifier and the optional transition
// to state.
func setLayout(state ...schema.Field) *schema.Variants {
	required := append(state, schema.F("tid", schema.U8))
	return schema.Optional(required, units.TransitionFields()...)
}

// statusLayout is present state, optionally followed by target state and
// the remaining time.
func statusLayout(present, target []schema.Field) *schema.Variants {
	optional := append(target, schema.F("remaining_time", units.RemainingTime))
	return schema.Optional(present, optional...)
}

// rangeStatus prefixes a range with its status code.
func rangeStatus(fields ...schema.Field) *schema.Struct {
	return schema.NewStruct(append([]schema.Field{schema.F("status", config.Status)}, fields...)...)
}

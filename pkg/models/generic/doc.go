// Package generic defines the Generic model families: OnOff, Level,
// Default Transition Time, Power OnOff and Battery.
package generic

import "github.com/backkem/btmesh/pkg/access"

// Families returns every family declared by this package.
func Families() []access.Family {
	return []access.Family{
		OnOff(),
		Level(),
		DefaultTransitionTime(),
		PowerOnOff(),
		PowerOnOffSetup(),
		Battery(),
	}
}

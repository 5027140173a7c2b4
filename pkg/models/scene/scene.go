// Package scene defines the Scene and Scene Setup model families.
package scene

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/units"
)

// Scene opcodes.
const (
	Get            opcode.Opcode = 0x8241
	Recall         opcode.Opcode = 0x8242
	RecallUnack    opcode.Opcode = 0x8243
	Status         opcode.Opcode = 0x5E
	RegisterGet    opcode.Opcode = 0x8244
	RegisterStatus opcode.Opcode = 0x8245
	Store          opcode.Opcode = 0x8246
	StoreUnack     opcode.Opcode = 0x8247
	Delete         opcode.Opcode = 0x829E
	DeleteUnack    opcode.Opcode = 0x829F
)

// StatusCode is the result of a scene operation.
type StatusCode uint8

const (
	StatusSuccess      StatusCode = 0x00
	StatusRegisterFull StatusCode = 0x01
	StatusNotFound     StatusCode = 0x02
)

func (s StatusCode) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusRegisterFull:
		return "SCENE_REGISTER_FULL"
	case StatusNotFound:
		return "SCENE_NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether s is a defined status code.
func (s StatusCode) IsValid() bool {
	return s <= StatusNotFound
}

// Scene number 0 is prohibited in recall and store.
var sceneNumber = schema.U16.Check(schema.NonZero())

var (
	statusCode = schema.U8.As(schema.Enum(StatusSuccess, StatusRegisterFull, StatusNotFound))

	recall = schema.Optional(
		[]schema.Field{
			schema.F("scene_number", sceneNumber),
			schema.F("tid", schema.U8),
		},
		units.TransitionFields()...,
	)

	status = schema.Optional(
		[]schema.Field{
			schema.F("status_code", statusCode),
			schema.F("current_scene", schema.U16),
		},
		schema.F("target_scene", schema.U16),
		schema.F("remaining_time", units.RemainingTime),
	)

	registerStatus = schema.NewStruct(
		schema.F("status_code", statusCode),
		schema.F("current_scene", schema.U16),
		schema.F("scenes", schema.Greedy(schema.U16)),
	)

	store  = schema.NewStruct(schema.F("scene_number", sceneNumber))
	remove = schema.NewStruct(schema.F("scene_number", schema.U16))
)

// Families returns the Scene and Scene Setup families.
func Families() []access.Family {
	return []access.Family{Scene(), Setup()}
}

// Scene returns the Scene family.
func Scene() access.Family {
	return access.Family{
		Name: "scene",
		Messages: []access.Definition{
			access.Def(Get, "SCENE_GET", access.Empty),
			access.Def(Recall, "SCENE_RECALL", recall),
			access.Def(RecallUnack, "SCENE_RECALL_UNACKNOWLEDGED", recall),
			access.Def(Status, "SCENE_STATUS", status),
			access.Def(RegisterGet, "SCENE_REGISTER_GET", access.Empty),
			access.Def(RegisterStatus, "SCENE_REGISTER_STATUS", registerStatus),
		},
	}
}

// Setup returns the Scene Setup family.
func Setup() access.Family {
	return access.Family{
		Name: "scene_setup",
		Messages: []access.Definition{
			access.Def(Store, "SCENE_STORE", store),
			access.Def(StoreUnack, "SCENE_STORE_UNACKNOWLEDGED", store),
			access.Def(Delete, "SCENE_DELETE", remove),
			access.Def(DeleteUnack, "SCENE_DELETE_UNACKNOWLEDGED", remove),
		},
	}
}

// Package mesh is the process-wide registry of every model family this
// module defines.
//
// DefaultCodec is built once on first use and shared; it is immutable and
// safe for concurrent use.
package mesh

import (
	"sync"

	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/models/config"
	"github.com/backkem/btmesh/pkg/models/generic"
	"github.com/backkem/btmesh/pkg/models/health"
	"github.com/backkem/btmesh/pkg/models/light"
	"github.com/backkem/btmesh/pkg/models/meshtime"
	"github.com/backkem/btmesh/pkg/models/scene"
	"github.com/backkem/btmesh/pkg/models/scheduler"
	"github.com/backkem/btmesh/pkg/models/sensor"
	"github.com/backkem/btmesh/pkg/models/silvair"
)

// Families returns every registered model family.
func Families() []access.Family {
	var out []access.Family
	for _, f := range [][]access.Family{
		config.Families(),
		generic.Families(),
		health.Families(),
		light.Families(),
		scene.Families(),
		sensor.Families(),
		meshtime.Families(),
		scheduler.Families(),
		silvair.Families(),
	} {
		out = append(out, f...)
	}
	return out
}

var defaultCodec = sync.OnceValues(func() (*access.Codec, error) {
	return access.NewCodec(access.CodecConfig{Families: Families()})
})

// DefaultCodec returns the shared codec over Families. It panics if two
// families collide, which is a programming error.
func DefaultCodec() *access.Codec {
	c, err := defaultCodec()
	if err != nil {
		panic(err)
	}
	return c
}

// NewCodec returns a codec over Families that logs through cfg's
// LoggerFactory. cfg.Families is ignored.
func NewCodec(cfg access.CodecConfig) (*access.Codec, error) {
	cfg.Families = Families()
	return access.NewCodec(cfg)
}

// Decode decodes pdu with the default codec.
func Decode(pdu []byte) (*access.Message, error) {
	return DefaultCodec().Decode(pdu)
}

// Encode encodes msg with the default codec.
func Encode(msg *access.Message) ([]byte, error) {
	return DefaultCodec().Encode(msg)
}

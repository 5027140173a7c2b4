package units

import (
	"github.com/backkem/btmesh/pkg/schema"
)

// Retransmit step units in milliseconds.
const (
	NetworkRetransmitUnit = 10
	PublishRetransmitUnit = 50
)

const maxRetransmitCount = 7

var retransmitBits = schema.Pack(1,
	schema.Bit("interval_steps", 5),
	schema.Bit("count", 3),
)

// RetransmitNode is the one-byte count/interval pair used by relay, network
// transmit and publication messages. It decodes to {count, interval} with
// the interval in milliseconds.
type RetransmitNode struct {
	unit int64
}

// Retransmit returns a retransmit field whose interval steps are unit ms.
func Retransmit(unit int64) *RetransmitNode {
	return &RetransmitNode{unit: unit}
}

// Unit returns the interval step in milliseconds.
func (n *RetransmitNode) Unit() int64 { return n.unit }

func (n *RetransmitNode) Kind() schema.Kind { return schema.KindCustom }

func (n *RetransmitNode) Describe() schema.Container {
	return schema.Container{
		"kind":    schema.KindCustom.String(),
		"adapter": "retransmit",
		"unit_ms": n.unit,
		"fields":  []any{"count", "interval"},
	}
}

func (n *RetransmitNode) Decode(r *schema.Reader, sc *schema.Scope) (any, error) {
	v, err := retransmitBits.Decode(r, sc)
	if err != nil {
		return nil, err
	}
	bits := v.(schema.Container)
	steps := int64(bits["interval_steps"].(int))
	return schema.Container{
		"count":    bits["count"],
		"interval": int((steps + 1) * n.unit),
	}, nil
}

func (n *RetransmitNode) Encode(w *schema.Writer, v any, sc *schema.Scope) error {
	c, err := schema.ToContainer(v)
	if err != nil {
		return err
	}
	count, err := field(c, "count")
	if err != nil {
		return err
	}
	interval, err := field(c, "interval")
	if err != nil {
		return err
	}
	if count < 0 || count > maxRetransmitCount {
		return schema.Invalid("retransmit count %d exceeds %d", count, maxRetransmitCount)
	}
	if interval <= 0 || interval > 0x20*n.unit || interval%n.unit != 0 {
		return schema.Invalid("retransmit interval %d must be a multiple of %d up to %d", interval, n.unit, 0x20*n.unit)
	}
	return retransmitBits.Encode(w, schema.Container{
		"interval_steps": interval/n.unit - 1,
		"count":          count,
	}, sc)
}

func field(c schema.Container, name string) (int64, error) {
	v, ok := c[name]
	if !ok {
		return 0, &schema.FieldError{Path: name, Err: schema.ErrMissingField}
	}
	i, err := schema.ToInt(v)
	if err != nil {
		return 0, &schema.FieldError{Path: name, Err: err}
	}
	return i, nil
}

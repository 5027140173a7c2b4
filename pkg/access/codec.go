// Package access implements the Access-layer message dispatcher.
//
// A Codec is built once from a set of model families. It maps every opcode
// to a parameter layout and translates between wire PDUs and Messages.
// Opcodes that no family declares are passed through as raw bytes.
//
// A Codec is immutable after construction and safe for concurrent use.
package access

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/pion/logging"

	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
)

// Message is a decoded Access-layer PDU.
type Message struct {
	// Opcode is the message opcode.
	Opcode opcode.Opcode

	// Name is the registered message name, or "" for unknown opcodes.
	// When encoding, a non-empty Name selects the definition.
	Name string

	// Params holds the decoded parameters of a registered message.
	Params schema.Container

	// Raw holds the parameter bytes of an unregistered opcode.
	Raw []byte
}

// Known reports whether the message was decoded with a registered layout.
func (m *Message) Known() bool {
	return m.Name != ""
}

// CodecConfig configures a Codec.
type CodecConfig struct {
	// Families are the model families to register.
	Families []Family

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Codec decodes and encodes Access-layer PDUs.
type Codec struct {
	byOpcode map[opcode.Opcode]*Definition
	byName   map[string]*Definition
	families []Family

	log logging.LeveledLogger
}

// NewCodec builds a Codec. It fails if two messages share an opcode or a
// name, or if an opcode cannot be encoded.
func NewCodec(config CodecConfig) (*Codec, error) {
	c := &Codec{
		byOpcode: make(map[opcode.Opcode]*Definition),
		byName:   make(map[string]*Definition),
		families: config.Families,
	}

	if config.LoggerFactory != nil {
		c.log = config.LoggerFactory.NewLogger("access")
	}

	for _, f := range config.Families {
		for i := range f.Messages {
			def := f.Messages[i]
			def.Family = f.Name

			if !def.Opcode.IsValid() {
				return nil, fmt.Errorf("%w: %s %s", opcode.ErrInvalidOpcode, def.Name, def.Opcode)
			}
			if prev, ok := c.byOpcode[def.Opcode]; ok {
				return nil, fmt.Errorf("%w: %s declared by %s and %s", ErrDuplicateOpcode, def.Opcode, prev.Family, f.Name)
			}
			if _, ok := c.byName[def.Name]; ok {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateName, def.Name)
			}
			if def.Params == nil {
				def.Params = Empty
			}

			c.byOpcode[def.Opcode] = &def
			c.byName[def.Name] = &def
		}
	}

	if c.log != nil {
		c.log.Debugf("registered %d messages from %d families", len(c.byOpcode), len(c.families))
	}

	return c, nil
}

// Decode decodes a complete Access-layer PDU.
func (c *Codec) Decode(pdu []byte) (*Message, error) {
	op, body, err := opcode.Decode(pdu)
	if err != nil {
		return nil, err
	}

	def, ok := c.byOpcode[op]
	if !ok {
		if c.log != nil {
			c.log.Tracef("passing through unknown opcode %s (%d bytes)", op, len(body))
		}
		return &Message{Opcode: op, Raw: bytes.Clone(body)}, nil
	}

	v, err := schema.Decode(def.Params, body)
	if err != nil {
		return nil, fmt.Errorf("access: %s: %w", def.Name, schema.WrapField("params", err))
	}
	params, ok := v.(schema.Container)
	if !ok {
		return nil, fmt.Errorf("access: %s: %w: body is %T", def.Name, schema.ErrInvalidValue, v)
	}

	return &Message{Opcode: op, Name: def.Name, Params: params}, nil
}

// Encode encodes msg to a PDU.
//
// The definition is chosen by msg.Name when set, otherwise by msg.Opcode.
// An opcode without a definition is written followed by msg.Raw; it must
// not carry Params.
func (c *Codec) Encode(msg *Message) ([]byte, error) {
	if msg == nil {
		return nil, ErrNilMessage
	}

	def, err := c.resolve(msg)
	if err != nil {
		return nil, err
	}

	if def == nil {
		if len(msg.Params) > 0 {
			return nil, fmt.Errorf("access: %s: %w: parameters given for an unregistered opcode, use Raw",
				msg.Opcode, schema.ErrInvalidValue)
		}
		out, err := opcode.Encode(msg.Opcode)
		if err != nil {
			return nil, err
		}
		return append(out, msg.Raw...), nil
	}

	params := msg.Params
	if params == nil {
		params = schema.Container{}
	}
	body, err := schema.Encode(def.Params, params)
	if err != nil {
		return nil, fmt.Errorf("access: %s: %w", def.Name, schema.WrapField("params", err))
	}

	out, err := opcode.Encode(def.Opcode)
	if err != nil {
		return nil, err
	}
	return append(out, body...), nil
}

func (c *Codec) resolve(msg *Message) (*Definition, error) {
	if msg.Name == "" {
		return c.byOpcode[msg.Opcode], nil
	}

	def, ok := c.byName[msg.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, msg.Name)
	}
	if msg.Opcode != 0 && msg.Opcode != def.Opcode {
		return nil, fmt.Errorf("%w: %s is %s, not %s", ErrOpcodeMismatch, def.Name, def.Opcode, msg.Opcode)
	}
	return def, nil
}

// Lookup returns the definition registered under name.
func (c *Codec) Lookup(name string) (Definition, bool) {
	def, ok := c.byName[name]
	if !ok {
		return Definition{}, false
	}
	return *def, true
}

// Definition returns the definition registered for op.
func (c *Codec) Definition(op opcode.Opcode) (Definition, bool) {
	def, ok := c.byOpcode[op]
	if !ok {
		return Definition{}, false
	}
	return *def, true
}

// Messages returns every registered definition ordered by opcode.
func (c *Codec) Messages() []Definition {
	out := make([]Definition, 0, len(c.byOpcode))
	for _, def := range c.byOpcode {
		out = append(out, *def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Opcode < out[j].Opcode })
	return out
}

// Families returns the registered families in registration order.
func (c *Codec) Families() []Family {
	return c.families
}

// Name returns the registered name of op, or its hex form.
func (c *Codec) Name(op opcode.Opcode) string {
	if def, ok := c.byOpcode[op]; ok {
		return def.Name
	}
	return op.String()
}

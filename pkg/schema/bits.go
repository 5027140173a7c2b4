package schema

import (
	"fmt"
	"slices"
)

// BitField is a slice of a Bits group.
type BitField struct {
	Name       string
	Width      int
	adapter    Adapter
	validators []Validator
	flag       bool
}

// Bit returns an unsigned sub-field of width bits.
func Bit(name string, width int) BitField {
	return BitField{Name: name, Width: width}
}

// BitFlag returns a single-bit boolean sub-field.
func BitFlag(name string) BitField {
	return BitField{Name: name, Width: 1, flag: true}
}

// As returns a copy of f that passes values through a.
func (f BitField) As(a Adapter) BitField {
	f.adapter = a
	return f
}

// Check returns a copy of f with additional validators.
func (f BitField) Check(vs ...Validator) BitField {
	f.validators = append(slices.Clone(f.validators), vs...)
	return f
}

// Adapter returns the sub-field adapter, or nil.
func (f BitField) Adapter() Adapter { return f.adapter }

// IsFlag reports whether the sub-field decodes to a bool.
func (f BitField) IsFlag() bool { return f.flag }

// Bits packs several sub-fields into one unsigned integer. Sub-fields are
// taken most significant first.
type Bits struct {
	size         int
	littleEndian bool
	fields       []BitField
}

// Pack creates a big-endian bit group of size bytes. It panics if the
// sub-field widths do not add up to size*8.
func Pack(size int, fields ...BitField) *Bits {
	total := 0
	for _, f := range fields {
		total += f.Width
	}
	if total != size*8 {
		panic(fmt.Sprintf("schema: bit group of %d bytes declares %d bits", size, total))
	}
	return &Bits{size: size, fields: fields}
}

// PackLE creates a bit group whose bytes are read as a little-endian integer
// before the sub-fields are extracted.
func PackLE(size int, fields ...BitField) *Bits {
	b := Pack(size, fields...)
	b.littleEndian = true
	return b
}

func (b *Bits) Kind() Kind { return KindBits }

// Size returns the group width in bytes.
func (b *Bits) Size() int { return b.size }

// LittleEndian reports the byte order of the packed integer.
func (b *Bits) LittleEndian() bool { return b.littleEndian }

// Fields returns the sub-fields, most significant first.
func (b *Bits) Fields() []BitField { return b.fields }

func (b *Bits) Decode(r *Reader, sc *Scope) (any, error) {
	u, err := r.Uint(b.size, !b.littleEndian)
	if err != nil {
		return nil, err
	}

	out := Container{}
	shift := b.size * 8
	for _, f := range b.fields {
		shift -= f.Width
		raw := int64(u >> uint(shift) & (1<<uint(f.Width) - 1))

		if IsInternal(f.Name) {
			if raw != 0 {
				out[f.Name] = int(raw)
			}
			continue
		}

		var v any
		if f.flag && f.adapter == nil {
			v = raw != 0
			if err := validate(v, f.validators); err != nil {
				return nil, wrapField(f.Name, err)
			}
		} else {
			v, err = decodeRaw(raw, f.adapter, f.validators)
			if err != nil {
				return nil, wrapField(f.Name, err)
			}
		}
		out[f.Name] = v
	}
	return out, nil
}

func (b *Bits) Encode(w *Writer, v any, sc *Scope) error {
	c, err := ToContainer(v)
	if err != nil {
		return err
	}

	var u uint64
	shift := b.size * 8
	for _, f := range b.fields {
		shift -= f.Width

		x, ok := c[f.Name]
		if !ok {
			if !IsInternal(f.Name) {
				return wrapField(f.Name, ErrMissingField)
			}
			x = 0
		}

		raw, err := encodeRaw(x, f.adapter, f.validators)
		if err != nil {
			return wrapField(f.Name, err)
		}
		if err := checkRange(raw, f.Width, false); err != nil {
			return wrapField(f.Name, err)
		}
		u |= uint64(raw) << uint(shift)
	}

	w.PutUint(u, b.size, !b.littleEndian)
	return nil
}

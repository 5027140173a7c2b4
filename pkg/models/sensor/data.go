package sensor

import (
	"bytes"
	"fmt"

	"github.com/backkem/btmesh/pkg/properties"
	"github.com/backkem/btmesh/pkg/schema"
)

// Marshalled sensor data formats.
const (
	// FormatA carries a 4-bit length and an 11-bit property identifier.
	FormatA = 0
	// FormatB carries a 7-bit length and a 16-bit property identifier.
	FormatB = 1
)

const (
	maxFormatALength = 16
	maxFormatAID     = 1<<11 - 1
	maxFormatBLength = 128
)

// Data is one marshalled sensor value of a SENSOR_STATUS message. It
// decodes to a container with format, length, sensor_setting_property_id
// and sensor_setting_raw. Format A values are decoded through the property
// table while format B values stay bytes. On encode format and length are
// optional: the length is derived from the value and the shortest format is
// chosen.
var Data schema.Node = dataNode{}

type dataNode struct{}

func (dataNode) Kind() schema.Kind { return schema.KindCustom }

func (dataNode) Describe() schema.Container {
	return schema.Container{
		"kind":    schema.KindCustom.String(),
		"adapter": "marshalled_sensor_data",
	}
}

func (dataNode) Decode(r *schema.Reader, sc *schema.Scope) (any, error) {
	hdr, err := r.Read(2)
	if err != nil {
		return nil, err
	}

	var (
		format = int(hdr[0] & 0x01)
		length int
		id     properties.PropertyID
	)
	if format == FormatA {
		length = int(hdr[0]>>1&0x0F) + 1
		id = properties.PropertyID(uint16(hdr[0]>>5) | uint16(hdr[1])<<3)
	} else {
		hi, err := r.Read(1)
		if err != nil {
			return nil, err
		}
		length = int(hdr[0]>>1) + 1
		id = properties.PropertyID(uint16(hdr[1]) | uint16(hi[0])<<8)
	}

	raw, err := r.Read(length)
	if err != nil {
		return nil, err
	}
	value, err := decodeValue(format, id, raw)
	if err != nil {
		return nil, schema.WrapField("sensor_setting_raw", err)
	}

	return schema.Container{
		"format":                     format,
		"length":                     length,
		"sensor_setting_property_id": id,
		"sensor_setting_raw":         value,
	}, nil
}

func (dataNode) Encode(w *schema.Writer, v any, sc *schema.Scope) error {
	c, err := schema.ToContainer(v)
	if err != nil {
		return err
	}

	idv, ok := c["sensor_setting_property_id"]
	if !ok {
		return schema.WrapField("sensor_setting_property_id", schema.ErrMissingField)
	}
	rawID, err := properties.ID.Adapter().Encode(idv)
	if err != nil {
		return schema.WrapField("sensor_setting_property_id", err)
	}
	if rawID < 0 || rawID > 0xFFFF {
		return schema.WrapField("sensor_setting_property_id",
			fmt.Errorf("%w: %d is not a property identifier", schema.ErrInvalidValue, rawID))
	}
	id := properties.PropertyID(rawID)

	value, ok := c["sensor_setting_raw"]
	if !ok {
		return schema.WrapField("sensor_setting_raw", schema.ErrMissingField)
	}
	format := -1
	if f, ok := c["format"]; ok {
		n, err := schema.ToInt(f)
		if err != nil {
			return schema.WrapField("format", err)
		}
		if n != FormatA && n != FormatB {
			return schema.WrapField("format", fmt.Errorf("%w: unknown format %d", schema.ErrInvalidValue, n))
		}
		format = int(n)
	}

	data, err := encodeValue(format, id, value)
	if err != nil {
		return schema.WrapField("sensor_setting_raw", err)
	}
	length := len(data)
	if length == 0 {
		return schema.WrapField("sensor_setting_raw", fmt.Errorf("%w: empty value", schema.ErrInvalidValue))
	}

	if want, ok := c["length"]; ok {
		n, err := schema.ToInt(want)
		if err != nil {
			return schema.WrapField("length", err)
		}
		if int(n) != length {
			return schema.WrapField("length",
				fmt.Errorf("%w: length %d does not match %d-byte value", schema.ErrInvalidValue, n, length))
		}
	}

	if format < 0 {
		format = FormatA
		if id > maxFormatAID || length > maxFormatALength {
			format = FormatB
		}
	}

	switch format {
	case FormatA:
		if id > maxFormatAID || length > maxFormatALength {
			return fmt.Errorf("%w: %s with %d bytes does not fit format A", schema.ErrInvalidValue, id, length)
		}
		w.Write([]byte{
			byte(length-1)<<1 | byte(id&0x07)<<5,
			byte(id >> 3),
		})
	default:
		if length > maxFormatBLength {
			return fmt.Errorf("%w: %d bytes do not fit format B", schema.ErrInvalidValue, length)
		}
		w.Write([]byte{
			byte(length-1)<<1 | FormatB,
			byte(id),
			byte(id >> 8),
		})
	}
	w.Write(data)
	return nil
}

// Format A values go through the property table. Format B values and
// identifiers outside the enumeration are kept as bytes.
func decodeValue(format int, id properties.PropertyID, raw []byte) (any, error) {
	if format == FormatB || !id.IsValid() {
		return bytes.Clone(raw), nil
	}
	return properties.Decode(id, raw)
}

// A negative format means the caller left it out, in which case a known
// property is encoded through the table and the format follows from the
// resulting length.
func encodeValue(format int, id properties.PropertyID, v any) ([]byte, error) {
	if format == FormatB || !id.IsValid() {
		return schema.ToBytes(v)
	}
	return properties.Encode(id, v)
}

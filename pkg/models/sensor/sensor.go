// Package sensor defines the Sensor and Sensor Setup model families.
//
// Sensor values are typed by their property identifier: the layout of a
// value field is looked up in the properties table using the identifier
// decoded earlier in the same message. Identifiers outside the table are
// carried as raw bytes where the value runs to the end of the message, and
// rejected elsewhere since their length is unknown.
package sensor

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/properties"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/units"
)

// Sensor opcodes.
const (
	DescriptorGet    opcode.Opcode = 0x8230
	DescriptorStatus opcode.Opcode = 0x51
	Get              opcode.Opcode = 0x8231
	Status           opcode.Opcode = 0x52
	ColumnGet        opcode.Opcode = 0x8232
	ColumnStatus     opcode.Opcode = 0x53
	SeriesGet        opcode.Opcode = 0x8233
	SeriesStatus     opcode.Opcode = 0x54
)

// Sampling is the sampling function of a sensor.
type Sampling uint8

const (
	SamplingUnspecified    Sampling = 0x00
	SamplingInstantaneous  Sampling = 0x01
	SamplingArithmeticMean Sampling = 0x02
	SamplingRMS            Sampling = 0x03
	SamplingMaximum        Sampling = 0x04
	SamplingMinimum        Sampling = 0x05
	SamplingAccumulated    Sampling = 0x06
	SamplingCount          Sampling = 0x07
)

var samplingNames = [...]string{
	"UNSPECIFIED",
	"INSTANTANEOUS",
	"ARITHMETIC_MEAN",
	"RMS",
	"MAXIMUM",
	"MINIMUM",
	"ACCUMULATED",
	"COUNT",
}

func (s Sampling) String() string {
	if s.IsValid() {
		return samplingNames[s]
	}
	return "UNKNOWN"
}

// IsValid reports whether s is a defined sampling function.
func (s Sampling) IsValid() bool {
	return int(s) < len(samplingNames)
}

var sampling = schema.U8.As(schema.Enum(
	SamplingUnspecified,
	SamplingInstantaneous,
	SamplingArithmeticMean,
	SamplingRMS,
	SamplingMaximum,
	SamplingMinimum,
	SamplingAccumulated,
	SamplingCount,
))

// propertyValue is a value typed by the sibling property_id field.
func propertyValue(last bool) schema.Node {
	if last {
		return properties.Value("property_id", properties.Raw)
	}
	return properties.Value("property_id", properties.Fixed)
}

var (
	propertyID = schema.F("property_id", properties.ID)

	// Get messages may name one property or ask for all of them.
	get = schema.Optional(nil, propertyID)

	descriptor = schema.NewStruct(
		schema.F("sensor_property_id", properties.ID),
		units.DoubleKeyIndex("sensor_negative_tolerance", "sensor_positive_tolerance"),
		schema.F("sensor_sampling_function", sampling),
		schema.F("sensor_measurement_period", schema.U8),
		schema.F("sensor_update_interval", schema.U8),
	)

	// An unknown property is reported by its identifier alone.
	descriptorStatus = schema.NewStruct(
		schema.F("descriptors", schema.Greedy(schema.Select(
			descriptor,
			schema.NewStruct(schema.F("sensor_property_id", properties.ID)),
		))),
	)

	status = schema.NewStruct(
		schema.F("sensor_data", schema.Greedy(Data)),
	)

	columnGet = schema.NewStruct(
		propertyID,
		schema.F("raw_value_x", propertyValue(true)),
	)

	columnStatus = schema.OneOf(
		schema.NewStruct(
			propertyID,
			schema.F("raw_value_x", propertyValue(false)),
			schema.F("column_width", propertyValue(false)),
			schema.F("raw_value_y", propertyValue(true)),
		),
		schema.NewStruct(
			propertyID,
			schema.F("raw_value_x", propertyValue(true)),
		),
		schema.NewStruct(propertyID),
	)

	seriesGet = schema.Optional(
		[]schema.Field{propertyID},
		schema.F("raw_value_x1", propertyValue(false)),
		schema.F("raw_value_x2", propertyValue(false)),
	)

	seriesStatus = schema.NewStruct(
		propertyID,
		schema.F("series", schema.Greedy(schema.NewStruct(
			schema.F("raw_value_x", propertyValue(false)),
			schema.F("column_width", propertyValue(false)),
			schema.F("raw_value_y", propertyValue(false)),
		))),
	)
)

// Families returns the Sensor and Sensor Setup families.
func Families() []access.Family {
	return []access.Family{Sensor(), Setup()}
}

// Sensor returns the Sensor family.
func Sensor() access.Family {
	return access.Family{
		Name: "sensor",
		Messages: []access.Definition{
			access.Def(DescriptorGet, "SENSOR_DESCRIPTOR_GET", get),
			access.Def(DescriptorStatus, "SENSOR_DESCRIPTOR_STATUS", descriptorStatus),
			access.Def(Get, "SENSOR_GET", get),
			access.Def(Status, "SENSOR_STATUS", status),
			access.Def(ColumnGet, "SENSOR_COLUMN_GET", columnGet),
			access.Def(ColumnStatus, "SENSOR_COLUMN_STATUS", columnStatus),
			access.Def(SeriesGet, "SENSOR_SERIES_GET", seriesGet),
			access.Def(SeriesStatus, "SENSOR_SERIES_STATUS", seriesStatus),
		},
	}
}

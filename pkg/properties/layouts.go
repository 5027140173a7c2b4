package properties

import (
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/units"
)

// Characteristic leaves.
var (
	current     = units.ElectricCurrent
	voltage     = units.Voltage
	illuminance = units.Illuminance
	percentage  = units.Percentage8

	relativeValue = schema.U8.As(units.Scale(0.5, 1))
	temperature   = schema.S16.As(units.Scale(0.01, 2))
	temperature8  = schema.S8.As(units.Scale(0.5, 1))
	power         = schema.U24.As(units.Scale(0.1, 1).WithUnknown(0xFFFFFF))
	kiloLumenHour = schema.U24.As(units.Scale(1000, 1).WithUnknown(0xFFFFFF))
	efficacy      = schema.U16.As(units.Scale(0.1, 1).WithUnknown(0xFFFF))
	chromaticity  = schema.U16.As(units.Scale(1.0/0xFFFF, units.NoRounding))
)

// Time characteristics.
var (
	timeMillis24 = schema.NewStruct(schema.F("seconds", units.TimeMillis24))
	timeHour24   = schema.NewStruct(schema.F("hours", units.Count24))
	timeSecond16 = schema.NewStruct(schema.F("seconds", units.Count16))
	timeSecond32 = schema.NewStruct(schema.F("seconds", units.Count(4)))
	timeExp8     = schema.NewStruct(schema.F("seconds", units.TimeExponential8))
	timeDecihour = schema.NewStruct(schema.F("hour", schema.U8.As(units.Scale(0.1, 1).WithUnknown(0xFF))))
	dateUTC      = schema.NewStruct(schema.F("date", units.Date))
)

// Electric current.
var (
	electricCurrent = schema.NewStruct(schema.F("current", current))

	averageCurrent = schema.NewStruct(
		schema.F("electric_current_value", current),
		schema.F("sensing_duration", timeExp8),
	)

	electricCurrentRange = schema.NewStruct(
		schema.F("minimum_electric_current_value", current),
		schema.F("maximum_electric_current_value", current),
	)

	electricCurrentSpecification = schema.NewStruct(
		schema.F("minimum_electric_current_value", current),
		schema.F("typical_electric_current_value", current),
		schema.F("maximum_electric_current_value", current),
	)

	electricCurrentStatistics = schema.NewStruct(
		schema.F("average_electric_current_value", current),
		schema.F("standard_deviation_electric_current_value", current),
		schema.Embed(electricCurrentRange),
		schema.F("sensing_duration", timeExp8),
	)

	relativeValueInACurrentRange = schema.NewStruct(
		schema.F("relative_value", percentage),
		schema.F("minimum_current", current),
		schema.F("maximum_current", current),
	)
)

// Voltage.
var (
	voltageValue = schema.NewStruct(schema.F("voltage", voltage))

	averageVoltage = schema.NewStruct(
		schema.F("voltage_value", voltage),
		schema.F("sensing_duration", timeExp8),
	)

	voltageRange = schema.NewStruct(
		schema.F("minimum_voltage_value", voltage),
		schema.F("typical_voltage_value", voltage),
		schema.F("maximum_voltage_value", voltage),
	)

	voltageStatistics = schema.NewStruct(
		schema.F("average_voltage_value", voltage),
		schema.F("standard_deviation_voltage_value", voltage),
		schema.F("minimum_voltage_value", voltage),
		schema.F("maximum_voltage_value", voltage),
		schema.F("sensing_duration", timeExp8),
	)

	relativeValueInAVoltageRange = schema.NewStruct(
		schema.F("relative_value", relativeValue),
		schema.F("minimum_voltage", voltage),
		schema.F("maximum_voltage", voltage),
	)
)

// Energy and power.
var (
	energy        = schema.NewStruct(schema.F("energy", units.Energy))
	preciseEnergy = schema.NewStruct(schema.F("energy", units.Count(4)))

	energyInAPeriodOfDay = schema.NewStruct(
		schema.F("energy_value", units.Energy),
		schema.F("start_time", timeDecihour),
		schema.F("end_time", timeDecihour),
	)

	powerValue = schema.NewStruct(schema.F("power", power))

	powerSpecification = schema.NewStruct(
		schema.F("minimum_power_value", power),
		schema.F("typical_power_value", power),
		schema.F("maximum_power_value", power),
	)
)

// Temperature.
var (
	temperatureValue  = schema.NewStruct(schema.F("temperature", temperature))
	temperature8Value = schema.NewStruct(schema.F("temperature", temperature8))

	temperatureRange = schema.NewStruct(
		schema.F("minimum_temperature", temperature8),
		schema.F("maximum_temperature", temperature8),
	)

	temperature8Statistics = schema.NewStruct(
		schema.F("average_temperature", temperature8),
		schema.F("standard_deviation_temperature", temperature8),
		schema.Embed(temperatureRange),
		schema.F("sensing_duration", timeExp8),
	)

	temperature8InAPeriodOfDay = schema.NewStruct(
		schema.F("temperature", temperature8),
		schema.F("start_time", timeDecihour),
		schema.F("end_time", timeDecihour),
	)

	temperatureStatistics = schema.NewStruct(
		schema.F("average_temperature", temperature),
		schema.F("standard_deviation_temperature", temperature),
		schema.F("minimum_temperature", temperature),
		schema.F("maximum_temperature", temperature),
		schema.F("sensing_duration", timeExp8),
	)

	relativeValueInATemperatureRange = schema.NewStruct(
		schema.F("relative_value", relativeValue),
		schema.F("minimum_temperature", temperature),
		schema.F("maximum_temperature", temperature),
	)
)

// Light.
var (
	luminousFlux = schema.NewStruct(schema.F("luminous_flux", units.Count16))

	luminousFluxRange = schema.NewStruct(
		schema.F("minimum_luminous_flux", units.Count16),
		schema.F("maximum_luminous_flux", units.Count16),
	)

	luminousEnergy    = schema.NewStruct(schema.F("luminous_energy", kiloLumenHour))
	luminousExposure  = schema.NewStruct(schema.F("luminous_exposure", kiloLumenHour))
	luminousIntensity = schema.NewStruct(schema.F("luminous_intensity", units.Count16))
	luminousEfficacy  = schema.NewStruct(schema.F("luminous_efficacy", efficacy))
	illuminanceValue  = schema.NewStruct(schema.F("illuminance", illuminance))

	relativeValueInAnIlluminanceRange = schema.NewStruct(
		schema.F("relative_value", relativeValue),
		schema.F("minimum_illuminance", illuminance),
		schema.F("maximum_illuminance", illuminance),
	)

	perceivedLightness = schema.NewStruct(schema.F("perceived_lightness", schema.U16))
)

// Counters.
var (
	percentage8 = schema.NewStruct(schema.F("percentage", percentage))
	count16     = schema.NewStruct(schema.F("count", units.Count16))
	count24     = schema.NewStruct(schema.F("count", units.Count24))
	coefficient = schema.NewStruct(schema.F("coefficient", units.Count(4)))
)

// Chromaticity.
var (
	chromaticityTolerance = schema.NewStruct(
		schema.F("chromaticity_tolerance", schema.S8.As(units.Scale(0.0001, 4))),
	)

	chromaticDistanceFromPlanckian = schema.NewStruct(
		schema.F("distance_from_planckian", schema.S16.As(units.Scale(0.00001, 5))),
	)

	correlatedColorTemperature = schema.NewStruct(
		schema.F("correlated_color_temperature", units.Count16),
	)

	chromaticityCoordinates = schema.NewStruct(
		schema.F("chromaticity_x_coordinate", chromaticity),
		schema.F("chromaticity_y_coordinate", chromaticity),
	)

	colorRenderingIndex = schema.NewStruct(schema.F("color_rendering_index", schema.S8))
)

// Device information.
var (
	globalTradeItemNumber = schema.NewStruct(schema.F("global_trade_item_number", schema.U48))

	// Appearance is the GAP appearance: a 10-bit category and a 6-bit
	// sub-category in a little-endian word.
	Appearance = schema.PackLE(2,
		schema.Bit("category", 10),
		schema.Bit("sub_category", 6),
	)

	appearance  = schema.NewStruct(schema.Embed(Appearance))
	countryCode = schema.NewStruct(schema.F("country_code", units.Count16))
	presence    = schema.NewStruct(schema.F("presence_detected", schema.Flag))
)

func fixedString(n int) schema.Node { return schema.PaddedString(n) }

var (
	eventStatistics = schema.NewStruct(
		schema.F("number_of_events", count16),
		schema.F("average_event_duration", timeSecond16),
		schema.F("time_elapsed_since_last_event", timeExp8),
		schema.F("sensing_duration", timeExp8),
	)

	relativeRuntimeInAGenericLevelRange = schema.NewStruct(
		schema.F("relative_value", relativeValue),
		schema.F("minimum_generic_level", schema.U16),
		schema.F("maximum_generic_level", schema.U16),
	)
)

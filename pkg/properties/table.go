package properties

import (
	"fmt"

	"github.com/backkem/btmesh/pkg/schema"
)

var layouts = map[PropertyID]schema.Node{
	AverageAmbientTemperatureInAPeriodOfDay:           temperature8InAPeriodOfDay,
	AverageInputCurrent:                               averageCurrent,
	AverageInputVoltage:                               averageVoltage,
	AverageOutputCurrent:                              averageCurrent,
	AverageOutputVoltage:                              averageVoltage,
	CenterBeamIntensityAtFullPower:                    luminousIntensity,
	ChromaticityTolerance:                             chromaticityTolerance,
	ColorRenderingIndexR9:                             colorRenderingIndex,
	ColorRenderingIndexRA:                             colorRenderingIndex,
	DeviceAppearance:                                  appearance,
	DeviceCountryOfOrigin:                             countryCode,
	DeviceDateOfManufacture:                           dateUTC,
	DeviceEnergyUseSinceTurnOn:                        energy,
	DeviceFirmwareRevision:                            fixedString(8),
	DeviceGlobalTradeItemNumber:                       globalTradeItemNumber,
	DeviceHardwareRevision:                            fixedString(16),
	DeviceManufacturerName:                            fixedString(36),
	DeviceModelNumber:                                 fixedString(24),
	DeviceOperatingTemperatureRangeSpecification:      temperatureRange,
	DeviceOperatingTemperatureStatisticalValues:       temperatureStatistics,
	DeviceOverTemperatureEventStatistics:              eventStatistics,
	DevicePowerRangeSpecification:                     powerSpecification,
	DeviceRuntimeSinceTurnOn:                          timeHour24,
	DeviceRuntimeWarranty:                             timeHour24,
	DeviceSerialNumber:                                fixedString(16),
	DeviceSoftwareRevision:                            fixedString(8),
	DeviceUnderTemperatureEventStatistics:             eventStatistics,
	IndoorAmbientTemperatureStatisticalValues:         temperature8Statistics,
	InitialCIE1931ChromaticityCoordinates:             chromaticityCoordinates,
	InitialCorrelatedColorTemperature:                 correlatedColorTemperature,
	InitialLuminousFlux:                               luminousFlux,
	InitialPlanckianDistance:                          chromaticDistanceFromPlanckian,
	InputCurrentRangeSpecification:                    electricCurrentSpecification,
	InputCurrentStatistics:                            electricCurrentStatistics,
	InputOverCurrentEventStatistics:                   eventStatistics,
	InputOverRippleVoltageEventStatistics:             eventStatistics,
	InputOverVoltageEventStatistics:                   eventStatistics,
	InputUnderCurrentEventStatistics:                  eventStatistics,
	InputUnderVoltageEventStatistics:                  eventStatistics,
	InputVoltageRangeSpecification:                    voltageRange,
	InputVoltageRippleSpecification:                   percentage8,
	InputVoltageStatistics:                            voltageStatistics,
	LightControlAmbientLuxlevelOn:                     illuminanceValue,
	LightControlAmbientLuxlevelProlong:                illuminanceValue,
	LightControlAmbientLuxlevelStandby:                illuminanceValue,
	LightControlLightnessOn:                           perceivedLightness,
	LightControlLightnessProlong:                      perceivedLightness,
	LightControlLightnessStandby:                      perceivedLightness,
	LightControlRegulatorAccuracy:                     percentage8,
	LightControlRegulatorKID:                          coefficient,
	LightControlRegulatorKIU:                          coefficient,
	LightControlRegulatorKPD:                          coefficient,
	LightControlRegulatorKPU:                          coefficient,
	LightControlTimeFade:                              timeMillis24,
	LightControlTimeFadeOn:                            timeMillis24,
	LightControlTimeFadeStandbyAuto:                   timeMillis24,
	LightControlTimeFadeStandbyManual:                 timeMillis24,
	LightControlTimeOccupancyDelay:                    timeMillis24,
	LightControlTimeProlong:                           timeMillis24,
	LightControlTimeRunOn:                             timeMillis24,
	LumenMaintenanceFactor:                            percentage8,
	LuminousEfficacy:                                  luminousEfficacy,
	LuminousEnergySinceTurnOn:                         luminousEnergy,
	LuminousExposure:                                  luminousExposure,
	LuminousFluxRange:                                 luminousFluxRange,
	MotionSensed:                                      percentage8,
	MotionThreshold:                                   percentage8,
	OpenCircuitEventStatistics:                        eventStatistics,
	OutdoorStatisticalValues:                          temperature8Statistics,
	OutputCurrentRange:                                electricCurrentRange,
	OutputCurrentStatistics:                           electricCurrentStatistics,
	OutputRippleVoltageSpecification:                  percentage8,
	OutputVoltageRange:                                voltageRange,
	OutputVoltageStatistics:                           voltageStatistics,
	OverOutputRippleVoltageEventStatistics:            eventStatistics,
	PeopleCount:                                       count16,
	PresenceDetected:                                  presence,
	PresentAmbientLightLevel:                          illuminanceValue,
	PresentAmbientTemperature:                         temperature8Value,
	PresentCIE1931ChromaticityCoordinates:             chromaticityCoordinates,
	PresentCorrelatedColorTemperature:                 correlatedColorTemperature,
	PresentDeviceInputPower:                           powerValue,
	PresentDeviceOperatingEfficiency:                  percentage8,
	PresentDeviceOperatingTemperature:                 temperatureValue,
	PresentIlluminance:                                illuminanceValue,
	PresentIndoorAmbientTemperature:                   temperature8Value,
	PresentInputCurrent:                               electricCurrent,
	PresentInputRippleVoltage:                         percentage8,
	PresentInputVoltage:                               voltageValue,
	PresentLuminousFlux:                               luminousFlux,
	PresentOutdoorAmbientTemperature:                  temperature8Value,
	PresentOutputCurrent:                              electricCurrent,
	PresentOutputVoltage:                              voltageValue,
	PresentPlanckianDistance:                          chromaticDistanceFromPlanckian,
	PresentRelativeOutputRippleVoltage:                percentage8,
	RelativeDeviceEnergyUseInAPeriodOfDay:             energyInAPeriodOfDay,
	RelativeDeviceRuntimeInAGenericLevelRange:         relativeRuntimeInAGenericLevelRange,
	RelativeExposureTimeInAnIlluminanceRange:          relativeValueInAnIlluminanceRange,
	RelativeRuntimeInACorrelatedColorTemperatureRange: luminousEnergy,
	RelativeRuntimeInADeviceOperatingTemperatureRange: relativeValueInATemperatureRange,
	RelativeRuntimeInAnInputCurrentRange:              relativeValueInACurrentRange,
	RelativeRuntimeInAnInputVoltageRange:              relativeValueInAVoltageRange,
	ShortCircuitEventStatistics:                       eventStatistics,
	TimeSinceMotionSensed:                             timeSecond16,
	TimeSincePresenceDetected:                         timeSecond16,
	TotalDeviceEnergyUse:                              energy,
	TotalDeviceOffOnCycles:                            count24,
	TotalDevicePowerOnCycles:                          count24,
	TotalDevicePowerOnTime:                            timeHour24,
	TotalDeviceRuntime:                                timeHour24,
	TotalLightExposureTime:                            timeHour24,
	TotalLuminousEnergy:                               luminousEnergy,
	ELTPreciseTotalDeviceEnergyUse:                    preciseEnergy,
	ELTDurationTestExecutionTimeout:                   timeSecond32,
	ELTFunctionalTestExecutionTimeout:                 timeSecond32,
	ELTDurationTestRetryPeriod:                        timeSecond32,
	ELTFunctionalTestRetryPeriod:                      timeSecond32,
	ELTDurationTestBackupAutomaticDelay:               timeSecond32,
	ELTFunctionalTestBackupAutomaticDelay:             timeSecond32,
	ELTDurationTestBackupAutomaticInterval:            timeSecond32,
	ELTFunctionalTestBackupAutomaticInterval:          timeSecond32,
}

// Properties that are named but have no value layout yet.
var unsupported = []PropertyID{DesiredAmbientTemperature, PowerFactor, SensorGain}

// Lookup returns the value layout of id. ok is false for identifiers
// without a layout, including known ones such as PowerFactor.
func Lookup(id PropertyID) (n schema.Node, ok bool) {
	n, ok = layouts[id]
	return n, ok
}

// Decode decodes a property value. The whole of data must be consumed.
func Decode(id PropertyID, data []byte) (any, error) {
	n, err := nodeFor(id)
	if err != nil {
		return nil, err
	}
	return schema.Decode(n, data)
}

// Encode encodes a property value.
func Encode(id PropertyID, v any) ([]byte, error) {
	n, err := nodeFor(id)
	if err != nil {
		return nil, err
	}
	return schema.Encode(n, v)
}

func nodeFor(id PropertyID) (schema.Node, error) {
	if n, ok := layouts[id]; ok {
		return n, nil
	}
	return nil, fmt.Errorf("%w: %s", schema.ErrUnsupportedProperty, id)
}

// Value returns a node whose layout is chosen by the property identifier
// stored in the sibling field key. Identifiers outside the table use def;
// known identifiers without a layout fail with ErrUnsupportedProperty.
func Value(key string, def schema.Node) *schema.Switch {
	cases := make([]schema.Case, 0, len(layouts)+len(unsupported))
	for id, n := range layouts {
		cases = append(cases, schema.When(id, n))
	}
	for _, id := range unsupported {
		err := fmt.Errorf("%w: %s", schema.ErrUnsupportedProperty, id)
		cases = append(cases, schema.When(id, schema.Unsupported(err)))
	}
	return schema.On(key, cases...).
		Default(def).
		Via(idAdapter{}).
		Labeled(func(k int64) string { return PropertyID(k).String() })
}

// Raw is the Value default for a value that runs to the end of the message.
var Raw = schema.GreedyBytes

// Fixed is the Value default for a value followed by other fields. Unknown
// identifiers cannot be skipped there, so they fail.
var Fixed = schema.Unsupported(schema.ErrUnsupportedProperty)

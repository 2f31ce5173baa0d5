package testutil

import (
	"github.com/opcua-lads/labstreams/devicemodel"
)

// SampleDevice builds a fully populated laboratory-reactor model exercising
// every structural role: nested components, an identification object, a
// functional unit with sensor and control functions, state machines, a
// program manager with template, active program, and a finished result with
// an attached file.
func SampleDevice() *devicemodel.Node {
	device := devicemodel.NewNode("LuminaReactor", devicemodel.RoleDevice)
	textVar := func(name, val string) *devicemodel.Value {
		v := &devicemodel.Value{Name: name, Kind: devicemodel.KindText}
		v.Write(devicemodel.TextVariant(val))
		return v
	}

	device.AddVariable(textVar(devicemodel.NameManufacturer, "Lumina Labs"))
	device.AddVariable(textVar(devicemodel.NameModel, "LR-200"))
	device.AddVariable(textVar(devicemodel.NameSerialNumber, "SN-004711"))
	device.AddVariable(textVar(devicemodel.NameHardwareRevision, "C"))
	device.AddVariable(textVar(devicemodel.NameSoftwareRevision, "2.4.1"))
	device.AddVariable(textVar(devicemodel.NameAssetID, "LAB-REACTOR-7"))
	device.AddVariable(textVar(devicemodel.NameComponentName, "Reactor 7"))
	device.AddVariable(textVar(devicemodel.NameDeviceState, "Operate"))

	deviceSM := device.AddChild(devicemodel.NewNode(devicemodel.NameStateMachine, devicemodel.RoleStateMachine))
	deviceSM.AddVariable(textVar(devicemodel.NameCurrentState, "Operate"))

	ident := device.AddChild(devicemodel.NewNode(devicemodel.NameIdentification, devicemodel.RoleComponent))
	ident.AddVariable(textVar(devicemodel.NameSerialNumber, "SN-004711"))
	ident.AddVariable(textVar(devicemodel.NameLocation, "Building 2 / Lab 14"))

	pump := device.AddChild(devicemodel.NewNode("PumpModule", devicemodel.RoleComponent))
	pump.AddVariable(textVar(devicemodel.NameManufacturer, "FlowWorks"))
	pump.AddVariable(textVar(devicemodel.NameSerialNumber, "PM-1138"))

	unit := device.AddChild(devicemodel.NewNode("ReactorUnit", devicemodel.RoleFunctionalUnit))

	temp := unit.AddChild(devicemodel.NewNode("Temperature", devicemodel.RoleSensorFunction))
	tempValue := &devicemodel.Value{
		Name: devicemodel.NameSensorValue, Unit: "degC",
		Analog: true, Kind: devicemodel.KindNumeric,
	}
	tempValue.Write(devicemodel.NumberVariant(21.5))
	temp.AddVariable(tempValue)

	pressure := unit.AddChild(devicemodel.NewNode("Pressure", devicemodel.RoleSensorFunction))
	pressureValue := &devicemodel.Value{
		Name: devicemodel.NameSensorValue, Unit: "kPa",
		Analog: true, Kind: devicemodel.KindNumeric,
	}
	pressureValue.Write(devicemodel.NumberVariant(101.3))
	pressure.AddVariable(pressureValue)

	heater := unit.AddChild(devicemodel.NewNode("Heater", devicemodel.RoleControlFunction))
	target := &devicemodel.Value{
		Name: devicemodel.NameTargetValue, Unit: "degC",
		Analog: true, Kind: devicemodel.KindNumeric,
	}
	target.Write(devicemodel.NumberVariant(37))
	heater.AddVariable(target)
	current := &devicemodel.Value{
		Name: devicemodel.NameCurrentValue, Unit: "degC",
		Analog: true, Kind: devicemodel.KindNumeric,
	}
	current.Write(devicemodel.NumberVariant(21.5))
	heater.AddVariable(current)
	heaterSM := heater.AddChild(devicemodel.NewNode(devicemodel.NameStateMachine, devicemodel.RoleStateMachine))
	heaterSM.AddVariable(textVar(devicemodel.NameCurrentState, "Idle"))

	unitSM := unit.AddChild(devicemodel.NewNode(devicemodel.NameStateMachine, devicemodel.RoleStateMachine))
	unitSM.AddVariable(textVar(devicemodel.NameCurrentState, "Running"))

	pm := unit.AddChild(devicemodel.NewNode(devicemodel.NameProgramManager, devicemodel.RoleProgramManager))

	tpl := pm.AddChild(devicemodel.NewNode("Pasteurize", devicemodel.RoleProgramTemplate))
	tpl.AddVariable(textVar(devicemodel.NameDescription, "Hold at 72 degC for 15 s"))
	tpl.AddVariable(textVar(devicemodel.NameAuthor, "m.vasquez"))
	tpl.AddVariable(textVar(devicemodel.NameExternalID, "LIMS-M-88"))
	tpl.AddVariable(textVar(devicemodel.NameCreated, "2026-02-11T09:30:00Z"))
	tpl.AddVariable(textVar(devicemodel.NameModified, "2026-06-02T14:05:00Z"))
	tpl.AddVariable(textVar(devicemodel.NameVersion, "3"))

	active := pm.AddChild(devicemodel.NewNode(devicemodel.NameActiveProgram, devicemodel.RoleActiveProgram))
	elapsed := &devicemodel.Value{Name: devicemodel.NameElapsedTime, Unit: "s",
		Analog: true, Kind: devicemodel.KindNumeric}
	elapsed.Write(devicemodel.NumberVariant(342))
	active.AddVariable(elapsed)

	result := pm.AddChild(devicemodel.NewNode("Run-0001", devicemodel.RoleResult))
	result.AddVariable(textVar(devicemodel.NameDescription, "Overnight stability run"))
	result.AddVariable(textVar(devicemodel.NameProperties, "ramp=0.5C/min"))
	result.AddVariable(textVar(devicemodel.NameStarted, "2026-08-01T18:00:00Z"))
	result.AddVariable(textVar(devicemodel.NameStopped, "2026-08-02T06:00:00Z"))
	result.AddVariable(textVar(devicemodel.NameSampleIDs, "S-1042,S-1043"))
	result.AddVariable(textVar(devicemodel.NameJobID, "JOB-2208"))
	result.AddVariable(textVar(devicemodel.NameTaskID, "TASK-19"))
	result.AddVariable(textVar(devicemodel.NameUser, "a.okafor"))

	resultTpl := result.AddChild(devicemodel.NewNode("Pasteurize", devicemodel.RoleProgramTemplate))
	resultTpl.AddVariable(textVar(devicemodel.NameDescription, "Hold at 72 degC for 15 s"))

	file := result.AddChild(devicemodel.NewNode("raw.csv", devicemodel.RoleResultFile))
	file.AddVariable(textVar(devicemodel.NameFileName, "raw.csv"))
	file.AddVariable(textVar(devicemodel.NameMimeType, "text/csv"))
	file.AddVariable(textVar(devicemodel.NameURL, "file:///data/run-0001/raw.csv"))

	return device
}

// SensorValue returns the live value of the named sensor function under the
// sample device's reactor unit.
func SensorValue(device *devicemodel.Node, sensor string) *devicemodel.Value {
	return device.Child("ReactorUnit").Child(sensor).SourceOf(devicemodel.NameSensorValue)
}

// HeaterValue returns the named variable source of the sample device's
// heater control function.
func HeaterValue(device *devicemodel.Node, variable string) *devicemodel.Value {
	return device.Child("ReactorUnit").Child("Heater").SourceOf(variable)
}

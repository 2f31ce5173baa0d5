package binder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opcua-lads/labstreams/devicemodel"
	"github.com/opcua-lads/labstreams/dictionary"
	"github.com/opcua-lads/labstreams/testutil"
)

func newTestBinder() *Binder {
	return New(dictionary.NewCatalog(dictionary.NewDefaultNamespace()))
}

func iri(id string) string {
	catalog := dictionary.NewCatalog(dictionary.NewDefaultNamespace())
	entry, _ := catalog.Resolve(id)
	return entry.IRI
}

func TestBindDeviceCoversSubtree(t *testing.T) {
	device := testutil.SampleDevice()
	b := newTestBinder()

	b.BindDefaultReferences(device)

	// Identity attributes on the device.
	require.NotNil(t, device.Variable(devicemodel.NameManufacturer))
	assert.True(t, device.Variable(devicemodel.NameManufacturer).
		HasReference(iri(dictionary.DeviceIdentityManufacturer)))
	assert.True(t, device.Variable(devicemodel.NameDeviceState).
		HasReference(iri(dictionary.DeviceStateCurrent)))

	// Device-level state machine via the shared helper.
	deviceSM := device.Child(devicemodel.NameStateMachine)
	assert.True(t, deviceSM.HasReference(iri(dictionary.DeviceStateProcess)))
	assert.True(t, deviceSM.Variable(devicemodel.NameCurrentState).
		HasReference(iri(dictionary.DeviceStateProcess)))

	// Nested sub-component identity.
	pump := device.Child("PumpModule")
	assert.True(t, pump.Variable(devicemodel.NameSerialNumber).
		HasReference(iri(dictionary.DeviceIdentitySerial)))

	// Identification object gets component refs plus the location concept.
	ident := device.Child(devicemodel.NameIdentification)
	assert.True(t, ident.Variable(devicemodel.NameLocation).
		HasReference(iri(dictionary.DeviceIdentityLocation)))

	unit := device.Child("ReactorUnit")

	// Sensor function and its live value.
	temp := unit.Child("Temperature")
	assert.True(t, temp.HasReference(iri(dictionary.SensorFunctionKind)))
	assert.True(t, temp.HasReference(iri(dictionary.SensorFunctionMeasurement)))
	assert.True(t, temp.Variable(devicemodel.NameSensorValue).
		HasReference(iri(dictionary.SensorValueLive)))

	// Control function, nested state machine, target and current values.
	heater := unit.Child("Heater")
	assert.True(t, heater.HasReference(iri(dictionary.ControlFunctionKind)))
	assert.True(t, heater.Variable(devicemodel.NameTargetValue).
		HasReference(iri(dictionary.ControlValueTarget)))
	assert.True(t, heater.Variable(devicemodel.NameCurrentValue).
		HasReference(iri(dictionary.ControlValueCurrent)))
	heaterSM := heater.Child(devicemodel.NameStateMachine)
	assert.True(t, heaterSM.HasReference(iri(dictionary.DeviceStateProcess)))
	assert.True(t, heaterSM.Variable(devicemodel.NameCurrentState).
		HasReference(iri(dictionary.DeviceStateProcess)))

	// Unit state machine via the shared helper.
	unitSM := unit.Child(devicemodel.NameStateMachine)
	assert.True(t, unitSM.HasReference(iri(dictionary.DeviceStateProcess)))

	pm := unit.Child(devicemodel.NameProgramManager)

	// Program template metadata.
	tpl := pm.Child("Pasteurize")
	assert.True(t, tpl.HasReference(iri(dictionary.ProgramMethodIdentity)))
	assert.True(t, tpl.Variable(devicemodel.NameAuthor).
		HasReference(iri(dictionary.ProgramMethodAuthor)))
	assert.True(t, tpl.Variable(devicemodel.NameVersion).
		HasReference(iri(dictionary.ProgramMethodVersion)))

	// Elapsed time on the active program.
	active := pm.Child(devicemodel.NameActiveProgram)
	assert.True(t, active.Variable(devicemodel.NameElapsedTime).
		HasReference(iri(dictionary.ProgramTimingElapsed)))

	// Result metadata, including job and task ids mapping to the lot concept.
	result := pm.Child("Run-0001")
	assert.True(t, result.HasReference(iri(dictionary.ResultIdentityExperiment)))
	assert.True(t, result.Variable(devicemodel.NameJobID).
		HasReference(iri(dictionary.ResultIdentityLot)))
	assert.True(t, result.Variable(devicemodel.NameTaskID).
		HasReference(iri(dictionary.ResultIdentityLot)))
	assert.True(t, result.Variable(devicemodel.NameUser).
		HasReference(iri(dictionary.ResultIdentityAnalyst)))

	// Result file content/name/mime/url.
	file := result.Child("raw.csv")
	assert.True(t, file.HasReference(iri(dictionary.FileContentData)))
	assert.True(t, file.Variable(devicemodel.NameMimeType).
		HasReference(iri(dictionary.FileContentMime)))
	assert.True(t, file.Variable(devicemodel.NameURL).
		HasReference(iri(dictionary.FileContentURL)))
}

func TestBindDeviceStateMachine(t *testing.T) {
	// A device carrying only a state machine still gets the process-state
	// annotation on the machine and its current-state child.
	device := devicemodel.NewNode("Balance", devicemodel.RoleDevice)
	sm := device.AddChild(devicemodel.NewNode(devicemodel.NameStateMachine, devicemodel.RoleStateMachine))
	state := &devicemodel.Value{Name: devicemodel.NameCurrentState, Kind: devicemodel.KindText}
	state.Write(devicemodel.TextVariant("Standby"))
	sm.AddVariable(state)

	b := newTestBinder()
	b.BindDefaultReferences(device)

	assert.True(t, sm.HasReference(iri(dictionary.DeviceStateProcess)))
	assert.True(t, sm.Variable(devicemodel.NameCurrentState).
		HasReference(iri(dictionary.DeviceStateProcess)))
}

func TestBindIsIdempotent(t *testing.T) {
	device := testutil.SampleDevice()
	b := newTestBinder()

	b.BindDefaultReferences(device)
	once := device.TotalReferences()
	require.Positive(t, once)

	b.BindDefaultReferences(device)
	assert.Equal(t, once, device.TotalReferences())
}

func TestBindWithoutDictionaryAddsNothing(t *testing.T) {
	device := testutil.SampleDevice()
	b := New(dictionary.NewCatalog(dictionary.EmptyResolver{}))

	b.BindDefaultReferences(device)
	assert.Zero(t, device.TotalReferences())

	// Arbitrarily malformed entry points must also return cleanly.
	b.BindDefaultReferences(nil)
	b.BindResult(nil)
	b.BindDefaultReferences(devicemodel.NewNode("orphan", devicemodel.RoleUnknown))
}

func TestEntryPointAtFunctionalUnit(t *testing.T) {
	device := testutil.SampleDevice()
	unit := device.Child("ReactorUnit")
	b := newTestBinder()

	b.BindDefaultReferences(unit)

	// Unit subtree bound; device-level attributes untouched.
	assert.True(t, unit.Child("Temperature").HasReference(iri(dictionary.SensorFunctionKind)))
	assert.False(t, device.Variable(devicemodel.NameManufacturer).
		HasReference(iri(dictionary.DeviceIdentityManufacturer)))
}

func TestEntryPointAtResult(t *testing.T) {
	device := testutil.SampleDevice()
	result := device.Child("ReactorUnit").
		Child(devicemodel.NameProgramManager).Child("Run-0001")
	b := newTestBinder()

	b.BindResult(result)

	assert.True(t, result.HasReference(iri(dictionary.ResultIdentityExperiment)))
	assert.True(t, result.Child("raw.csv").HasReference(iri(dictionary.FileContentData)))
	assert.True(t, result.Child("Pasteurize").HasReference(iri(dictionary.ProgramMethodIdentity)))
}

func TestPartialModelSkipsAbsentBranches(t *testing.T) {
	// A sensor function with no live value and a unit with no program manager.
	unit := devicemodel.NewNode("BareUnit", devicemodel.RoleFunctionalUnit)
	sensor := unit.AddChild(devicemodel.NewNode("Lonely", devicemodel.RoleSensorFunction))

	b := newTestBinder()
	b.BindDefaultReferences(unit)

	assert.True(t, sensor.HasReference(iri(dictionary.SensorFunctionKind)))
	// Only the sensor-function refs exist; nothing failed on the absences.
	assert.Equal(t, 2, unit.TotalReferences())
}

func TestUnknownRoleSkipped(t *testing.T) {
	node := devicemodel.NewNode("Mystery", devicemodel.RoleUnknown)
	node.AddChild(testutil.SampleDevice())

	b := newTestBinder()
	b.BindDefaultReferences(node)

	// Dispatch is by the entry node's role; an unknown root is skipped
	// entirely rather than recursed into.
	assert.Zero(t, node.TotalReferences())
}

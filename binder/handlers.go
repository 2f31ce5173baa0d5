package binder

import (
	"github.com/opcua-lads/labstreams/devicemodel"
	"github.com/opcua-lads/labstreams/dictionary"
)

// bindVariable resolves one concept onto a named variable child. A missing
// variable short-circuits only this branch: Variable returns nil and
// AddReferences treats a nil node as a no-op.
func (b *Binder) bindVariable(node *devicemodel.Node, variable string, ids ...string) {
	b.catalog.AddReferences(node.Variable(variable), ids...)
}

// bindComponent binds identity attributes and recurses into nested
// sub-components and the identification object.
func (b *Binder) bindComponent(node *devicemodel.Node) {
	b.bindVariable(node, devicemodel.NameManufacturer, dictionary.DeviceIdentityManufacturer)
	b.bindVariable(node, devicemodel.NameModel, dictionary.DeviceIdentityModel)
	b.bindVariable(node, devicemodel.NameSerialNumber, dictionary.DeviceIdentitySerial)
	b.bindVariable(node, devicemodel.NameHardwareRevision, dictionary.DeviceIdentityHardwareRev)
	b.bindVariable(node, devicemodel.NameSoftwareRevision, dictionary.DeviceIdentitySoftwareRev)
	b.bindVariable(node, devicemodel.NameAssetID, dictionary.DeviceIdentityAsset)
	b.bindVariable(node, devicemodel.NameComponentName, dictionary.DeviceIdentityName)

	for _, sub := range node.Children(devicemodel.RoleComponent) {
		if sub.Name == devicemodel.NameIdentification {
			continue // handled below with its location reference
		}
		b.bindComponent(sub)
	}

	if ident := node.Child(devicemodel.NameIdentification); ident != nil {
		b.bindComponent(ident)
		b.bindVariable(ident, devicemodel.NameLocation, dictionary.DeviceIdentityLocation)
	}
}

// bindDevice binds component references plus the device state, then recurses
// into each functional unit.
func (b *Binder) bindDevice(node *devicemodel.Node) {
	b.bindComponent(node)
	b.bindVariable(node, devicemodel.NameDeviceState, dictionary.DeviceStateCurrent)
	b.bindStateMachine(node.Child(devicemodel.NameStateMachine))

	for _, unit := range node.Children(devicemodel.RoleFunctionalUnit) {
		b.bindFunctionalUnit(unit)
	}
}

// bindFunctionalUnit recurses into each function by role, then binds the
// unit's state machine and program manager.
func (b *Binder) bindFunctionalUnit(node *devicemodel.Node) {
	for _, fn := range node.Children(devicemodel.RoleSensorFunction) {
		b.bindSensorFunction(fn)
	}
	for _, fn := range node.Children(devicemodel.RoleControlFunction) {
		b.bindControlFunction(fn)
	}

	b.bindStateMachine(node.Child(devicemodel.NameStateMachine))
	b.bindProgramManager(node.Child(devicemodel.NameProgramManager))
}

func (b *Binder) bindSensorFunction(fn *devicemodel.Node) {
	b.catalog.AddReferences(fn,
		dictionary.SensorFunctionKind,
		dictionary.SensorFunctionMeasurement)
	b.bindVariable(fn, devicemodel.NameSensorValue, dictionary.SensorValueLive)
}

func (b *Binder) bindControlFunction(fn *devicemodel.Node) {
	b.catalog.AddReferences(fn, dictionary.ControlFunctionKind)
	b.bindStateMachine(fn.Child(devicemodel.NameStateMachine))
	b.bindVariable(fn, devicemodel.NameTargetValue, dictionary.ControlValueTarget)
	b.bindVariable(fn, devicemodel.NameCurrentValue, dictionary.ControlValueCurrent)
}

// bindStateMachine binds the process-state concept onto the state machine
// and its current-state child. Shared by device, functional-unit, and
// control-function handlers.
func (b *Binder) bindStateMachine(sm *devicemodel.Node) {
	if sm == nil {
		return
	}
	b.catalog.AddReferences(sm, dictionary.DeviceStateProcess)
	b.bindVariable(sm, devicemodel.NameCurrentState, dictionary.DeviceStateProcess)
}

// bindProgramManager recurses into program templates, binds elapsed time on
// the active program, and recurses into results.
func (b *Binder) bindProgramManager(pm *devicemodel.Node) {
	if pm == nil {
		return
	}
	for _, tpl := range pm.Children(devicemodel.RoleProgramTemplate) {
		b.bindProgramTemplate(tpl)
	}

	if active := pm.Child(devicemodel.NameActiveProgram); active != nil {
		b.bindVariable(active, devicemodel.NameElapsedTime, dictionary.ProgramTimingElapsed)
	}

	for _, result := range pm.Children(devicemodel.RoleResult) {
		b.bindResult(result)
	}
}

func (b *Binder) bindProgramTemplate(tpl *devicemodel.Node) {
	b.catalog.AddReferences(tpl, dictionary.ProgramMethodIdentity)
	b.bindVariable(tpl, devicemodel.NameDescription, dictionary.ProgramMethodDescription)
	b.bindVariable(tpl, devicemodel.NameAuthor, dictionary.ProgramMethodAuthor)
	b.bindVariable(tpl, devicemodel.NameExternalID, dictionary.ProgramMethodExternal)
	b.bindVariable(tpl, devicemodel.NameCreated, dictionary.ProgramMethodCreated)
	b.bindVariable(tpl, devicemodel.NameModified, dictionary.ProgramMethodModified)
	b.bindVariable(tpl, devicemodel.NameVersion, dictionary.ProgramMethodVersion)
}

func (b *Binder) bindResult(res *devicemodel.Node) {
	b.catalog.AddReferences(res, dictionary.ResultIdentityExperiment)
	b.bindVariable(res, devicemodel.NameDescription, dictionary.ResultIdentityDescription)
	b.bindVariable(res, devicemodel.NameProperties, dictionary.ResultIdentityProperties)
	b.bindVariable(res, devicemodel.NameStarted, dictionary.ResultTimingStart)
	b.bindVariable(res, devicemodel.NameStopped, dictionary.ResultTimingStop)
	b.bindVariable(res, devicemodel.NameSampleIDs, dictionary.ResultIdentitySamples)
	// Job and task ids both map to the lot-number concept.
	b.bindVariable(res, devicemodel.NameJobID, dictionary.ResultIdentityLot)
	b.bindVariable(res, devicemodel.NameTaskID, dictionary.ResultIdentityLot)
	b.bindVariable(res, devicemodel.NameUser, dictionary.ResultIdentityAnalyst)

	for _, tpl := range res.Children(devicemodel.RoleProgramTemplate) {
		b.bindProgramTemplate(tpl)
	}
	for _, file := range res.Children(devicemodel.RoleResultFile) {
		b.bindResultFile(file)
	}
}

func (b *Binder) bindResultFile(file *devicemodel.Node) {
	b.catalog.AddReferences(file, dictionary.FileContentData)
	b.bindVariable(file, devicemodel.NameFileName, dictionary.FileContentName)
	b.bindVariable(file, devicemodel.NameMimeType, dictionary.FileContentMime)
	b.bindVariable(file, devicemodel.NameURL, dictionary.FileContentURL)
}

package dictionary

// Concept-id vocabulary using three-level dotted notation: domain.category.property.
//
// Naming conventions:
//   - domain: lowercase business domain (device, sensor, control, program, result, file)
//   - category: lowercase property group (identity, state, timing, ...)
//   - property: lowercase specific concept
//
// The ids are symbolic: the dictionary namespace maps each id to an Entry
// whose IRI is what actually lands on the annotation edge. Servers running
// against a different dictionary vendor only swap the namespace content, not
// these ids.

// DefaultNamespaceURI is the dictionary namespace the catalog probes for.
const DefaultNamespaceURI = "http://dictionary.labstreams.io/lab-equipment"

// Component identity concepts
const (
	// DeviceIdentityManufacturer is the component manufacturer name
	DeviceIdentityManufacturer = "device.identity.manufacturer"
	// DeviceIdentityModel is the component model designation
	DeviceIdentityModel = "device.identity.model"
	// DeviceIdentitySerial is the manufacturer serial number
	DeviceIdentitySerial = "device.identity.serial"
	// DeviceIdentityHardwareRev is the hardware revision
	DeviceIdentityHardwareRev = "device.identity.hardware_revision"
	// DeviceIdentitySoftwareRev is the firmware/software revision
	DeviceIdentitySoftwareRev = "device.identity.software_revision"
	// DeviceIdentityAsset is the operator-assigned asset id
	DeviceIdentityAsset = "device.identity.asset"
	// DeviceIdentityName is the component display name
	DeviceIdentityName = "device.identity.name"
	// DeviceIdentityLocation is the installation location reference
	DeviceIdentityLocation = "device.identity.location"
)

// Device and state concepts
const (
	// DeviceStateCurrent is the device operational state
	DeviceStateCurrent = "device.state.current"
	// DeviceStateProcess is the process state of a state machine and its
	// current-state child
	DeviceStateProcess = "device.state.process"
)

// Sensor function concepts
const (
	// SensorFunctionKind marks a node as a sensor function
	SensorFunctionKind = "sensor.function.kind"
	// SensorFunctionMeasurement marks the measurement function itself
	SensorFunctionMeasurement = "sensor.function.measurement"
	// SensorValueLive is the live sensor reading
	SensorValueLive = "sensor.value.live"
)

// Control function concepts
const (
	// ControlFunctionKind marks a node as a controller function
	ControlFunctionKind = "control.function.kind"
	// ControlValueTarget is the controller set point
	ControlValueTarget = "control.value.target"
	// ControlValueCurrent is the controller process value
	ControlValueCurrent = "control.value.current"
)

// Program concepts
const (
	// ProgramTimingElapsed is the active program's elapsed runtime
	ProgramTimingElapsed = "program.timing.elapsed"
	// ProgramMethodIdentity is the method identity of a template
	ProgramMethodIdentity = "program.method.identity"
	// ProgramMethodDescription is the template description
	ProgramMethodDescription = "program.method.description"
	// ProgramMethodAuthor is the template author
	ProgramMethodAuthor = "program.method.author"
	// ProgramMethodExternal is the external method id
	ProgramMethodExternal = "program.method.external"
	// ProgramMethodCreated is the template creation timestamp
	ProgramMethodCreated = "program.method.created"
	// ProgramMethodModified is the template modification timestamp
	ProgramMethodModified = "program.method.modified"
	// ProgramMethodVersion is the template version
	ProgramMethodVersion = "program.method.version"
)

// Result concepts
const (
	// ResultIdentityExperiment is the experiment/result identity
	ResultIdentityExperiment = "result.identity.experiment"
	// ResultIdentityDescription is the result description
	ResultIdentityDescription = "result.identity.description"
	// ResultIdentityProperties is the set of applied process properties
	ResultIdentityProperties = "result.identity.properties"
	// ResultTimingStart is the run start time
	ResultTimingStart = "result.timing.start"
	// ResultTimingStop is the run stop time
	ResultTimingStop = "result.timing.stop"
	// ResultIdentitySamples is the processed sample ids
	ResultIdentitySamples = "result.identity.samples"
	// ResultIdentityLot is the lot number. Both job ids and task ids map to
	// this same concept.
	ResultIdentityLot = "result.identity.lot"
	// ResultIdentityAnalyst is the responsible analyst/user
	ResultIdentityAnalyst = "result.identity.analyst"
)

// Result-file concepts
const (
	// FileContentData is the attached file content
	FileContentData = "file.content.data"
	// FileContentName is the file display name
	FileContentName = "file.content.name"
	// FileContentMime is the file mime type
	FileContentMime = "file.content.mime"
	// FileContentURL is the file retrieval URL
	FileContentURL = "file.content.url"
)

// DefaultConceptIDs lists every concept id the binder attaches by default.
// Namespace fixtures use it to install a complete entry set.
func DefaultConceptIDs() []string {
	return []string{
		DeviceIdentityManufacturer,
		DeviceIdentityModel,
		DeviceIdentitySerial,
		DeviceIdentityHardwareRev,
		DeviceIdentitySoftwareRev,
		DeviceIdentityAsset,
		DeviceIdentityName,
		DeviceIdentityLocation,
		DeviceStateCurrent,
		DeviceStateProcess,
		SensorFunctionKind,
		SensorFunctionMeasurement,
		SensorValueLive,
		ControlFunctionKind,
		ControlValueTarget,
		ControlValueCurrent,
		ProgramTimingElapsed,
		ProgramMethodIdentity,
		ProgramMethodDescription,
		ProgramMethodAuthor,
		ProgramMethodExternal,
		ProgramMethodCreated,
		ProgramMethodModified,
		ProgramMethodVersion,
		ResultIdentityExperiment,
		ResultIdentityDescription,
		ResultIdentityProperties,
		ResultTimingStart,
		ResultTimingStop,
		ResultIdentitySamples,
		ResultIdentityLot,
		ResultIdentityAnalyst,
		FileContentData,
		FileContentName,
		FileContentMime,
		FileContentURL,
	}
}

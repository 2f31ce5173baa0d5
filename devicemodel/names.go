package devicemodel

// Well-known browse names assigned by the graph runtime. The binder and the
// export layer look children and variables up by these names; a model that
// omits one simply skips that branch.
const (
	// NameIdentification is the identification object of a component.
	NameIdentification = "Identification"
	// NameLocation is the installation-location variable of an identification object.
	NameLocation = "Location"

	// Component identity variables
	NameManufacturer     = "Manufacturer"
	NameModel            = "Model"
	NameSerialNumber     = "SerialNumber"
	NameHardwareRevision = "HardwareRevision"
	NameSoftwareRevision = "SoftwareRevision"
	NameAssetID          = "AssetId"
	NameComponentName    = "ComponentName"

	// NameDeviceState is the device operational-state variable.
	NameDeviceState = "DeviceState"
	// NameStateMachine is the state-machine child of devices, functional
	// units, and control functions.
	NameStateMachine = "StateMachine"
	// NameCurrentState is the current-state variable child of a state machine.
	NameCurrentState = "CurrentState"

	// NameSensorValue is the live reading of a sensor function.
	NameSensorValue = "SensorValue"
	// NameTargetValue is the set point of a control function.
	NameTargetValue = "TargetValue"
	// NameCurrentValue is the process value of a control function.
	NameCurrentValue = "CurrentValue"

	// NameProgramManager is the program manager child of a functional unit.
	NameProgramManager = "ProgramManager"
	// NameActiveProgram is the running program child of a program manager.
	NameActiveProgram = "ActiveProgram"
	// NameElapsedTime is the active program's runtime variable.
	NameElapsedTime = "ElapsedTime"

	// Program template variables
	NameDescription = "Description"
	NameAuthor      = "Author"
	NameExternalID  = "ExternalId"
	NameCreated     = "Created"
	NameModified    = "Modified"
	NameVersion     = "Version"

	// Result variables
	NameProperties = "Properties"
	NameStarted    = "Started"
	NameStopped    = "Stopped"
	NameSampleIDs  = "SampleIds"
	NameJobID      = "JobId"
	NameTaskID     = "TaskId"
	NameUser       = "User"

	// Result-file variables
	NameFileName = "Name"
	NameMimeType = "MimeType"
	NameURL      = "URL"
)

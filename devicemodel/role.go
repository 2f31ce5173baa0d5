package devicemodel

// Role classifies a node's structural position in the device graph.
// The set is closed: the graph runtime assigns exactly one role per node at
// its boundary, and consumers dispatch on it instead of probing node types.
type Role int

const (
	// RoleUnknown marks nodes with no recognized structural role.
	// Traversals skip them silently.
	RoleUnknown Role = iota
	// RoleComponent is a hardware/software component with identity attributes
	// (manufacturer, model, serial number, versions).
	RoleComponent
	// RoleDevice is the root component of a laboratory device.
	RoleDevice
	// RoleFunctionalUnit groups the functions of one operational unit.
	RoleFunctionalUnit
	// RoleSensorFunction is a measuring function exposing a live sensor value.
	RoleSensorFunction
	// RoleControlFunction is a controlling function with target and current values.
	RoleControlFunction
	// RoleStateMachine exposes an operational state and its current-state child.
	RoleStateMachine
	// RoleProgramManager owns program templates, the active program, and results.
	RoleProgramManager
	// RoleProgramTemplate describes one runnable method.
	RoleProgramTemplate
	// RoleActiveProgram is the currently executing program instance.
	RoleActiveProgram
	// RoleResult holds the outcome of one program run.
	RoleResult
	// RoleResultFile is a file artifact attached to a result.
	RoleResultFile
	// RoleVariable is a data-source node wrapping one readable/writable value.
	RoleVariable
)

// String returns the human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleComponent:
		return "component"
	case RoleDevice:
		return "device"
	case RoleFunctionalUnit:
		return "functional_unit"
	case RoleSensorFunction:
		return "sensor_function"
	case RoleControlFunction:
		return "control_function"
	case RoleStateMachine:
		return "state_machine"
	case RoleProgramManager:
		return "program_manager"
	case RoleProgramTemplate:
		return "program_template"
	case RoleActiveProgram:
		return "active_program"
	case RoleResult:
		return "result"
	case RoleResultFile:
		return "result_file"
	case RoleVariable:
		return "variable"
	default:
		return "unknown"
	}
}

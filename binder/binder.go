package binder

import (
	"log/slog"

	"github.com/opcua-lads/labstreams/devicemodel"
	"github.com/opcua-lads/labstreams/dictionary"
)

// handlerFunc binds the default references for one structural role.
type handlerFunc func(*Binder, *devicemodel.Node)

// Binder walks a device-model subtree and attaches default ontology
// references through a reference catalog. Construct one per catalog and
// share it; binding holds no per-call state.
type Binder struct {
	catalog  *dictionary.Catalog
	logger   *slog.Logger
	handlers map[devicemodel.Role]handlerFunc
}

// Option configures a Binder.
type Option func(*Binder)

// WithLogger sets the binder's structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Binder) {
		b.logger = logger
	}
}

// New creates a binder over the given catalog.
func New(catalog *dictionary.Catalog, opts ...Option) *Binder {
	b := &Binder{
		catalog: catalog,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.handlers = map[devicemodel.Role]handlerFunc{
		devicemodel.RoleComponent:       (*Binder).bindComponent,
		devicemodel.RoleDevice:          (*Binder).bindDevice,
		devicemodel.RoleFunctionalUnit:  (*Binder).bindFunctionalUnit,
		devicemodel.RoleSensorFunction:  (*Binder).bindSensorFunction,
		devicemodel.RoleControlFunction: (*Binder).bindControlFunction,
		devicemodel.RoleStateMachine:    (*Binder).bindStateMachine,
		devicemodel.RoleProgramManager:  (*Binder).bindProgramManager,
		devicemodel.RoleProgramTemplate: (*Binder).bindProgramTemplate,
		devicemodel.RoleResult:          (*Binder).bindResult,
		devicemodel.RoleResultFile:      (*Binder).bindResultFile,
	}
	return b
}

// BindDefaultReferences attaches the default references for the subtree
// rooted at node, dispatching by structural role. Nodes with no handler for
// their role are skipped silently. Idempotent; never raises.
func (b *Binder) BindDefaultReferences(node *devicemodel.Node) {
	if node == nil {
		return
	}
	handler, ok := b.handlers[node.Role]
	if !ok {
		b.logger.Debug("no reference handler for role, skipping",
			"role", node.Role.String(), "node", node.Name)
		return
	}
	handler(b, node)
}

// BindProgramTemplate binds method metadata references on a program
// template, regardless of the node's declared role.
func (b *Binder) BindProgramTemplate(node *devicemodel.Node) {
	if node == nil {
		return
	}
	b.bindProgramTemplate(node)
}

// BindResult binds result metadata references and recurses into the
// result's template and files, regardless of the node's declared role.
func (b *Binder) BindResult(node *devicemodel.Node) {
	if node == nil {
		return
	}
	b.bindResult(node)
}

// BindResultFile binds file metadata references on a result-file node,
// regardless of the node's declared role.
func (b *Binder) BindResultFile(node *devicemodel.Node) {
	if node == nil {
		return
	}
	b.bindResultFile(node)
}

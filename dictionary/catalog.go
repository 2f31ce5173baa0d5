package dictionary

import (
	"log/slog"
	"sync"

	"github.com/opcua-lads/labstreams/devicemodel"
)

// Entry is one resolved dictionary concept.
type Entry struct {
	// ID is the symbolic concept id this entry was resolved from.
	ID string
	// IRI is the dictionary-entry identifier that lands on annotation edges.
	IRI string
	// Label is the human-readable concept name, when the dictionary carries one.
	Label string
}

// EntryResolver looks up entries by symbolic id within one namespace.
type EntryResolver interface {
	LookupEntry(id string) (Entry, bool)
}

// NamespaceResolver is the dictionary collaborator boundary: lookup of a
// namespace by URI. A missing namespace is reported by LookupNamespace
// returning (nil, false), not by an error — it is an expected deployment
// state.
type NamespaceResolver interface {
	LookupNamespace(uri string) (EntryResolver, bool)
}

// Catalog resolves concept ids to dictionary entries and attaches annotation
// edges. It is an explicit service object, constructed once and passed by
// reference; the installed/not-installed status is determined on first use
// and is final for the process lifetime.
type Catalog struct {
	resolver     NamespaceResolver
	namespaceURI string
	logger       *slog.Logger
	metrics      *catalogMetrics

	probeOnce sync.Once
	entries   EntryResolver // nil when the namespace is absent
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithNamespaceURI overrides the dictionary namespace probed on first use.
func WithNamespaceURI(uri string) CatalogOption {
	return func(c *Catalog) {
		c.namespaceURI = uri
	}
}

// WithLogger sets the catalog's structured logger.
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithMetrics registers catalog metrics with the given registry. A nil
// registry disables instrumentation.
func WithMetrics(metrics *catalogMetrics) CatalogOption {
	return func(c *Catalog) {
		c.metrics = metrics
	}
}

// NewCatalog creates a catalog over the given dictionary collaborator. The
// namespace is not probed until first use.
func NewCatalog(resolver NamespaceResolver, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		resolver:     resolver,
		namespaceURI: DefaultNamespaceURI,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ensureInstalled probes the dictionary namespace exactly once. Probing is
// side-effect-free; a concurrent first use converges to the same result.
func (c *Catalog) ensureInstalled() {
	c.probeOnce.Do(func() {
		if c.resolver == nil {
			return
		}
		entries, ok := c.resolver.LookupNamespace(c.namespaceURI)
		if !ok {
			// Permanently inert from here on. Silent: a server without the
			// dictionary installed is a supported deployment.
			c.logger.Debug("dictionary namespace not installed, annotation disabled",
				"namespace", c.namespaceURI)
			return
		}
		c.entries = entries
	})
}

// Installed reports whether the dictionary namespace was found. Triggers the
// one-time probe.
func (c *Catalog) Installed() bool {
	c.ensureInstalled()
	return c.entries != nil
}

// Resolve looks up a symbolic concept id. Returns the zero Entry and false
// when the catalog is inert or the id has no dictionary entry.
func (c *Catalog) Resolve(id string) (Entry, bool) {
	c.ensureInstalled()
	if c.entries == nil {
		return Entry{}, false
	}
	return c.entries.LookupEntry(id)
}

// AddReferences resolves each concept id and attaches the annotation edge
// onto the node. Best-effort with no rollback: an unresolved id logs a
// warning and the remaining ids proceed; an existing edge is informational.
// With an inert catalog the whole call is a silent no-op.
func (c *Catalog) AddReferences(node *devicemodel.Node, ids ...string) {
	if node == nil {
		return
	}
	c.ensureInstalled()
	if c.entries == nil {
		return
	}

	for _, id := range ids {
		entry, ok := c.entries.LookupEntry(id)
		if !ok {
			c.logger.Warn("dictionary entry not found, skipping reference",
				"concept", id, "node", node.Name)
			c.metrics.incUnresolved()
			continue
		}

		switch node.AddReference(entry.IRI) {
		case devicemodel.EdgeAdded:
			c.metrics.incAdded()
		case devicemodel.EdgeExists:
			c.logger.Debug("annotation edge already present",
				"concept", id, "node", node.Name)
			c.metrics.incDuplicate()
		}
	}
}

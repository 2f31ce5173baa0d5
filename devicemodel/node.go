package devicemodel

// AddResult reports the outcome of an annotation-edge insertion.
type AddResult int

const (
	// EdgeAdded means a new annotation edge was created.
	EdgeAdded AddResult = iota
	// EdgeExists means the (node, concept) edge was already present.
	// Callers treat this as informational, not as a failure.
	EdgeExists
)

// Node is one node of the hierarchical device graph: a structural role, an
// ordered child list, and a set-keyed registry of annotation edges to
// dictionary concepts.
//
// Data sources are modeled the way the graph runtime models them: as
// variable child nodes. A variable node carries its Value in Source and can
// receive annotation edges like any other node.
type Node struct {
	// Name identifies the node within its parent.
	Name string
	// Role is the node's structural classification.
	Role Role
	// Source is the data source of a variable node, nil otherwise.
	Source *Value

	children   []*Node
	childIndex map[string]*Node

	references map[string]struct{}
	refOrder   []string

	content []byte
}

// NewNode creates a node with the given name and role.
func NewNode(name string, role Role) *Node {
	return &Node{
		Name:       name,
		Role:       role,
		childIndex: make(map[string]*Node),
		references: make(map[string]struct{}),
	}
}

// AddChild appends a child node and returns it for chaining.
func (n *Node) AddChild(child *Node) *Node {
	if child == nil {
		return nil
	}
	n.children = append(n.children, child)
	n.childIndex[child.Name] = child
	return child
}

// Child returns the named child, or nil when absent. Nil-receiver safe, so
// optional branches chain without explicit guards.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	return n.childIndex[name]
}

// Children returns the node's children carrying the given role, in insertion
// order. RoleUnknown matches every child.
func (n *Node) Children(role Role) []*Node {
	if n == nil {
		return nil
	}
	if role == RoleUnknown {
		return append([]*Node(nil), n.children...)
	}
	var out []*Node
	for _, c := range n.children {
		if c.Role == role {
			out = append(out, c)
		}
	}
	return out
}

// AddVariable creates a variable child node wrapping the given data source.
// The source's display scope is the owning node, not the variable node.
func (n *Node) AddVariable(v *Value) *Node {
	if v == nil {
		return nil
	}
	v.NodeName = n.Name
	child := NewNode(v.Name, RoleVariable)
	child.Source = v
	return n.AddChild(child)
}

// Variable returns the named variable child, or nil when absent or when the
// named child is not a variable.
func (n *Node) Variable(name string) *Node {
	if n == nil {
		return nil
	}
	child := n.childIndex[name]
	if child == nil || child.Source == nil {
		return nil
	}
	return child
}

// SourceOf returns the named variable's data source, or nil.
func (n *Node) SourceOf(name string) *Value {
	if v := n.Variable(name); v != nil {
		return v.Source
	}
	return nil
}

// Variables returns the node's variable sources in insertion order.
func (n *Node) Variables() []*Value {
	var out []*Value
	for _, c := range n.children {
		if c.Source != nil {
			out = append(out, c.Source)
		}
	}
	return out
}

// AddReference inserts an annotation edge from this node to the given
// dictionary concept IRI. The edge registry is set-keyed, so re-adding an
// existing edge reports EdgeExists without duplicating it. Edges never
// change the hierarchical topology.
func (n *Node) AddReference(conceptIRI string) AddResult {
	if _, exists := n.references[conceptIRI]; exists {
		return EdgeExists
	}
	n.references[conceptIRI] = struct{}{}
	n.refOrder = append(n.refOrder, conceptIRI)
	return EdgeAdded
}

// HasReference reports whether an annotation edge to the concept exists.
func (n *Node) HasReference(conceptIRI string) bool {
	_, ok := n.references[conceptIRI]
	return ok
}

// References returns this node's annotation edges in insertion order.
func (n *Node) References() []string {
	return append([]string(nil), n.refOrder...)
}

// TotalReferences counts annotation edges across the whole subtree rooted at
// this node.
func (n *Node) TotalReferences() int {
	total := len(n.refOrder)
	for _, c := range n.children {
		total += c.TotalReferences()
	}
	return total
}

// Attach stores materialized binary content on the node. Used by result-file
// descriptors whose artifact has already been written durably.
func (n *Node) Attach(content []byte) {
	n.content = content
}

// Content returns the attached binary content, or nil.
func (n *Node) Content() []byte {
	return n.content
}

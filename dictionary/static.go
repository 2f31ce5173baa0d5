package dictionary

import "strings"

// StaticNamespace is an in-memory dictionary namespace. It backs tests and
// the demo binary, and serves embedded deployments that ship their
// dictionary with the server instead of loading a vendor nodeset.
type StaticNamespace struct {
	uri     string
	entries map[string]Entry
}

// NewStaticNamespace creates an empty namespace under the given URI.
func NewStaticNamespace(uri string) *StaticNamespace {
	return &StaticNamespace{
		uri:     uri,
		entries: make(map[string]Entry),
	}
}

// NewDefaultNamespace creates a namespace under DefaultNamespaceURI
// populated with an entry for every default concept id. Entry IRIs are
// derived from the id ("device.identity.manufacturer" ->
// "<uri>/device/identity#manufacturer").
func NewDefaultNamespace() *StaticNamespace {
	ns := NewStaticNamespace(DefaultNamespaceURI)
	for _, id := range DefaultConceptIDs() {
		ns.Add(Entry{ID: id, IRI: deriveIRI(DefaultNamespaceURI, id), Label: id})
	}
	return ns
}

func deriveIRI(base, id string) string {
	parts := strings.Split(id, ".")
	if len(parts) != 3 {
		return base + "/" + id
	}
	return base + "/" + parts[0] + "/" + parts[1] + "#" + parts[2]
}

// URI returns the namespace URI.
func (ns *StaticNamespace) URI() string {
	return ns.uri
}

// Add installs an entry, replacing any previous entry with the same id.
func (ns *StaticNamespace) Add(entry Entry) {
	ns.entries[entry.ID] = entry
}

// Remove deletes an entry. Used by tests exercising unresolved ids.
func (ns *StaticNamespace) Remove(id string) {
	delete(ns.entries, id)
}

// LookupEntry implements EntryResolver.
func (ns *StaticNamespace) LookupEntry(id string) (Entry, bool) {
	entry, ok := ns.entries[id]
	return entry, ok
}

// LookupNamespace implements NamespaceResolver over this single namespace.
func (ns *StaticNamespace) LookupNamespace(uri string) (EntryResolver, bool) {
	if uri != ns.uri {
		return nil, false
	}
	return ns, true
}

// EmptyResolver is a NamespaceResolver with no namespaces at all. Catalogs
// built over it become permanently inert on first use.
type EmptyResolver struct{}

// LookupNamespace implements NamespaceResolver.
func (EmptyResolver) LookupNamespace(string) (EntryResolver, bool) {
	return nil, false
}

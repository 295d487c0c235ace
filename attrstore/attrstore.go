// Package attrstore keeps typed attributes for vertices and edges in a
// side-table, independent of the graph itself, plus a registry of
// declared attribute names for exporter metadata.
//
// Values are stored with their kind; reading with a different kind fails
// with a class-cast error rather than converting.
package attrstore

import (
	"fmt"
	"sort"

	"github.com/korifey/grapht/status"
)

// Sentinel errors for attribute access.
var (
	// ErrClassCast is returned when a value is read with the wrong kind.
	ErrClassCast = fmt.Errorf("attrstore: attribute has a different kind: %w", status.ErrClassCast)

	// ErrAttributeNotFound is returned on a lookup miss.
	ErrAttributeNotFound = fmt.Errorf("attrstore: no such attribute: %w", status.ErrNoSuchElement)

	// ErrAlreadyRegistered is returned when an attribute name is declared
	// twice in the same category.
	ErrAlreadyRegistered = fmt.Errorf("attrstore: attribute already registered: %w", status.ErrIllegalArgument)
)

// Kind enumerates the value types an attribute can hold.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt
	KindLong
	KindDouble
	KindString
)

// String returns the exporter-facing kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// value is a tagged union; only the field matching kind is meaningful.
type value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

type attrKey struct {
	element int64
	name    string
}

// Store maps (element, attribute name) to a typed value. Elements are
// vertex or edge ids; the store does not validate them against a graph.
// Not safe for concurrent mutation.
type Store struct {
	values map[attrKey]value
}

// NewStore returns an empty attribute store.
func NewStore() *Store {
	return &Store{values: make(map[attrKey]value)}
}

// Len returns the number of stored attribute values.
func (s *Store) Len() int { return len(s.values) }

// PutBool stores a boolean attribute, replacing any previous value.
func (s *Store) PutBool(element int64, name string, v bool) {
	s.values[attrKey{element, name}] = value{kind: KindBool, b: v}
}

// PutInt stores a 32-bit integer attribute.
func (s *Store) PutInt(element int64, name string, v int32) {
	s.values[attrKey{element, name}] = value{kind: KindInt, i: int64(v)}
}

// PutLong stores a 64-bit integer attribute.
func (s *Store) PutLong(element int64, name string, v int64) {
	s.values[attrKey{element, name}] = value{kind: KindLong, i: v}
}

// PutDouble stores a float64 attribute.
func (s *Store) PutDouble(element int64, name string, v float64) {
	s.values[attrKey{element, name}] = value{kind: KindDouble, f: v}
}

// PutString stores a string attribute.
func (s *Store) PutString(element int64, name string, v string) {
	s.values[attrKey{element, name}] = value{kind: KindString, s: v}
}

func (s *Store) lookup(element int64, name string, want Kind) (value, error) {
	v, ok := s.values[attrKey{element, name}]
	if !ok {
		return value{}, ErrAttributeNotFound
	}
	if v.kind != want {
		return value{}, ErrClassCast
	}

	return v, nil
}

// GetBool reads a boolean attribute.
func (s *Store) GetBool(element int64, name string) (bool, error) {
	v, err := s.lookup(element, name, KindBool)

	return v.b, err
}

// GetInt reads a 32-bit integer attribute.
func (s *Store) GetInt(element int64, name string) (int32, error) {
	v, err := s.lookup(element, name, KindInt)

	return int32(v.i), err
}

// GetLong reads a 64-bit integer attribute.
func (s *Store) GetLong(element int64, name string) (int64, error) {
	v, err := s.lookup(element, name, KindLong)

	return v.i, err
}

// GetDouble reads a float64 attribute.
func (s *Store) GetDouble(element int64, name string) (float64, error) {
	v, err := s.lookup(element, name, KindDouble)

	return v.f, err
}

// GetString reads a string attribute.
func (s *Store) GetString(element int64, name string) (string, error) {
	v, err := s.lookup(element, name, KindString)

	return v.s, err
}

// KindOf reports the stored kind of an attribute.
func (s *Store) KindOf(element int64, name string) (Kind, error) {
	v, ok := s.values[attrKey{element, name}]
	if !ok {
		return 0, ErrAttributeNotFound
	}

	return v.kind, nil
}

// Remove drops an attribute; removing a missing one fails.
func (s *Store) Remove(element int64, name string) error {
	k := attrKey{element, name}
	if _, ok := s.values[k]; !ok {
		return ErrAttributeNotFound
	}
	delete(s.values, k)

	return nil
}

// RemoveElement drops every attribute of one element, returning how many
// were removed. Useful when the element leaves the graph.
func (s *Store) RemoveElement(element int64) int {
	n := 0
	for k := range s.values {
		if k.element == element {
			delete(s.values, k)
			n++
		}
	}

	return n
}

// Names returns the attribute names present on an element, sorted.
func (s *Store) Names(element int64) []string {
	var names []string
	for k := range s.values {
		if k.element == element {
			names = append(names, k.name)
		}
	}
	sort.Strings(names)

	return names
}

// Category says which graph elements a registered attribute annotates.
type Category uint8

const (
	CategoryGraph Category = iota
	CategoryVertex
	CategoryEdge
)

// String returns the exporter-facing category name.
func (c Category) String() string {
	switch c {
	case CategoryGraph:
		return "graph"
	case CategoryVertex:
		return "vertex"
	case CategoryEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// Attribute is a declared attribute: exporters emit one schema entry per
// registration.
type Attribute struct {
	Name     string
	Category Category
	Kind     Kind
}

type registryKey struct {
	name     string
	category Category
}

// Registry tracks declared attribute schemas per category. The same name
// may live in different categories with different kinds.
type Registry struct {
	entries map[registryKey]Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[registryKey]Kind)}
}

// Len returns the number of registered attributes.
func (r *Registry) Len() int { return len(r.entries) }

// RegisterAttribute declares an attribute schema. Re-declaring the same
// name in the same category fails, regardless of kind.
func (r *Registry) RegisterAttribute(name string, category Category, kind Kind) error {
	k := registryKey{name, category}
	if _, ok := r.entries[k]; ok {
		return ErrAlreadyRegistered
	}
	r.entries[k] = kind

	return nil
}

// UnregisterAttribute withdraws a declaration.
func (r *Registry) UnregisterAttribute(name string, category Category) error {
	k := registryKey{name, category}
	if _, ok := r.entries[k]; !ok {
		return ErrAttributeNotFound
	}
	delete(r.entries, k)

	return nil
}

// LookupKind reports the declared kind of a registered attribute.
func (r *Registry) LookupKind(name string, category Category) (Kind, error) {
	kind, ok := r.entries[registryKey{name, category}]
	if !ok {
		return 0, ErrAttributeNotFound
	}

	return kind, nil
}

// Attributes lists one category's declarations sorted by name.
func (r *Registry) Attributes(category Category) []Attribute {
	var out []Attribute
	for k, kind := range r.entries {
		if k.category == category {
			out = append(out, Attribute{Name: k.name, Category: category, Kind: kind})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

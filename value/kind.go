package value

import "strings"

// Kind identifies the data kind of a configuration value. A Kind is a
// bitmask, so a single Kind value can also describe a set of accepted
// kinds (e.g. KindInt|KindNull for an optional integer).
type Kind uint8

const (
	// KindNull represents the JSON null value.
	KindNull Kind = 1 << iota
	// KindBool represents a boolean value.
	KindBool
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a floating-point value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindList represents an ordered sequence of primitive values.
	KindList
	// KindMapping represents a string-keyed mapping of primitive values.
	KindMapping

	// KindPrimitives is the set of all primitive (non-collection) kinds.
	KindPrimitives = KindNull | KindBool | KindInt | KindFloat | KindString

	// KindAny is the set of every supported kind.
	KindAny = KindPrimitives | KindList | KindMapping
)

// kindNames is ordered so that String output is deterministic.
var kindNames = []struct {
	kind Kind
	name string
}{
	{KindNull, "null"},
	{KindBool, "bool"},
	{KindInt, "int"},
	{KindFloat, "float"},
	{KindString, "string"},
	{KindList, "list"},
	{KindMapping, "dict"},
}

// Has reports whether the set k includes every kind in other.
func (k Kind) Has(other Kind) bool {
	return k&other == other && other != 0
}

// Intersect returns the kinds present in both k and other.
func (k Kind) Intersect(other Kind) Kind {
	return k & other
}

// IsSingle reports whether k names exactly one kind.
func (k Kind) IsSingle() bool {
	return k != 0 && k&(k-1) == 0
}

// IsZero reports whether k names no kinds at all.
func (k Kind) IsZero() bool {
	return k == 0
}

// String returns the kind names in k, comma-joined for sets.
func (k Kind) String() string {
	if k == 0 {
		return "none"
	}

	var names []string
	for _, kn := range kindNames {
		if k&kn.kind != 0 {
			names = append(names, kn.name)
		}
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names, ", ")
}

package value

import (
	"fmt"
	"sort"
)

// Value is an immutable tagged union over the JSON data model. The zero
// Value is null.
type Value struct {
	kind    Kind
	b       bool
	i       int64
	f       float64
	s       string
	items   []Value
	members []Member
}

// Member is a single key/value pair of a mapping value. Members keep the
// order in which they were added.
type Member struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an integer value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a floating-point value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// List returns a list value holding the given items.
func List(items ...Value) Value {
	return Value{kind: KindList, items: items}
}

// Map returns a mapping value holding the given members in order.
func Map(members ...Member) Value {
	return Value{kind: KindMapping, members: members}
}

// From converts a native Go value into a Value. Maps are converted with
// their keys sorted so the result is deterministic. It returns an error
// for types outside the supported data model.
func From(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case int:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case uint:
		return Int(int64(val)), nil
	case uint8:
		return Int(int64(val)), nil
	case uint16:
		return Int(int64(val)), nil
	case uint32:
		return Int(int64(val)), nil
	case float32:
		return Float(float64(val)), nil
	case float64:
		return Float(val), nil
	case string:
		return String(val), nil
	case []Value:
		return List(val...), nil
	case []any:
		items := make([]Value, 0, len(val))
		for _, item := range val {
			cv, err := From(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, cv)
		}
		return List(items...), nil
	case []string:
		items := make([]Value, 0, len(val))
		for _, s := range val {
			items = append(items, String(s))
		}
		return List(items...), nil
	case []int:
		items := make([]Value, 0, len(val))
		for _, n := range val {
			items = append(items, Int(int64(n)))
		}
		return List(items...), nil
	case []int64:
		items := make([]Value, 0, len(val))
		for _, n := range val {
			items = append(items, Int(n))
		}
		return List(items...), nil
	case []float64:
		items := make([]Value, 0, len(val))
		for _, f := range val {
			items = append(items, Float(f))
		}
		return List(items...), nil
	case []bool:
		items := make([]Value, 0, len(val))
		for _, b := range val {
			items = append(items, Bool(b))
		}
		return List(items...), nil
	case []Member:
		return Map(val...), nil
	case map[string]Value:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			members = append(members, Member{Key: k, Value: val[k]})
		}
		return Map(members...), nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			cv, err := From(val[k])
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: k, Value: cv})
		}
		return Map(members...), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}

// Kind returns the kind tag of v.
func (v Value) Kind() Kind {
	if v.kind == 0 {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool {
	return v.Kind() == KindNull
}

// Bool returns the boolean payload. It returns false for non-boolean values.
func (v Value) Bool() bool {
	return v.b
}

// Int returns the integer payload. Float values are truncated; other kinds
// return zero.
func (v Value) Int() int64 {
	if v.kind == KindFloat {
		return int64(v.f)
	}
	return v.i
}

// Float returns the numeric payload as a float64. Integer values are
// widened; other kinds return zero.
func (v Value) Float() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// Str returns the string payload. It returns "" for non-string values.
func (v Value) Str() string {
	return v.s
}

// IsNumber reports whether v is an integer or floating-point value.
func (v Value) IsNumber() bool {
	return v.Kind().Has(KindInt) || v.Kind().Has(KindFloat)
}

// Items returns the elements of a list value. It returns nil for other
// kinds. The returned slice must not be modified.
func (v Value) Items() []Value {
	return v.items
}

// Members returns the key/value pairs of a mapping value in insertion
// order. It returns nil for other kinds. The returned slice must not be
// modified.
func (v Value) Members() []Member {
	return v.members
}

// Len returns the number of elements of a list or mapping value, and zero
// for every other kind.
func (v Value) Len() int {
	switch v.Kind() {
	case KindList:
		return len(v.items)
	case KindMapping:
		return len(v.members)
	default:
		return 0
	}
}

// Equal reports whether v and other hold the same value. Integer and
// floating-point values compare numerically, so Int(1) equals Float(1.0).
func (v Value) Equal(other Value) bool {
	if v.IsNumber() && other.IsNumber() {
		if v.Kind() == KindInt && other.Kind() == KindInt {
			return v.i == other.i
		}
		return v.Float() == other.Float()
	}

	if v.Kind() != other.Kind() {
		return false
	}

	switch v.Kind() {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindList:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.members) != len(other.members) {
			return false
		}
		for i := range v.members {
			if v.members[i].Key != other.members[i].Key {
				return false
			}
			if !v.members[i].Value.Equal(other.members[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Interface returns the value as a native Go type: nil, bool, int64,
// float64, string, []any, or map[string]any.
func (v Value) Interface() any {
	switch v.Kind() {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindList:
		items := make([]any, len(v.items))
		for i, item := range v.items {
			items[i] = item.Interface()
		}
		return items
	case KindMapping:
		m := make(map[string]any, len(v.members))
		for _, member := range v.members {
			m[member.Key] = member.Value.Interface()
		}
		return m
	default:
		return nil
	}
}

// String returns a human-readable rendering of v for error messages and
// debugging. It falls back to the kind name if the value cannot be
// encoded.
func (v Value) String() string {
	data, err := v.EncodeJSON()
	if err != nil {
		return v.Kind().String()
	}
	return string(data)
}

package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Decode parses a single JSON document into a Value. Object member order
// is preserved. Numbers without a fraction or exponent decode as integers;
// everything else numeric decodes as a float.
func Decode(data []byte) (Value, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return Value{}, fmt.Errorf("empty JSON input")
	}
	if !gjson.Valid(trimmed) {
		return Value{}, fmt.Errorf("invalid JSON value %q", trimmed)
	}
	return fromResult(gjson.Parse(trimmed)), nil
}

// fromResult converts a parsed gjson node into a Value.
func fromResult(res gjson.Result) Value {
	switch res.Type {
	case gjson.Null:
		return Null()
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.String:
		return String(res.Str)
	case gjson.Number:
		if isIntegralLiteral(res.Raw) {
			if i, err := strconv.ParseInt(res.Raw, 10, 64); err == nil {
				return Int(i)
			}
		}
		return Float(res.Num)
	default:
		if res.IsArray() {
			var items []Value
			res.ForEach(func(_, item gjson.Result) bool {
				items = append(items, fromResult(item))
				return true
			})
			return List(items...)
		}
		var members []Member
		res.ForEach(func(key, item gjson.Result) bool {
			members = append(members, Member{Key: key.Str, Value: fromResult(item)})
			return true
		})
		return Map(members...)
	}
}

// isIntegralLiteral reports whether a raw JSON number literal has no
// fraction or exponent part.
func isIntegralLiteral(raw string) bool {
	return !strings.ContainsAny(raw, ".eE")
}

// EncodeJSON renders v as a compact JSON document. It fails for
// floating-point values that have no JSON representation (NaN and the
// infinities).
func (v Value) EncodeJSON() ([]byte, error) {
	switch v.Kind() {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		if v.b {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case KindInt:
		return strconv.AppendInt(nil, v.i, 10), nil
	case KindFloat:
		return encodeFloat(v.f)
	case KindString:
		return gjson.AppendJSONString(nil, v.s), nil
	case KindList:
		out := []byte("[]")
		for _, item := range v.items {
			raw, err := item.EncodeJSON()
			if err != nil {
				return nil, err
			}
			var serr error
			out, serr = sjson.SetRawBytes(out, "-1", raw)
			if serr != nil {
				return nil, fmt.Errorf("encoding list element: %w", serr)
			}
		}
		return out, nil
	case KindMapping:
		// Members are concatenated directly so any string key is a
		// valid member, including the empty key.
		out := []byte{'{'}
		for i, member := range v.members {
			raw, err := member.Value.EncodeJSON()
			if err != nil {
				return nil, err
			}
			if i > 0 {
				out = append(out, ',')
			}
			out = gjson.AppendJSONString(out, member.Key)
			out = append(out, ':')
			out = append(out, raw...)
		}
		return append(out, '}'), nil
	default:
		return nil, fmt.Errorf("unsupported value kind %v", v.Kind())
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.EncodeJSON()
}

// encodeFloat renders a float as a JSON number literal. Integral floats
// keep a trailing ".0" so they decode back as floats.
func encodeFloat(f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("float value %v is not JSON-encodable", f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return []byte(s), nil
}

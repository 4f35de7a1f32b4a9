package value

import (
	"math"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{"null", "null", Null()},
		{"true", "true", Bool(true)},
		{"false", "false", Bool(false)},
		{"integer", "42", Int(42)},
		{"negative integer", "-7", Int(-7)},
		{"fraction", "3.14", Float(3.14)},
		{"exponent is float", "1e3", Float(1000)},
		{"integral with dot is float", "2.0", Float(2.0)},
		{"string", `"hello"`, String("hello")},
		{"escaped string", `"a\"b"`, String(`a"b`)},
		{"array", `[1, "x", null]`, List(Int(1), String("x"), Null())},
		{
			"object keeps order",
			`{"z": 1, "a": 2}`,
			Map(Member{Key: "z", Value: Int(1)}, Member{Key: "a", Value: Int(2)}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.input))
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Decode() = %v, want %v", got, tt.want)
			}
			if got.Kind() != tt.want.Kind() {
				t.Errorf("Decode() kind = %v, want %v", got.Kind(), tt.want.Kind())
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "{", `"unterminated`, "tru"} {
		if _, err := Decode([]byte(input)); err == nil {
			t.Errorf("Decode(%q): expected error", input)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null(), "null"},
		{"bool", Bool(true), "true"},
		{"int", Int(-12), "-12"},
		{"float", Float(3.5), "3.5"},
		{"integral float keeps fraction", Float(4), "4.0"},
		{"string", String(`say "hi"`), `"say \"hi\""`},
		{"list", List(Int(1), String("x")), `[1,"x"]`},
		{
			"mapping keeps order",
			Map(Member{Key: "z", Value: Int(1)}, Member{Key: "a.b", Value: Bool(false)}),
			`{"z":1,"a.b":false}`,
		},
		{"empty list", List(), "[]"},
		{"empty mapping", Map(), "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.EncodeJSON()
			if err != nil {
				t.Fatalf("EncodeJSON() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("EncodeJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeJSONMappingKeys(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"empty key", Map(Member{Key: "", Value: Int(1)}), `{"":1}`},
		{"path characters literal", Map(Member{Key: "a.b*c|d", Value: Bool(true)}), `{"a.b*c|d":true}`},
		{"quote escaped", Map(Member{Key: `a"b`, Value: Null()}), `{"a\"b":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.EncodeJSON()
			if err != nil {
				t.Fatalf("EncodeJSON() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("EncodeJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMappingEmptyKeyRoundTrip(t *testing.T) {
	decoded, err := Decode([]byte(`{"": 1}`))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	data, err := decoded.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON() error: %v", err)
	}
	again, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() of re-encoded value error: %v", err)
	}
	if !again.Equal(decoded) {
		t.Errorf("round trip mismatch: got %v, want %v", again, decoded)
	}
}

func TestEncodeJSONNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Float(f).EncodeJSON(); err == nil {
			t.Errorf("EncodeJSON(%v): expected error", f)
		}
	}
	if _, err := List(Float(math.NaN())).EncodeJSON(); err == nil {
		t.Error("EncodeJSON(list with NaN): expected error")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := Map(
		Member{Key: "name", Value: String("svc")},
		Member{Key: "port", Value: Int(8080)},
		Member{Key: "ratio", Value: Float(0.5)},
		Member{Key: "tags", Value: List(String("a"), String("b"))},
		Member{Key: "extra", Value: Null()},
	)

	data, err := original.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON() error: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !decoded.Equal(original) {
		t.Errorf("round trip mismatch: got %v, want %v", decoded, original)
	}
}

package blueprint

import (
	"errors"
	"testing"

	"github.com/dshills/confkit/value"
)

func portBlueprint(t *testing.T) *Blueprint {
	t.Helper()
	bp, err := New(Definition{
		Section: "net",
		Option:  "port",
		Types:   value.KindInt,
		Default: value.Int(8080),
		Minimum: MinValue(1),
		Maximum: MaxValue(65535),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return bp
}

func TestNewRejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
	}{
		{
			"empty section",
			Definition{Option: "port", Types: value.KindInt, Default: value.Int(1)},
		},
		{
			"empty option",
			Definition{Section: "net", Types: value.KindInt, Default: value.Int(1)},
		},
		{
			"empty types",
			Definition{Section: "net", Option: "port", Default: value.Int(1)},
		},
		{
			"minimum above maximum",
			Definition{
				Section: "net", Option: "port", Types: value.KindInt,
				Default: value.Int(5), Minimum: MinValue(10), Maximum: MaxValue(1),
			},
		},
		{
			"broken pattern",
			Definition{
				Section: "net", Option: "host", Types: value.KindString,
				Default:  value.String("x"),
				Patterns: map[string]string{"bad": "["},
			},
		},
		{
			"default fails own validation",
			Definition{
				Section: "net", Option: "port", Types: value.KindInt,
				Default: value.String("eighty"),
			},
		},
		{
			"default out of range",
			Definition{
				Section: "net", Option: "port", Types: value.KindInt,
				Default: value.Int(0), Minimum: MinValue(1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.def); err == nil {
				t.Fatal("New() succeeded, want error")
			}
		})
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Must() did not panic")
		}
	}()
	Must(Definition{Section: "net", Option: "port"})
}

func TestRequired(t *testing.T) {
	required := Must(Definition{
		Section: "a", Option: "b", Types: value.KindInt, Default: value.Int(0),
	})
	if !required.Required() {
		t.Error("Required() = false for non-nullable types")
	}

	optional := Must(Definition{
		Section: "a", Option: "b", Types: value.KindInt | value.KindNull,
		Default: value.Null(),
	})
	if optional.Required() {
		t.Error("Required() = true for nullable types")
	}
}

func TestValidateType(t *testing.T) {
	bp := portBlueprint(t)

	if _, err := bp.Validate(value.Int(443)); err != nil {
		t.Errorf("Validate(443) error: %v", err)
	}

	_, err := bp.Validate(value.String("443"))
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("Validate(string) error = %v, want ErrInvalidType", err)
	}
	var terr *TypeError
	if !errors.As(err, &terr) {
		t.Fatalf("error type = %T, want *TypeError", err)
	}
	if terr.Section != "net" || terr.Option != "port" {
		t.Errorf("TypeError key = %s.%s, want net.port", terr.Section, terr.Option)
	}
}

func TestValidatePassThrough(t *testing.T) {
	bp := portBlueprint(t)
	got, err := bp.Validate(value.Int(8080))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !got.Equal(value.Int(8080)) || got.Kind() != value.KindInt {
		t.Errorf("Validate() = %v, want the value unchanged", got)
	}
}

func TestValidateListItems(t *testing.T) {
	bp := Must(Definition{
		Section:   "app",
		Option:    "tags",
		Types:     value.KindList,
		ItemTypes: value.KindString,
		Default:   value.List(),
	})

	if _, err := bp.Validate(value.List(value.String("a"), value.String("b"))); err != nil {
		t.Errorf("Validate(strings) error: %v", err)
	}

	_, err := bp.Validate(value.List(value.String("a"), value.Int(1)))
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("Validate(mixed) error = %v, want ErrInvalidType", err)
	}
	var terr *TypeError
	if !errors.As(err, &terr) {
		t.Fatalf("error type = %T, want *TypeError", err)
	}
	if terr.Locus != "index 1 of the collection" {
		t.Errorf("Locus = %q, want the failing index", terr.Locus)
	}

	// A bare scalar is not a list.
	if _, err := bp.Validate(value.String("a")); !errors.Is(err, ErrInvalidType) {
		t.Errorf("Validate(scalar) error = %v, want ErrInvalidType", err)
	}
}

func TestValidateMappingItems(t *testing.T) {
	bp := Must(Definition{
		Section:   "app",
		Option:    "limits",
		Types:     value.KindMapping,
		ItemTypes: value.KindInt,
		Default:   value.Map(),
	})

	ok := value.Map(value.Member{Key: "cpu", Value: value.Int(4)})
	if _, err := bp.Validate(ok); err != nil {
		t.Errorf("Validate(ok) error: %v", err)
	}

	bad := value.Map(value.Member{Key: "cpu", Value: value.String("lots")})
	_, err := bp.Validate(bad)
	var terr *TypeError
	if !errors.As(err, &terr) {
		t.Fatalf("Validate(bad) error = %v, want *TypeError", err)
	}
	if terr.Locus != `key "cpu" of the mapping` {
		t.Errorf("Locus = %q, want the failing key", terr.Locus)
	}
}

func TestItemTypesDefaultToPrimitives(t *testing.T) {
	bp := Must(Definition{
		Section: "app", Option: "misc", Types: value.KindList,
		Default: value.List(),
	})

	mixed := value.List(value.Int(1), value.String("a"), value.Null(), value.Bool(true))
	if _, err := bp.Validate(mixed); err != nil {
		t.Errorf("Validate(mixed primitives) error: %v", err)
	}
	if bp.ItemTypes() != value.KindPrimitives {
		t.Errorf("ItemTypes() = %v, want all primitives", bp.ItemTypes())
	}
}

func TestValidateFormat(t *testing.T) {
	bp := Must(Definition{
		Section: "net",
		Option:  "listen",
		Types:   value.KindString | value.KindList,
		Default: value.String("127.0.0.1"),
		Patterns: map[string]string{
			"ipv4":     `\d{1,3}(\.\d{1,3}){3}`,
			"hostname": `[a-z][a-z0-9-]*`,
		},
	})

	tests := []struct {
		name    string
		v       value.Value
		wantErr bool
	}{
		{"matches first pattern", value.String("10.0.0.1"), false},
		{"matches second pattern", value.String("localhost"), false},
		{"partial match rejected", value.String("localhost:80"), true},
		{"non-string exempt", value.List(value.Int(5)), false},
		{"string element checked", value.List(value.String("ok-host"), value.String("NOPE")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bp.Validate(tt.v)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Fatalf("Validate() error = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	bp := portBlueprint(t)

	tests := []struct {
		name    string
		v       value.Value
		wantErr bool
		limit   string
	}{
		{"at minimum", value.Int(1), false, ""},
		{"at maximum", value.Int(65535), false, ""},
		{"below minimum", value.Int(0), true, "minimum"},
		{"above maximum", value.Int(70000), true, "maximum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bp.Validate(tt.v)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("Validate() error = %v, want ErrOutOfRange", err)
			}
			var rerr *RangeError
			if !errors.As(err, &rerr) {
				t.Fatalf("error type = %T, want *RangeError", err)
			}
			if rerr.Limit != tt.limit {
				t.Errorf("Limit = %q, want %q", rerr.Limit, tt.limit)
			}
		})
	}
}

func TestValidateOrder(t *testing.T) {
	// A value that is both the wrong type and out of range must report
	// the type failure.
	bp := portBlueprint(t)
	_, err := bp.Validate(value.Bool(true))
	if !errors.Is(err, ErrInvalidType) {
		t.Errorf("Validate() error = %v, want ErrInvalidType first", err)
	}
}

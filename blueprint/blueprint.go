package blueprint

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/dshills/confkit/value"
)

// Definition declares the rules for one configuration option. It is the
// input to New; the resulting Blueprint is immutable.
type Definition struct {
	// Section and Option identify the configuration key.
	Section string
	Option  string

	// Types is the set of accepted value kinds. Must not be empty.
	Types value.Kind

	// ItemTypes constrains the elements of list and mapping values.
	// Zero means all primitive kinds are accepted.
	ItemTypes value.Kind

	// Description is human-readable documentation, written into the
	// configuration file as a comment.
	Description string

	// Default is the value used when the option is absent from the file.
	// It must satisfy the blueprint's own validation rules.
	Default value.Value

	// Patterns maps a human-readable label to a regular expression.
	// When non-empty, every string value must fully match at least one
	// pattern. The labels are listed in the option's documentation.
	Patterns map[string]string

	// Minimum and Maximum are inclusive numeric bounds (nil means no
	// bound). Applied only when the value is numeric.
	Minimum *float64
	Maximum *float64
}

// pattern pairs a documentation label with its compiled expression.
type pattern struct {
	label string
	expr  string
	re    *regexp.Regexp
}

// Blueprint holds the validated, immutable rules for one option.
type Blueprint struct {
	section     string
	option      string
	description string
	types       value.Kind
	itemTypes   value.Kind
	def         value.Value
	patterns    []pattern
	min         *float64
	max         *float64
}

// New builds a Blueprint from a definition. It compiles the patterns and
// validates the default value against the blueprint's own rules, so a
// constructed Blueprint always has a usable default.
func New(def Definition) (*Blueprint, error) {
	if def.Section == "" {
		return nil, fmt.Errorf("blueprint section must not be empty")
	}
	if def.Option == "" {
		return nil, fmt.Errorf("blueprint option must not be empty")
	}
	if def.Types.IsZero() {
		return nil, fmt.Errorf("blueprint %s.%s: types must not be empty", def.Section, def.Option)
	}
	if def.Minimum != nil && def.Maximum != nil && *def.Minimum > *def.Maximum {
		return nil, fmt.Errorf("blueprint %s.%s: minimum %v is greater than maximum %v",
			def.Section, def.Option, *def.Minimum, *def.Maximum)
	}

	itemTypes := def.ItemTypes
	if itemTypes.IsZero() {
		itemTypes = value.KindPrimitives
	}

	bp := &Blueprint{
		section:     def.Section,
		option:      def.Option,
		description: def.Description,
		types:       def.Types,
		itemTypes:   itemTypes,
		def:         def.Default,
		min:         def.Minimum,
		max:         def.Maximum,
	}

	labels := make([]string, 0, len(def.Patterns))
	for label := range def.Patterns {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		expr := def.Patterns[label]
		// Anchor so the pattern must match the whole string.
		re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
		if err != nil {
			return nil, fmt.Errorf("blueprint %s.%s: compiling pattern %q: %w",
				def.Section, def.Option, label, err)
		}
		bp.patterns = append(bp.patterns, pattern{label: label, expr: expr, re: re})
	}

	if _, err := bp.Validate(def.Default); err != nil {
		return nil, fmt.Errorf("blueprint %s.%s: default value: %w", def.Section, def.Option, err)
	}

	return bp, nil
}

// Must builds a Blueprint and panics on error. Useful for declaring
// built-in options at init time.
func Must(def Definition) *Blueprint {
	bp, err := New(def)
	if err != nil {
		panic(err)
	}
	return bp
}

// MinValue creates a pointer to a float64 for use as Minimum.
func MinValue(v float64) *float64 {
	return &v
}

// MaxValue creates a pointer to a float64 for use as Maximum.
func MaxValue(v float64) *float64 {
	return &v
}

// Section returns the section name.
func (b *Blueprint) Section() string { return b.section }

// Option returns the option name.
func (b *Blueprint) Option() string { return b.option }

// Description returns the documentation text.
func (b *Blueprint) Description() string { return b.description }

// Types returns the set of accepted value kinds.
func (b *Blueprint) Types() value.Kind { return b.types }

// ItemTypes returns the set of kinds accepted inside collections.
func (b *Blueprint) ItemTypes() value.Kind { return b.itemTypes }

// Default returns the default value.
func (b *Blueprint) Default() value.Value { return b.def }

// Required reports whether the option must hold a non-null value.
func (b *Blueprint) Required() bool {
	return !b.types.Has(value.KindNull)
}

// Minimum returns the inclusive lower bound, or nil.
func (b *Blueprint) Minimum() *float64 { return b.min }

// Maximum returns the inclusive upper bound, or nil.
func (b *Blueprint) Maximum() *float64 { return b.max }

// PatternLabels returns the documentation labels of the patterns, sorted.
func (b *Blueprint) PatternLabels() []string {
	labels := make([]string, len(b.patterns))
	for i, p := range b.patterns {
		labels[i] = p.label
	}
	return labels
}

// Validate checks v against the blueprint's rules in fixed order: type,
// then format, then range. It stops at the first failure and returns v
// unchanged on success, so it can be used as a pass-through in
// assignment paths.
func (b *Blueprint) Validate(v value.Value) (value.Value, error) {
	if err := b.validateType(v); err != nil {
		return value.Value{}, err
	}
	if err := b.validateFormat(v); err != nil {
		return value.Value{}, err
	}
	if err := b.validateRange(v); err != nil {
		return value.Value{}, err
	}
	return v, nil
}

// validateType checks the value's kind, recursing into collection
// elements when the blueprint accepts collections.
func (b *Blueprint) validateType(v value.Value) error {
	if b.types.Has(value.KindList) && v.Kind() == value.KindList {
		return b.validateListItems(v)
	}
	if b.types.Has(value.KindMapping) && v.Kind() == value.KindMapping {
		return b.validateMappingItems(v)
	}

	if !b.types.Has(v.Kind()) {
		return &TypeError{
			Section:  b.section,
			Option:   b.option,
			Expected: b.types,
			Value:    v,
		}
	}
	return nil
}

// validateListItems checks every element of a list against the item kinds.
func (b *Blueprint) validateListItems(v value.Value) error {
	allowed := b.itemTypes.Intersect(value.KindPrimitives)
	for i, item := range v.Items() {
		if !allowed.Has(item.Kind()) {
			return &TypeError{
				Section:  b.section,
				Option:   b.option,
				Expected: b.itemTypes,
				Value:    item,
				Locus:    fmt.Sprintf("index %d of the collection", i),
			}
		}
	}
	return nil
}

// validateMappingItems checks every member value of a mapping against the
// item kinds. Keys are strings by construction of the value model.
func (b *Blueprint) validateMappingItems(v value.Value) error {
	allowed := b.itemTypes.Intersect(value.KindPrimitives)
	for _, member := range v.Members() {
		if !allowed.Has(member.Value.Kind()) {
			return &TypeError{
				Section:  b.section,
				Option:   b.option,
				Expected: b.itemTypes,
				Value:    member.Value,
				Locus:    fmt.Sprintf("key %q of the mapping", member.Key),
			}
		}
	}
	return nil
}

// validateFormat checks string values (and string collection elements)
// against the patterns. Non-string values are exempt.
func (b *Blueprint) validateFormat(v value.Value) error {
	if len(b.patterns) == 0 {
		return nil
	}

	switch v.Kind() {
	case value.KindString:
		return b.matchAny(v.Str(), "")
	case value.KindList:
		for i, item := range v.Items() {
			if item.Kind() != value.KindString {
				continue
			}
			if err := b.matchAny(item.Str(), fmt.Sprintf("index %d of the collection", i)); err != nil {
				return err
			}
		}
	case value.KindMapping:
		for _, member := range v.Members() {
			if member.Value.Kind() != value.KindString {
				continue
			}
			if err := b.matchAny(member.Value.Str(), fmt.Sprintf("key %q of the mapping", member.Key)); err != nil {
				return err
			}
		}
	}
	return nil
}

// matchAny reports a FormatError unless s fully matches at least one
// pattern.
func (b *Blueprint) matchAny(s, locus string) error {
	for _, p := range b.patterns {
		if p.re.MatchString(s) {
			return nil
		}
	}

	exprs := make([]string, len(b.patterns))
	for i, p := range b.patterns {
		exprs[i] = p.expr
	}
	return &FormatError{
		Section:  b.section,
		Option:   b.option,
		Value:    s,
		Patterns: exprs,
		Locus:    locus,
	}
}

// validateRange checks numeric values against the inclusive bounds.
func (b *Blueprint) validateRange(v value.Value) error {
	if !v.IsNumber() {
		return nil
	}

	f := v.Float()
	if b.min != nil && f < *b.min {
		return &RangeError{
			Section: b.section,
			Option:  b.option,
			Value:   v,
			Limit:   "minimum",
			Bound:   *b.min,
		}
	}
	if b.max != nil && f > *b.max {
		return &RangeError{
			Section: b.section,
			Option:  b.option,
			Value:   v,
			Limit:   "maximum",
			Bound:   *b.max,
		}
	}
	return nil
}

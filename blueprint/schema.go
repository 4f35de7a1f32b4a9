package blueprint

// Schema is an ordered collection of blueprints. Sections keep their
// declaration order and options keep their insertion order within a
// section; the configuration file is written in that order.
//
// Schema is not safe for concurrent mutation. Build it up front, then
// share it read-only.
type Schema struct {
	sections []string
	options  map[string][]string
	table    map[string]map[string]*Blueprint
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{
		options: make(map[string][]string),
		table:   make(map[string]map[string]*Blueprint),
	}
}

// Add registers a blueprint under its section and option. Re-adding an
// existing option replaces the blueprint in place without changing its
// position.
func (s *Schema) Add(bp *Blueprint) {
	section, option := bp.Section(), bp.Option()

	opts, ok := s.table[section]
	if !ok {
		opts = make(map[string]*Blueprint)
		s.table[section] = opts
		s.sections = append(s.sections, section)
	}
	if _, ok := opts[option]; !ok {
		s.options[section] = append(s.options[section], option)
	}
	opts[option] = bp
}

// Lookup returns the blueprint for the given key, or false when either
// the section or the option is undeclared.
func (s *Schema) Lookup(section, option string) (*Blueprint, bool) {
	bp, ok := s.table[section][option]
	return bp, ok
}

// HasSection reports whether the section is declared.
func (s *Schema) HasSection(section string) bool {
	_, ok := s.table[section]
	return ok
}

// HasOption reports whether the option is declared. The second result
// distinguishes an undeclared option in a known section from an
// undeclared section.
func (s *Schema) HasOption(section, option string) (hasOption, hasSection bool) {
	opts, ok := s.table[section]
	if !ok {
		return false, false
	}
	_, ok = opts[option]
	return ok, true
}

// Sections returns the section names in declaration order.
func (s *Schema) Sections() []string {
	out := make([]string, len(s.sections))
	copy(out, s.sections)
	return out
}

// Options returns the option names of a section in insertion order, or
// nil for an undeclared section.
func (s *Schema) Options(section string) []string {
	opts := s.options[section]
	if opts == nil {
		return nil
	}
	out := make([]string, len(opts))
	copy(out, opts)
	return out
}

// Len returns the total number of declared options.
func (s *Schema) Len() int {
	n := 0
	for _, opts := range s.options {
		n += len(opts)
	}
	return n
}

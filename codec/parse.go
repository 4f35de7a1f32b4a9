package codec

import (
	"regexp"
	"strings"

	"github.com/dshills/confkit/blueprint"
	"github.com/dshills/confkit/value"
)

var (
	sectionRe = regexp.MustCompile(`^\[(.*)\]$`)
	optionRe  = regexp.MustCompile(`^(.*?)=(.*)$`)
)

// assignment accumulates one option's value lines until the parser sees
// the end of the value.
type assignment struct {
	bp        *blueprint.Blueprint
	section   string
	option    string
	pieces    []string
	startLine int
	endLine   int
	// keep is false for undeclared options, which consume their value
	// lines but are never stored.
	keep bool
}

// Parse reads configuration lines into a value table keyed by section
// and option. Unknown sections are ignored until the next declared
// section line; unknown options and options outside any declared
// section are dropped. Every stored value is validated against its
// blueprint; the first decode or validation failure aborts the parse.
func Parse(lines []string, schema *blueprint.Schema) (map[string]map[string]value.Value, error) {
	values := make(map[string]map[string]value.Value)

	var (
		section string
		open    bool
		pending *assignment
	)

	flush := func() error {
		if pending == nil {
			return nil
		}
		a := pending
		pending = nil
		if !a.keep {
			return nil
		}

		v, err := decodeAssignment(a)
		if err != nil {
			return err
		}
		checked, err := a.bp.Validate(v)
		if err != nil {
			return &ParseError{
				StartLine: a.startLine,
				EndLine:   a.endLine,
				Section:   a.section,
				Option:    a.option,
				Message:   err.Error(),
				Err:       err,
			}
		}

		if values[a.section] == nil {
			values[a.section] = make(map[string]value.Value)
		}
		values[a.section][a.option] = checked
		return nil
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)

		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		if m := sectionRe.FindStringSubmatch(line); m != nil {
			if err := flush(); err != nil {
				return nil, err
			}
			section = strings.TrimSpace(m[1])
			open = schema.HasSection(section)
			continue
		}

		// A continuation line containing "=" is indistinguishable from a
		// new assignment and ends the current value, so a string element
		// of a wrapped multi-line value must not contain "=".
		if m := optionRe.FindStringSubmatch(line); m != nil {
			if err := flush(); err != nil {
				return nil, err
			}
			option := strings.TrimSpace(m[1])
			pending = &assignment{
				section:   section,
				option:    option,
				pieces:    []string{strings.TrimSpace(m[2])},
				startLine: i + 1,
				endLine:   i + 1,
			}
			if open {
				if bp, ok := schema.Lookup(section, option); ok {
					pending.bp = bp
					pending.keep = true
				}
			}
			continue
		}

		if pending != nil {
			pending.pieces = append(pending.pieces, line)
			pending.endLine = i + 1
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return values, nil
}

// decodeAssignment joins the accumulated value lines and parses them as
// a single JSON document. An empty value decodes as null.
func decodeAssignment(a *assignment) (value.Value, error) {
	text := strings.TrimSpace(strings.Join(a.pieces, "\n"))
	if text == "" {
		return value.Null(), nil
	}

	v, err := value.Decode([]byte(text))
	if err != nil {
		return value.Value{}, &ParseError{
			StartLine: a.startLine,
			EndLine:   a.endLine,
			Section:   a.section,
			Option:    a.option,
			Message:   "value is not valid JSON: " + err.Error(),
			Err:       err,
		}
	}
	return v, nil
}

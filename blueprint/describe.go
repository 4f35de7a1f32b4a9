package blueprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/pretty"

	"github.com/dshills/confkit/value"
)

// configIndent is the indentation used for multi-line JSON values in the
// configuration file.
var configIndent = &pretty.Options{Width: 80, Indent: "    "}

// Describe renders the option's documentation as a comment block for the
// configuration file: the free-text description, the generated type hint,
// the JSON-encoded default, the numeric bounds, and the pattern labels.
func (b *Blueprint) Describe() (string, error) {
	var sb strings.Builder

	for _, line := range strings.Split(b.description, "\n") {
		sb.WriteString(commentLine(line))
	}

	sb.WriteString(commentLine("Type: " + typeHint(b.types, b.itemTypes)))

	def, err := b.def.EncodeJSON()
	if err != nil {
		return "", fmt.Errorf("describing option %q of section %q: %w: %v",
			b.option, b.section, ErrNotEncodable, err)
	}
	sb.WriteString(commentLine("Default: " + string(def)))

	if b.min != nil {
		sb.WriteString(commentLine("Minimum: " + formatBound(*b.min)))
	}
	if b.max != nil {
		sb.WriteString(commentLine("Maximum: " + formatBound(*b.max)))
	}
	if len(b.patterns) > 0 {
		sb.WriteString(commentLine("Formats: " + strings.Join(b.PatternLabels(), ", ")))
	}

	return sb.String(), nil
}

// ConfigLine renders the `option = <JSON value>` assignment for the
// configuration file, followed by a blank line. Large values span
// multiple indented lines. It fails with ErrNotEncodable when the value
// has no JSON representation.
func (b *Blueprint) ConfigLine(v value.Value) (string, error) {
	raw, err := v.EncodeJSON()
	if err != nil {
		return "", fmt.Errorf("building config line for option %q of section %q: %w: %v",
			b.option, b.section, ErrNotEncodable, err)
	}

	rendered := strings.TrimSpace(string(pretty.PrettyOptions(raw, configIndent)))
	return b.option + " = " + rendered + "\n\n", nil
}

// typeHint renders the accepted kinds the way they appear in the file
// documentation: primitives by name, collections as list[...] and
// dict[string, ...].
func typeHint(types, itemTypes value.Kind) string {
	var parts []string
	items := itemTypes.String()

	for _, kind := range []value.Kind{
		value.KindNull, value.KindBool, value.KindInt,
		value.KindFloat, value.KindString,
	} {
		if types.Has(kind) {
			parts = append(parts, kind.String())
		}
	}
	if types.Has(value.KindList) {
		parts = append(parts, "list["+items+"]")
	}
	if types.Has(value.KindMapping) {
		parts = append(parts, "dict[string, "+items+"]")
	}

	return strings.Join(parts, ", ")
}

// formatBound renders a numeric bound without a trailing fraction for
// integral values.
func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// commentLine formats one line of text as a file comment.
func commentLine(text string) string {
	if text == "" {
		return "#\n"
	}
	return "# " + text + "\n"
}

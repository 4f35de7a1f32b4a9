package codec

import (
	"strings"

	"github.com/dshills/confkit/blueprint"
	"github.com/dshills/confkit/value"
)

// Encode serializes a schema and its current values into configuration
// file text: the header comment block, the description comment block,
// then every section in declaration order with each option's
// documentation and assignment. Options absent from values fall back to
// their blueprint default.
func Encode(schema *blueprint.Schema, values map[string]map[string]value.Value, header, description string) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(commentBlock(header))
	sb.WriteString("\n")
	sb.WriteString(commentBlock(description))
	sb.WriteString("\n")

	for _, section := range schema.Sections() {
		sb.WriteString("[" + section + "]\n")
		for _, option := range schema.Options(section) {
			bp, _ := schema.Lookup(section, option)

			doc, err := bp.Describe()
			if err != nil {
				return nil, err
			}
			sb.WriteString(doc)

			v, ok := values[section][option]
			if !ok {
				v = bp.Default()
			}
			line, err := bp.ConfigLine(v)
			if err != nil {
				return nil, err
			}
			sb.WriteString(line)
		}
	}

	return []byte(sb.String()), nil
}

// commentBlock formats multi-line text as consecutive comment lines.
func commentBlock(text string) string {
	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			sb.WriteString("#\n")
			continue
		}
		sb.WriteString("# " + line + "\n")
	}
	return sb.String()
}

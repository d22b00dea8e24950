package limitdoc

import (
	"encoding/json"
	"strings"
)

// IndentBlock prefixes every non-blank line of s with indent. Blank lines are
// dropped so the block stays a single literal paragraph.
func IndentBlock(s, indent string) Text {
	var b lineBuilder
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.add(indent + line)
	}
	return b.text()
}

// IndentJSON renders v as two-space indented JSON with every line prefixed by
// indent. Map keys are sorted.
func IndentJSON(v any, indent string) (Text, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return IndentBlock(string(data), indent), nil
}

// CodeBlock wraps body in an RST code-block directive for lang, followed by a
// blank line.
func CodeBlock(lang string, body Text) Text {
	var b lineBuilder
	b.add(".. code-block:: "+lang, "")
	b.add(body...)
	b.add("")
	return b.text()
}

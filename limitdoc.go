package limitdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrColumnMismatch    = errors.New("column count mismatch")
	ErrInvalidPolicy     = errors.New("invalid summary policy")
	ErrInvalidCatalog    = errors.New("invalid limits catalog")
)

// Format represents a table output format.
type Format string

const (
	RST      Format = "rst"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	HTML     Format = "html"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

var formats = []Format{RST, Markdown, CSV, TSV, HTML, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// CheckMark returns the token a boolean column renders for true in format f.
// RST uses a substitution reference resolved by the catalog footer.
func CheckMark(f Format) string {
	if f == RST {
		return "|check|"
	}
	return "✔"
}

// Text is an ordered, immutable sequence of rendered lines.
type Text []string

// Lines returns a copy of the lines.
func (t Text) Lines() []string { return slices.Clone(t) }

// String joins the lines with newlines. Non-empty text always ends with a
// newline.
func (t Text) String() string {
	if len(t) == 0 {
		return ""
	}
	return strings.Join(t, "\n") + "\n"
}

// WriteTo writes the joined text to w.
func (t Text) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

// lineBuilder accumulates lines and hands out an immutable copy.
type lineBuilder struct {
	lines []string
}

func (b *lineBuilder) add(lines ...string) {
	b.lines = append(b.lines, lines...)
}

func (b *lineBuilder) text() Text {
	return Text(slices.Clone(b.lines))
}

// WriteTable renders rows with layout in format f and writes to w.
func WriteTable(w io.Writer, f Format, layout Layout, rows []LimitRow) error {
	switch f {
	case JSON:
		return writeJSON(w, sortedRows(rows))
	case YAML:
		return writeYAML(w, sortedRows(rows))
	}
	grid, err := NewGrid(layout, rows)
	if err != nil {
		return err
	}
	switch f {
	case RST:
		_, err = renderRST(grid).WriteTo(w)
		return err
	case Markdown:
		return writeMarkdown(w, grid)
	case CSV:
		return writeCSV(w, grid, ',')
	case TSV:
		return writeTSV(w, grid)
	case HTML:
		return writeHTML(w, grid)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// MarshalTable renders rows with layout in format f and returns the bytes.
func MarshalTable(f Format, layout Layout, rows []LimitRow) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, f, layout, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

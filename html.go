package limitdoc

import (
	"html"
	"io"
)

func writeHTML(w io.Writer, g Grid) error {
	var b lineBuilder
	b.add("<table>", "  <thead>")
	htmlRow(&b, "th", g.Header)
	b.add("  </thead>", "  <tbody>")
	for _, row := range g.Rows {
		htmlRow(&b, "td", row)
	}
	b.add("  </tbody>", "</table>")
	_, err := b.text().WriteTo(w)
	return err
}

func htmlRow(b *lineBuilder, tag string, cells []string) {
	b.add("    <tr>")
	for _, cell := range cells {
		b.add("      <" + tag + ">" + html.EscapeString(cell) + "</" + tag + ">")
	}
	b.add("    </tr>")
}

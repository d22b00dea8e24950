package limitdoc_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bjaus/limitdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// --- Helpers ---

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func scenarioRows() []limitdoc.LimitRow {
	return []limitdoc.LimitRow{
		{Name: "B", Default: 10, TrustedAdvisor: true},
		{Name: "A", Default: nil, API: true},
	}
}

var rstLayout = limitdoc.LimitLayout(limitdoc.CheckMark(limitdoc.RST))

// ============================================================
// Tests
// ============================================================

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    limitdoc.Format
		wantErr require.ErrorAssertionFunc
	}{
		"rst":      {input: "rst", want: limitdoc.RST, wantErr: require.NoError},
		"markdown": {input: "markdown", want: limitdoc.Markdown, wantErr: require.NoError},
		"csv":      {input: "csv", want: limitdoc.CSV, wantErr: require.NoError},
		"tsv":      {input: "tsv", want: limitdoc.TSV, wantErr: require.NoError},
		"html":     {input: "html", want: limitdoc.HTML, wantErr: require.NoError},
		"json":     {input: "json", want: limitdoc.JSON, wantErr: require.NoError},
		"yaml":     {input: "yaml", want: limitdoc.YAML, wantErr: require.NoError},
		"unknown":  {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := limitdoc.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatSentinel(t *testing.T) {
	t.Parallel()
	_, err := limitdoc.ParseFormat("xml")
	assert.ErrorIs(t, err, limitdoc.ErrUnsupportedFormat)
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := limitdoc.Formats()
	assert.Equal(t, []limitdoc.Format{
		limitdoc.RST, limitdoc.Markdown, limitdoc.CSV, limitdoc.TSV,
		limitdoc.HTML, limitdoc.JSON, limitdoc.YAML,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, limitdoc.RST, limitdoc.Formats()[0])
}

func TestFormatString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "rst", limitdoc.RST.String())
	assert.Equal(t, "markdown", limitdoc.Markdown.String())
}

func TestCheckMark(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "|check|", limitdoc.CheckMark(limitdoc.RST))
	assert.Equal(t, "✔", limitdoc.CheckMark(limitdoc.Markdown))
}

// --- Text ---

func TestTextString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		text limitdoc.Text
		want string
	}{
		"empty":          {text: nil, want: ""},
		"single":         {text: limitdoc.Text{"a"}, want: "a\n"},
		"trailing blank": {text: limitdoc.Text{"a", ""}, want: "a\n\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.text.String())
		})
	}
}

func TestTextLinesIsCopy(t *testing.T) {
	t.Parallel()
	text := limitdoc.Text{"a", "b"}
	lines := text.Lines()
	lines[0] = "changed"
	assert.Equal(t, "a", text[0])
}

func TestTextWriteTo(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n, err := limitdoc.Text{"a", "b"}.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, "a\nb\n", buf.String())
}

// --- LimitRow ---

func TestLimitRowDefaultString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"unlimited": {value: nil, want: "None"},
		"int":       {value: 10, want: "10"},
		"int64":     {value: int64(5000), want: "5000"},
		"float":     {value: 2.5, want: "2.5"},
		"whole":     {value: 20.0, want: "20"},
		"string":    {value: "varies", want: "varies"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := limitdoc.LimitRow{Name: "x", Default: tt.value}
			assert.Equal(t, tt.want, r.DefaultString())
		})
	}
}

// --- RST table ---

func TestRenderTableScenario(t *testing.T) {
	t.Parallel()
	got, err := limitdoc.RenderTable(rstLayout, scenarioRows())
	require.NoError(t, err)
	assert.Equal(t, limitdoc.Text{
		"===== =============== ======= =======",
		"Limit Trusted Advisor API     Default",
		"===== =============== ======= =======",
		"A                     |check| None",
		"B     |check|                 10",
		"===== =============== ======= =======",
		"",
	}, got)
}

func TestRenderTableWidths(t *testing.T) {
	t.Parallel()
	rows := []limitdoc.LimitRow{
		{Name: "Short", Default: 1},
		{Name: "A considerably longer limit name", Default: 123456789},
		{Name: "Mid", Default: nil},
	}
	got, err := limitdoc.RenderTable(rstLayout, rows)
	require.NoError(t, err)

	rule := strings.Split(got[0], " ")
	require.Len(t, rule, 4)
	assert.Len(t, rule[0], len("A considerably longer limit name"))
	assert.Len(t, rule[1], len("Trusted Advisor"))
	assert.Len(t, rule[2], len("|check|"))
	assert.Len(t, rule[3], len("123456789"))
}

func TestRenderTableAmbiguousWidthIsNarrow(t *testing.T) {
	t.Parallel()
	got, err := limitdoc.RenderTable(rstLayout, []limitdoc.LimitRow{{Name: "±±±±±±±±", Default: 1}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got[0], "======== "), got[0])
}

func TestRenderTableSortsByName(t *testing.T) {
	t.Parallel()
	rows := []limitdoc.LimitRow{
		{Name: "Subnets per VPC", Default: 200},
		{Name: "Elastic IPs", Default: 5},
		{Name: "Rules per security group", Default: 50},
	}
	got, err := limitdoc.RenderTable(rstLayout, rows)
	require.NoError(t, err)
	require.Len(t, got, 8)
	assert.True(t, strings.HasPrefix(got[3], "Elastic IPs"))
	assert.True(t, strings.HasPrefix(got[4], "Rules per security group"))
	assert.True(t, strings.HasPrefix(got[5], "Subnets per VPC"))
}

func TestRenderTableDoesNotReorderInput(t *testing.T) {
	t.Parallel()
	rows := scenarioRows()
	_, err := limitdoc.RenderTable(rstLayout, rows)
	require.NoError(t, err)
	assert.Equal(t, "B", rows[0].Name)
}

func TestRenderTableEmpty(t *testing.T) {
	t.Parallel()
	got, err := limitdoc.RenderTable(rstLayout, nil)
	require.NoError(t, err)
	assert.Equal(t, limitdoc.Text{
		"===== =============== ======= =======",
		"Limit Trusted Advisor API     Default",
		"===== =============== ======= =======",
		"===== =============== ======= =======",
		"",
	}, got)
}

func TestRenderTableDeterministic(t *testing.T) {
	t.Parallel()
	rows := []limitdoc.LimitRow{
		{Name: "C", Default: 3}, {Name: "A", Default: 1}, {Name: "B", Default: 2},
	}
	reversed := []limitdoc.LimitRow{rows[2], rows[1], rows[0]}
	a, err := limitdoc.RenderTable(rstLayout, rows)
	require.NoError(t, err)
	b, err := limitdoc.RenderTable(rstLayout, reversed)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestRenderTableColumnMismatch(t *testing.T) {
	t.Parallel()
	layout := limitdoc.Layout{
		Header: []string{"Limit", "Default"},
		Cells: func(r limitdoc.LimitRow) []string {
			if r.Name == "bad" {
				return []string{r.Name}
			}
			return []string{r.Name, r.DefaultString()}
		},
	}
	_, err := limitdoc.RenderTable(layout, []limitdoc.LimitRow{{Name: "good"}, {Name: "bad"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, limitdoc.ErrColumnMismatch)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestRenderTableNoExtractor(t *testing.T) {
	t.Parallel()
	_, err := limitdoc.RenderTable(limitdoc.Layout{Header: []string{"Limit"}}, nil)
	assert.ErrorIs(t, err, limitdoc.ErrColumnMismatch)
}

func TestRenderTableMinWidthMismatch(t *testing.T) {
	t.Parallel()
	layout := limitdoc.LimitLayout("|check|")
	layout.MinWidths = []int{1}
	_, err := limitdoc.RenderTable(layout, nil)
	assert.ErrorIs(t, err, limitdoc.ErrColumnMismatch)
}

func TestRenderTableMinWidthReservesToken(t *testing.T) {
	t.Parallel()
	layout := limitdoc.Layout{
		Header:    []string{"Name", "X"},
		Cells:     func(r limitdoc.LimitRow) []string { return []string{r.Name, ""} },
		MinWidths: []int{0, 7},
	}
	got, err := limitdoc.RenderTable(layout, []limitdoc.LimitRow{{Name: "a"}})
	require.NoError(t, err)
	assert.Equal(t, "==== =======", got[0])
}

// --- Grid ---

func TestGridValidate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		grid    limitdoc.Grid
		wantErr require.ErrorAssertionFunc
	}{
		"ok": {
			grid:    limitdoc.Grid{Header: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}},
			wantErr: require.NoError,
		},
		"short row": {
			grid:    limitdoc.Grid{Header: []string{"a", "b"}, Rows: [][]string{{"1"}}},
			wantErr: require.Error,
		},
		"long row": {
			grid:    limitdoc.Grid{Header: []string{"a"}, Rows: [][]string{{"1", "2"}}},
			wantErr: require.Error,
		},
		"empty row": {
			grid:    limitdoc.Grid{Header: []string{"a"}, Rows: [][]string{{}}},
			wantErr: require.Error,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tt.wantErr(t, tt.grid.Validate())
		})
	}
}

func TestGridWidths(t *testing.T) {
	t.Parallel()
	g := limitdoc.Grid{
		Header: []string{"Name", "Value"},
		Rows:   [][]string{{"a", "1"}, {"longest name", "22"}},
	}
	assert.Equal(t, []int{12, 5}, g.Widths())
}

func TestGridWidthsWideRunes(t *testing.T) {
	t.Parallel()
	g := limitdoc.Grid{Header: []string{"N"}, Rows: [][]string{{"你好"}}}
	assert.Equal(t, []int{4}, g.Widths())
}

// --- Other formats ---

func TestWriteTableMarkdown(t *testing.T) {
	t.Parallel()
	layout := limitdoc.LimitLayout(limitdoc.CheckMark(limitdoc.Markdown))
	var buf bytes.Buffer
	err := limitdoc.WriteTable(&buf, limitdoc.Markdown, layout, scenarioRows())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "| Limit | Trusted Advisor | API"))
	assert.True(t, strings.HasPrefix(lines[1], "| ----- | --------------- |"))
	assert.True(t, strings.HasPrefix(lines[2], "| A     |"))
	assert.Contains(t, lines[2], "None")
	assert.True(t, strings.HasPrefix(lines[3], "| B     | ✔"))
}

func TestWriteTableMarkdownEscapesPipes(t *testing.T) {
	t.Parallel()
	layout := limitdoc.Layout{
		Header: []string{"Limit"},
		Cells:  func(r limitdoc.LimitRow) []string { return []string{r.Name} },
	}
	var buf bytes.Buffer
	err := limitdoc.WriteTable(&buf, limitdoc.Markdown, layout, []limitdoc.LimitRow{{Name: "a|b"}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `a\|b`)
}

func TestWriteTableCSV(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := limitdoc.WriteTable(&buf, limitdoc.CSV, rstLayout, scenarioRows())
	require.NoError(t, err)
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Limit", "Trusted Advisor", "API", "Default"},
		{"A", "", "|check|", "None"},
		{"B", "|check|", "", "10"},
	}, records)
}

func TestWriteTableTSV(t *testing.T) {
	t.Parallel()
	layout := limitdoc.Layout{
		Header: []string{"Limit", "Default"},
		Cells:  func(r limitdoc.LimitRow) []string { return []string{r.Name, r.DefaultString()} },
	}
	var buf bytes.Buffer
	err := limitdoc.WriteTable(&buf, limitdoc.TSV, layout, []limitdoc.LimitRow{{Name: "tab\there", Default: 1}})
	require.NoError(t, err)
	assert.Equal(t, "Limit\tDefault\ntab here\t1\n", buf.String())
}

func TestWriteTableHTML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := limitdoc.WriteTable(&buf, limitdoc.HTML, rstLayout, []limitdoc.LimitRow{{Name: "<b>", Default: 1}})
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<table>\n"))
	assert.Contains(t, out, "<th>Trusted Advisor</th>")
	assert.Contains(t, out, "<td>&lt;b&gt;</td>")
	assert.True(t, strings.HasSuffix(out, "</table>\n"))
}

func TestWriteTableJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := limitdoc.WriteTable(&buf, limitdoc.JSON, rstLayout, scenarioRows())
	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0]["name"])
	assert.Nil(t, got[0]["default"])
	assert.Equal(t, true, got[0]["api"])
	assert.Equal(t, "B", got[1]["name"])
	assert.Equal(t, true, got[1]["trusted_advisor"])
}

func TestWriteTableJSONEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := limitdoc.WriteTable(&buf, limitdoc.JSON, rstLayout, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteTableYAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := limitdoc.WriteTable(&buf, limitdoc.YAML, rstLayout, scenarioRows())
	require.NoError(t, err)
	var got []limitdoc.LimitRow
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Nil(t, got[0].Default)
	assert.Equal(t, 10, got[1].Default)
}

func TestWriteTableRST(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := limitdoc.WriteTable(&buf, limitdoc.RST, rstLayout, scenarioRows())
	require.NoError(t, err)
	want, err := limitdoc.RenderTable(rstLayout, scenarioRows())
	require.NoError(t, err)
	assert.Equal(t, want.String(), buf.String())
}

func TestWriteTableUnsupportedFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := limitdoc.WriteTable(&buf, limitdoc.Format("xml"), rstLayout, nil)
	assert.ErrorIs(t, err, limitdoc.ErrUnsupportedFormat)
}

func TestWriteTableErrors(t *testing.T) {
	t.Parallel()
	for _, f := range limitdoc.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			err := limitdoc.WriteTable(&errWriter{}, f, rstLayout, scenarioRows())
			assert.Error(t, err)
		})
	}
}

func TestMarshalTable(t *testing.T) {
	t.Parallel()
	data, err := limitdoc.MarshalTable(limitdoc.RST, rstLayout, scenarioRows())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Limit Trusted Advisor API     Default")
}

func TestMarshalTableError(t *testing.T) {
	t.Parallel()
	_, err := limitdoc.MarshalTable("bad", rstLayout, nil)
	assert.Error(t, err)
}

// --- Blocks ---

func TestIndentJSON(t *testing.T) {
	t.Parallel()
	policy := map[string]any{
		"Version":   "2012-10-17",
		"Statement": []any{map[string]any{"Effect": "Allow"}},
	}
	got, err := limitdoc.IndentJSON(policy, "    ")
	require.NoError(t, err)
	assert.Equal(t, limitdoc.Text{
		"    {",
		`      "Statement": [`,
		"        {",
		`          "Effect": "Allow"`,
		"        }",
		"      ],",
		`      "Version": "2012-10-17"`,
		"    }",
	}, got)
}

func TestIndentJSONError(t *testing.T) {
	t.Parallel()
	_, err := limitdoc.IndentJSON(make(chan int), "    ")
	assert.Error(t, err)
}

func TestIndentBlockDropsBlankLines(t *testing.T) {
	t.Parallel()
	got := limitdoc.IndentBlock("\n{\n\n  \"a\": 1\n}\n", "  ")
	assert.Equal(t, limitdoc.Text{"  {", `    "a": 1`, "  }"}, got)
}

func TestCodeBlock(t *testing.T) {
	t.Parallel()
	got := limitdoc.CodeBlock("json", limitdoc.Text{"    {}"})
	assert.Equal(t, ".. code-block:: json\n\n    {}\n\n", got.String())
}

package limitdoc

import (
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"
)

// Summary defaults.
const (
	DefaultMaxFullLines     = 12
	DefaultWindowEdge       = 5
	DefaultLineLengthCap    = 100
	DefaultIndent           = "   "
	DefaultEllipsis         = "(...)"
	DefaultTruncationMarker = " (...)"
	DefaultPrompt           = "(venv)$ "
)

// DefaultPreamble introduces a transcript that carries its command line.
var DefaultPreamble = []string{".. code-block:: console", ""}

// Policy controls how [Summarize] compresses a transcript. Non-positive
// numbers and empty strings fall back to the Default* values.
type Policy struct {
	// MaxFullLines is the largest transcript kept in full.
	MaxFullLines int
	// WindowEdge is how many lines are kept from each end of a longer
	// transcript.
	WindowEdge int
	// LineLengthCap is the number of characters lines are cut to.
	LineLengthCap int

	// Anchors are checked in order; the first line each one matches is kept
	// even when it falls outside the window.
	Anchors []Predicate
	// Exclude drops matching lines from the final output.
	Exclude Predicate
	// Verbatim disables truncation and windowing, e.g. for help text.
	Verbatim bool

	Indent           string
	Ellipsis         string
	TruncationMarker string
	Prompt           string
	Preamble         []string

	// Logger receives debug records about windowing. Nil discards them.
	Logger *slog.Logger
}

// DefaultPolicy returns a policy with every default filled in and no anchors.
func DefaultPolicy() Policy {
	return Policy{}.withDefaults()
}

func (p Policy) withDefaults() Policy {
	if p.MaxFullLines <= 0 {
		p.MaxFullLines = DefaultMaxFullLines
	}
	if p.WindowEdge <= 0 {
		p.WindowEdge = DefaultWindowEdge
	}
	if p.LineLengthCap <= 0 {
		p.LineLengthCap = DefaultLineLengthCap
	}
	if p.Indent == "" {
		p.Indent = DefaultIndent
	}
	if p.Ellipsis == "" {
		p.Ellipsis = DefaultEllipsis
	}
	if p.TruncationMarker == "" {
		p.TruncationMarker = DefaultTruncationMarker
	}
	if p.Prompt == "" {
		p.Prompt = DefaultPrompt
	}
	if p.Preamble == nil {
		p.Preamble = slices.Clone(DefaultPreamble)
	}
	if p.Logger == nil {
		p.Logger = slog.New(slog.DiscardHandler)
	}
	return p
}

// truncate cuts line to LineLengthCap characters and marks it.
func (p Policy) truncate(line string) string {
	if utf8.RuneCountInString(line) <= p.LineLengthCap {
		return line
	}
	return string([]rune(line)[:p.LineLengthCap]) + p.TruncationMarker
}

// excerptLine is either transcript content or an elision placeholder.
type excerptLine struct {
	text        string
	placeholder bool
}

// Summarize reduces a transcript to a bounded excerpt. Transcripts longer than
// MaxFullLines keep WindowEdge lines from each end plus the first match of each
// anchor, with elided runs marked by Ellipsis lines. The result is indented
// and ends with a blank line. Excluded lines are dropped after windowing; when
// an excluded anchor leaves two Ellipsis lines adjacent they merge into one.
func Summarize(t Transcript, p Policy) Text {
	p = p.withDefaults()

	var b lineBuilder
	if t.Command != "" {
		b.add(p.Preamble...)
		b.add(p.Indent + p.Prompt + t.Command)
	}

	prevPlaceholder := false
	for _, l := range excerpt(t.Lines, p) {
		if l.placeholder {
			if !prevPlaceholder {
				b.add(p.Indent + p.Ellipsis)
			}
			prevPlaceholder = true
			continue
		}
		if strings.TrimSpace(l.text) == "" {
			continue
		}
		if p.Exclude != nil && p.Exclude(l.text) {
			continue
		}
		b.add(p.Indent + l.text)
		prevPlaceholder = false
	}
	b.add("")
	return b.text()
}

func excerpt(lines []string, p Policy) []excerptLine {
	shown := func(line string) excerptLine {
		if p.Verbatim {
			return excerptLine{text: line}
		}
		return excerptLine{text: p.truncate(line)}
	}
	n := len(lines)
	edge := p.WindowEdge

	if p.Verbatim || n <= p.MaxFullLines || 2*edge >= n {
		out := make([]excerptLine, n)
		for i, line := range lines {
			out[i] = shown(line)
		}
		return out
	}

	present := make(map[string]bool, 2*edge)
	for _, line := range lines[:edge] {
		present[line] = true
	}
	for _, line := range lines[n-edge:] {
		present[line] = true
	}

	ellipsis := excerptLine{placeholder: true}
	out := make([]excerptLine, 0, 2*edge+2*len(p.Anchors)+1)
	for _, line := range lines[:edge] {
		out = append(out, shown(line))
	}
	matched := 0
	for i, anchor := range p.Anchors {
		if anchor == nil {
			continue
		}
		idx := firstMatch(lines, anchor)
		if idx < 0 {
			p.Logger.Debug("anchor matched no line", slog.Int("anchor", i))
			continue
		}
		if present[lines[idx]] {
			continue
		}
		present[lines[idx]] = true
		out = append(out, ellipsis, shown(lines[idx]))
		matched++
	}
	out = append(out, ellipsis)
	for _, line := range lines[n-edge:] {
		out = append(out, shown(line))
	}

	p.Logger.Debug("transcript windowed",
		slog.Int("lines", n),
		slog.Int("window_edge", edge),
		slog.Int("anchors_inserted", matched),
	)
	return out
}

func firstMatch(lines []string, pred Predicate) int {
	for i, line := range lines {
		if pred(line) {
			return i
		}
	}
	return -1
}

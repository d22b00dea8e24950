package limitdoc

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Unlimited is the rendered form of a limit with no default value.
const Unlimited = "None"

// LimitRow describes one named limit and which live sources can supply its
// value. A nil Default means the limit is unlimited.
type LimitRow struct {
	Name           string `json:"name" yaml:"name"`
	Default        any    `json:"default" yaml:"default"`
	API            bool   `json:"api" yaml:"api"`
	TrustedAdvisor bool   `json:"trusted_advisor" yaml:"trusted_advisor"`
}

// DefaultString returns the string form of the default value, or [Unlimited].
func (r LimitRow) DefaultString() string {
	switch v := r.Default.(type) {
	case nil:
		return Unlimited
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Layout pairs column labels with the extractor that produces a row's cells.
// MinWidths, when set, reserves a minimum width per column.
type Layout struct {
	Header    []string
	Cells     func(LimitRow) []string
	MinWidths []int
}

// LimitLayout returns the canonical limit table columns: Limit, Trusted
// Advisor, API and Default. The boolean columns render check for true and
// always reserve room for it.
func LimitLayout(check string) Layout {
	cw := widthCond.StringWidth(check)
	return Layout{
		Header: []string{"Limit", "Trusted Advisor", "API", "Default"},
		Cells: func(r LimitRow) []string {
			return []string{r.Name, mark(r.TrustedAdvisor, check), mark(r.API, check), r.DefaultString()}
		},
		MinWidths: []int{0, cw, cw, 0},
	}
}

func mark(ok bool, check string) string {
	if ok {
		return check
	}
	return ""
}

// sortedRows returns a copy of rows ordered by name.
func sortedRows(rows []LimitRow) []LimitRow {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b LimitRow) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

package limitdoc

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

func writeCSV(w io.Writer, g Grid, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(g.Header); err != nil {
		return err
	}
	for _, row := range g.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// TSV is written unquoted; tabs and newlines inside cells become spaces.
func writeTSV(w io.Writer, g Grid) error {
	clean := strings.NewReplacer("\t", " ", "\n", " ", "\r", "")
	line := func(cells []string) error {
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = clean.Replace(c)
		}
		_, err := fmt.Fprintln(w, strings.Join(out, "\t"))
		return err
	}
	if err := line(g.Header); err != nil {
		return err
	}
	for _, row := range g.Rows {
		if err := line(row); err != nil {
			return err
		}
	}
	return nil
}

package limitdoc

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, rows []LimitRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if rows == nil {
		rows = []LimitRow{}
	}
	return enc.Encode(rows)
}

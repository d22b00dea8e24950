package limitdoc

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, rows []LimitRow) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if rows == nil {
		rows = []LimitRow{}
	}
	if err := enc.Encode(rows); err != nil {
		return err
	}
	return enc.Close()
}

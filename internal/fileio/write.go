package fileio

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes rows in the given column order. Missing keys become "".
func WriteCSV(w io.Writer, headers []string, rows []map[string]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	rec := make([]string, len(headers))
	for _, row := range rows {
		for i, h := range headers {
			rec[i] = row[h]
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

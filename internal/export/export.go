// Package export writes replicated table rows out as CSV, the format the
// surrounding tool uses for dump files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jmoiron/sqlx"
)

// WriteCSV writes a header row with the cursor's column names followed by
// one record per row, and returns the number of data rows written. NULL
// renders as an empty field, blobs as raw strings.
func WriteCSV(w io.Writer, rows *sqlx.Rows) (int, error) {
	columns, err := rows.Columns()
	if err != nil {
		return 0, fmt.Errorf("reading column names: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	count := 0
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return count, fmt.Errorf("scanning row: %w", err)
		}

		record := make([]string, len(values))
		for i, v := range values {
			record[i] = formatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return count, fmt.Errorf("writing row: %w", err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return count, fmt.Errorf("iterating rows: %w", err)
	}

	cw.Flush()
	return count, cw.Error()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

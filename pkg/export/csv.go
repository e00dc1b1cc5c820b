// Package export serializes record slices to CSV for dashboard downloads.
// Fields are addressed by dot-path notation ("owner.name") against the
// record's JSON shape; array values are joined with ", ".
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Column pairs a CSV header with the dot-path of the value it renders.
type Column struct {
	Header string
	Path   string
}

// Columns builds a column list whose headers equal the paths.
func Columns(paths ...string) []Column {
	cols := make([]Column, len(paths))
	for i, p := range paths {
		cols[i] = Column{Header: p, Path: p}
	}
	return cols
}

// WriteCSV renders records to w, one row per record, with a header row.
// records may be any slice; each element is flattened through its JSON
// representation, so json tags decide the addressable field names.
func WriteCSV[T any](w io.Writer, records []T, columns []Column) error {
	writer := csv.NewWriter(w)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Header
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, record := range records {
		flat, err := flatten(record)
		if err != nil {
			return err
		}
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = render(lookup(flat, col.Path))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func flatten(record any) (map[string]any, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// lookup walks a dot-path through nested maps. A missing segment yields nil.
func lookup(value any, path string) any {
	current := value
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[segment]
		if !ok {
			return nil
		}
	}
	return current
}

func render(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		// JSON numbers decode as float64; keep integers undecorated.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = render(item)
		}
		return strings.Join(parts, ", ")
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

package library

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"
)

// WriteCSV serializes records as CSV. The header names the first record's
// fields in declaration order (JSON tag names); every value is wrapped in
// double quotes with embedded quotes doubled; fields are comma-joined and
// rows newline-joined. An empty list yields ErrNoRecords, since there is no
// record to derive a header from.
func WriteCSV[T any](w io.Writer, records []T) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	rt := reflect.TypeOf(records[0])
	if rt.Kind() != reflect.Struct {
		return fmt.Errorf("cannot export %s records", rt.Kind())
	}

	var headers []string
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
			name = strings.SplitN(tag, ",", 2)[0]
		}
		headers = append(headers, name)
	}

	rows := make([]string, 0, len(records)+1)
	rows = append(rows, joinQuoted(headers))
	for _, rec := range records {
		rv := reflect.ValueOf(rec)
		var vals []string
		for i := 0; i < rt.NumField(); i++ {
			if !rt.Field(i).IsExported() {
				continue
			}
			vals = append(vals, formatField(rv.Field(i).Interface()))
		}
		rows = append(rows, joinQuoted(vals))
	}

	_, err := io.WriteString(w, strings.Join(rows, "\n"))
	return err
}

// ExportCSV writes records to filename, the stand-in for a browser download.
func ExportCSV[T any](filename string, records []T) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func joinQuoted(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func formatField(v any) string {
	switch v := v.(type) {
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}

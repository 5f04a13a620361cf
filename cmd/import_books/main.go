// Command import_books bulk-loads book records from a CSV file into the
// configured library store. The file needs a header row naming at least a
// title column; author, isbn, copies, and category columns are optional.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"library-ledger/library"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <books.csv>\n", os.Args[0])
		os.Exit(1)
	}

	dbPath := os.Getenv("LIBRARY_DB_PATH")
	if dbPath == "" {
		dbPath = "library.db"
	}

	db, err := library.NewDatabase(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening csv: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	lib := library.Open(db)
	imported, skipped, err := importBooks(lib, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d books (%d rows skipped)\n", imported, skipped)
}

// importBooks reads CSV rows and adds one book per row. Rows that fail
// validation (missing title) are counted as skipped, not fatal.
func importBooks(lib *library.Library, r io.Reader) (imported, skipped int, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := col["title"]; !ok {
		return 0, 0, fmt.Errorf("header has no title column")
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, skipped, fmt.Errorf("read row: %w", err)
		}

		copies, _ := strconv.Atoi(field(row, "copies"))
		if copies <= 0 {
			copies = 1
		}
		b := library.Book{
			Title:    field(row, "title"),
			Author:   field(row, "author"),
			ISBN:     field(row, "isbn"),
			Copies:   copies,
			Category: field(row, "category"),
		}
		if _, err := lib.AddBook(b); err != nil {
			skipped++
			continue
		}
		imported++
	}
	return imported, skipped, nil
}

package library

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteCSVBooks(t *testing.T) {
	books := []Book{
		{ID: "b1", Title: "The Hobbit", Author: "Tolkien", ISBN: "9780345339683", Copies: 2, Category: "Fantasy"},
		{ID: "b2", Title: "Hyperion", Author: "Dan Simmons", ISBN: "9780553283686", Copies: 1, Category: "Sci-Fi"},
	}

	var sb strings.Builder
	if err := WriteCSV(&sb, books); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	lines := strings.Split(sb.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != `"id","title","author","isbn","copies","category"` {
		t.Fatalf("header mismatch: %s", lines[0])
	}
	if lines[1] != `"b1","The Hobbit","Tolkien","9780345339683","2","Fantasy"` {
		t.Fatalf("row mismatch: %s", lines[1])
	}
}

func TestWriteCSVQuoting(t *testing.T) {
	books := []Book{{ID: "b1", Title: `The "Annotated" Hobbit`, Copies: 1}}

	var sb strings.Builder
	if err := WriteCSV(&sb, books); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if !strings.Contains(sb.String(), `"The ""Annotated"" Hobbit"`) {
		t.Fatalf("embedded quotes not doubled: %s", sb.String())
	}
}

func TestWriteCSVTransactions(t *testing.T) {
	lib := newTestLibrary(t)
	b, _ := lib.AddBook(Book{Title: "Exported", Copies: 1})
	m, _ := lib.AddMember(Member{Name: "Nico"})
	lib.Issue(b.ID, m.ID, 0)

	var sb strings.Builder
	if err := WriteCSV(&sb, lib.Transactions()); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(sb.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], `"id","bookId","memberId","kind",`) {
		t.Fatalf("header mismatch: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"2025-06-01T12:00:00Z"`) {
		t.Fatalf("timestamp not RFC 3339: %s", lines[1])
	}
}

func TestWriteCSVEmptyList(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, []Book{}); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("want ErrNoRecords, got %v", err)
	}
	if sb.Len() != 0 {
		t.Fatalf("empty export wrote output: %q", sb.String())
	}
}

func TestExportCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.csv")
	if err := ExportCSV(path, []Member{{ID: "m1", Name: "Olive"}}); err != nil {
		t.Fatalf("export: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.HasPrefix(string(raw), `"id","name","email","phone"`) {
		t.Fatalf("unexpected file contents: %s", raw)
	}
}

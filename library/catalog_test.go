package library

import (
	"errors"
	"testing"
)

func TestAddBookRequiresTitle(t *testing.T) {
	lib := newTestLibrary(t)
	before := len(lib.Books())

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := lib.AddBook(Book{Title: title, Author: "Anon"}); !errors.Is(err, ErrTitleRequired) {
			t.Fatalf("title %q: want ErrTitleRequired, got %v", title, err)
		}
	}
	if got := len(lib.Books()); got != before {
		t.Fatalf("rejected adds mutated catalog: %d -> %d", before, got)
	}
}

func TestAddBookNewestFirst(t *testing.T) {
	lib := newTestLibrary(t)

	first, _ := lib.AddBook(Book{Title: "First", Copies: 1})
	second, _ := lib.AddBook(Book{Title: "Second", Copies: 1})

	books := lib.Books()
	if books[0].ID != second.ID || books[1].ID != first.ID {
		t.Fatalf("want newest-first ordering, got %s then %s", books[0].Title, books[1].Title)
	}
}

func TestUpdateBook(t *testing.T) {
	lib := newTestLibrary(t)
	b, _ := lib.AddBook(Book{Title: "Draft", Author: "A", Copies: 1})

	lib.UpdateBook(b.ID, Book{Title: "Final", Author: "B", ISBN: "123", Copies: 4, Category: "Ref"})

	got, ok := lib.FindBook(b.ID)
	if !ok {
		t.Fatalf("book disappeared after update")
	}
	if got.Title != "Final" || got.Author != "B" || got.Copies != 4 {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.ID != b.ID {
		t.Fatalf("update changed id: %s -> %s", b.ID, got.ID)
	}

	before := lib.Books()
	lib.UpdateBook("no-such-id", Book{Title: "Ghost"})
	after := lib.Books()
	if len(before) != len(after) {
		t.Fatalf("updating unknown id changed catalog size")
	}
}

func TestDeleteBookCascadesTransactions(t *testing.T) {
	lib := newTestLibrary(t)
	kept, _ := lib.AddBook(Book{Title: "Kept", Copies: 1})
	doomed, _ := lib.AddBook(Book{Title: "Doomed", Copies: 1})
	m, _ := lib.AddMember(Member{Name: "Eve"})

	if _, err := lib.Issue(kept.ID, m.ID, 0); err != nil {
		t.Fatalf("issue kept: %v", err)
	}
	if _, err := lib.Issue(doomed.ID, m.ID, 0); err != nil {
		t.Fatalf("issue doomed: %v", err)
	}

	lib.DeleteBook(doomed.ID)

	if _, ok := lib.FindBook(doomed.ID); ok {
		t.Fatalf("book not deleted")
	}
	for _, tr := range lib.Transactions() {
		if tr.BookID == doomed.ID {
			t.Fatalf("cascade left transaction %s behind", tr.ID)
		}
	}
	if got := len(lib.ActiveIssues()); got != 1 {
		t.Fatalf("unrelated transaction lost: want 1 active issue, got %d", got)
	}

	// Deleting an unknown id is a no-op.
	lib.DeleteBook("no-such-id")
	if got := len(lib.Books()); got != 4 {
		t.Fatalf("unknown delete changed catalog: got %d books", got)
	}
}

func TestListBooksFilter(t *testing.T) {
	lib := OpenWith(NewMemStore(), &seqIDs{}, testClock())
	lib.AddBook(Book{Title: "The Hobbit", Author: "Tolkien", ISBN: "9780345339683", Category: "Fantasy", Copies: 1})
	lib.AddBook(Book{Title: "Hyperion", Author: "Dan Simmons", ISBN: "9780553283686", Category: "Sci-Fi", Copies: 1})

	tests := []struct {
		name   string
		filter string
		want   int
	}{
		{"empty returns all", "", 5},
		{"title match", "hobbit", 1},
		{"author match case-insensitive", "TOLKIEN", 1},
		{"isbn match", "9780553", 1},
		{"category match", "sci-fi", 1},
		{"id match", "id-2", 1},
		{"no match", "zzzz", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(lib.ListBooks(tt.filter)); got != tt.want {
				t.Fatalf("filter %q: want %d books, got %d", tt.filter, tt.want, got)
			}
		})
	}
}

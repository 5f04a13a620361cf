package library

import "strings"

// AddBook validates the title, assigns a fresh identifier, and prepends the
// book so listings stay newest-first. Returns the stored record.
func (l *Library) AddBook(b Book) (Book, error) {
	if strings.TrimSpace(b.Title) == "" {
		return Book{}, ErrTitleRequired
	}
	b.ID = l.ids.NewID()
	l.books = append([]Book{b}, l.books...)
	l.persist()
	return b, nil
}

// UpdateBook replaces the fields of the book matched by id, keeping the id
// itself. An unknown id is a silent no-op.
func (l *Library) UpdateBook(id string, b Book) {
	for i := range l.books {
		if l.books[i].ID == id {
			b.ID = id
			l.books[i] = b
			l.persist()
			return
		}
	}
}

// DeleteBook removes the book and cascades to every transaction referencing
// it, so no ledger row is ever left pointing at a dead record. An unknown id
// is a silent no-op.
func (l *Library) DeleteBook(id string) {
	idx := -1
	for i := range l.books {
		if l.books[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	l.books = append(l.books[:idx], l.books[idx+1:]...)

	kept := make([]Transaction, 0, len(l.transactions))
	for _, t := range l.transactions {
		if t.BookID != id {
			kept = append(kept, t)
		}
	}
	l.transactions = kept
	l.persist()
}

// ListBooks returns books whose title, author, ISBN, category, or id contains
// the filter, case-insensitively. An empty filter returns every book. Order
// is the stored newest-first order either way.
func (l *Library) ListBooks(filter string) []Book {
	needle := strings.ToLower(strings.TrimSpace(filter))
	out := make([]Book, 0, len(l.books))
	for _, b := range l.books {
		if needle == "" || containsFold(needle, b.Title, b.Author, b.ISBN, b.Category, b.ID) {
			out = append(out, b)
		}
	}
	return out
}

// FindBook fetches a single book by id.
func (l *Library) FindBook(id string) (Book, bool) {
	for _, b := range l.books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

func containsFold(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

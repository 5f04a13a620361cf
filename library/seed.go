package library

// Seed data shown on a fresh or unreadable store, so the application always
// has something to display. Seed ids are fixed; they are as unique and stable
// as generated ones.

func seedBooks() []Book {
	return []Book{
		{ID: "seed-book-1", Title: "Clean Code", Author: "Robert C. Martin", ISBN: "9780132350884", Copies: 3, Category: "Software"},
		{ID: "seed-book-2", Title: "The Pragmatic Programmer", Author: "Andrew Hunt", ISBN: "9780201616224", Copies: 2, Category: "Software"},
		{ID: "seed-book-3", Title: "Dune", Author: "Frank Herbert", ISBN: "9780441172719", Copies: 1, Category: "Fiction"},
	}
}

func seedMembers() []Member {
	return []Member{
		{ID: "seed-member-1", Name: "Alice Johnson", Email: "alice@example.com", Phone: "555-0101"},
		{ID: "seed-member-2", Name: "Bob Smith", Email: "bob@example.com", Phone: "555-0102"},
	}
}

package library

// Issue records the loan of one copy of bookID to memberID for loanDays days
// (DefaultLoanDays when loanDays <= 0). It fails before any mutation when
// either id does not resolve to a live record or when no copy is currently
// available. Returns the appended issue transaction.
func (l *Library) Issue(bookID, memberID string, loanDays int) (Transaction, error) {
	if _, ok := l.FindBook(bookID); !ok {
		return Transaction{}, ErrUnknownBook
	}
	if _, ok := l.FindMember(memberID); !ok {
		return Transaction{}, ErrUnknownMember
	}
	if l.AvailableCopies(bookID) == 0 {
		return Transaction{}, ErrNoAvailableCopies
	}

	if loanDays <= 0 {
		loanDays = DefaultLoanDays
	}
	now := l.clock.Now()
	t := Transaction{
		ID:       l.ids.NewID(),
		BookID:   bookID,
		MemberID: memberID,
		Kind:     KindIssue,
		IssuedAt: now,
		DueAt:    now.AddDate(0, 0, loanDays),
	}
	l.transactions = append([]Transaction{t}, l.transactions...)
	l.persist()
	return t, nil
}

// Return closes the issue transaction with the given id. Unknown ids,
// non-issue rows, and already-returned issues are silent no-ops. A successful
// return flips the issue row's Returned flag in place and also appends an
// immutable return-kind row referencing it, so the event itself stays on
// record even though the issue row is mutated.
func (l *Library) Return(transactionID string) {
	for i := range l.transactions {
		if l.transactions[i].ID != transactionID {
			continue
		}
		if l.transactions[i].Kind != KindIssue || l.transactions[i].Returned {
			return
		}

		now := l.clock.Now()
		l.transactions[i].Returned = true
		l.transactions[i].ReturnedAt = now

		rec := Transaction{
			ID:         l.ids.NewID(),
			BookID:     l.transactions[i].BookID,
			MemberID:   l.transactions[i].MemberID,
			Kind:       KindReturn,
			IssuedAt:   now,
			Returned:   true,
			ReturnedAt: now,
			IssueID:    transactionID,
		}
		l.transactions = append([]Transaction{rec}, l.transactions...)
		l.persist()
		return
	}
}

// AvailableCopies derives availability for bookID from the live ledger: owned
// copies minus open issues, floored at zero. It is recomputed on every call
// so it can never drift from the transaction list.
func (l *Library) AvailableCopies(bookID string) int {
	book, ok := l.FindBook(bookID)
	if !ok {
		return 0
	}
	open := 0
	for _, t := range l.transactions {
		if t.BookID == bookID && t.Kind == KindIssue && !t.Returned {
			open++
		}
	}
	if avail := book.Copies - open; avail > 0 {
		return avail
	}
	return 0
}

// ActiveIssues returns the open issue rows in ledger order (newest first).
func (l *Library) ActiveIssues() []Transaction {
	out := make([]Transaction, 0, len(l.transactions))
	for _, t := range l.transactions {
		if t.Kind == KindIssue && !t.Returned {
			out = append(out, t)
		}
	}
	return out
}

// Dashboard returns the collection counts for the overview screen.
func (l *Library) Dashboard() DashboardCounts {
	return DashboardCounts{
		TotalBooks:        len(l.books),
		TotalMembers:      len(l.members),
		TotalActiveIssues: len(l.ActiveIssues()),
	}
}

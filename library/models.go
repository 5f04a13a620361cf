package library

import "time"

// Transaction kinds. Issue rows open a loan; return rows close one and always
// reference the issue row they close via IssueID.
const (
	KindIssue  = "issue"
	KindReturn = "return"
)

// DefaultLoanDays is used when an issue request does not specify a loan period.
const DefaultLoanDays = 14

// Book represents one title in the catalog. Copies is the total owned count;
// availability is always derived from the ledger, never stored here.
type Book struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	ISBN     string `json:"isbn"`
	Copies   int    `json:"copies"`
	Category string `json:"category"`
}

// Member represents a registered library member.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Transaction is one row in the loan ledger. Issue rows carry DueAt and the
// Returned flag; return rows carry IssueID and timestamp the return event.
type Transaction struct {
	ID         string    `json:"id"`
	BookID     string    `json:"bookId"`
	MemberID   string    `json:"memberId"`
	Kind       string    `json:"kind"`
	IssuedAt   time.Time `json:"issuedAt"`
	DueAt      time.Time `json:"dueAt"`
	Returned   bool      `json:"returned"`
	ReturnedAt time.Time `json:"returnedAt"`
	IssueID    string    `json:"issueId,omitempty"`
}

// DashboardCounts summarizes the three collections for the overview screen.
type DashboardCounts struct {
	TotalBooks        int `json:"totalBooks"`
	TotalMembers      int `json:"totalMembers"`
	TotalActiveIssues int `json:"totalActiveIssues"`
}

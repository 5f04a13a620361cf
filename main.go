package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"library-ledger/library"
)

var cfg Config

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg = LoadConfig()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withLibrary opens the configured store, loads the Library, and runs fn.
// Every command is one load-act-exit cycle; mutations persist inside the
// Library's own operations.
func withLibrary(fn func(lib *library.Library) error) error {
	db, err := library.NewDatabase(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(library.Open(db))
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "libledger",
		Short:         "Single-session library inventory and loan ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(bookCmd(), memberCmd(), loanCmd(), dashboardCmd(), exportCmd())
	return root
}

// ------------------ book ------------------

func bookCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "book", Short: "Manage the catalog"}

	var b library.Book
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withLibrary(func(lib *library.Library) error {
				added, err := lib.AddBook(b)
				if err != nil {
					return err
				}
				fmt.Printf("Added book %s (%s)\n", added.Title, added.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&b.Title, "title", "", "book title (required)")
	add.Flags().StringVar(&b.Author, "author", "", "author name")
	add.Flags().StringVar(&b.ISBN, "isbn", "", "ISBN")
	add.Flags().IntVar(&b.Copies, "copies", 1, "total copies owned")
	add.Flags().StringVar(&b.Category, "category", "", "category")

	var filter string
	list := &cobra.Command{
		Use:   "list",
		Short: "List books, optionally filtered",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withLibrary(func(lib *library.Library) error {
				fmt.Printf("%-38s %-30s %-20s %-14s %-6s %s\n", "ID", "TITLE", "AUTHOR", "ISBN", "AVAIL", "CATEGORY")
				for _, bk := range lib.ListBooks(filter) {
					avail := fmt.Sprintf("%d/%d", lib.AvailableCopies(bk.ID), bk.Copies)
					fmt.Printf("%-38s %-30s %-20s %-14s %-6s %s\n", bk.ID, bk.Title, bk.Author, bk.ISBN, avail, bk.Category)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&filter, "filter", "", "case-insensitive substring filter")

	var upd library.Book
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a book's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withLibrary(func(lib *library.Library) error {
				current, ok := lib.FindBook(args[0])
				if !ok {
					fmt.Println("No such book; nothing updated.")
					return nil
				}
				// Start from the stored record so unset flags keep their value.
				next := current
				if c.Flags().Changed("title") {
					next.Title = upd.Title
				}
				if c.Flags().Changed("author") {
					next.Author = upd.Author
				}
				if c.Flags().Changed("isbn") {
					next.ISBN = upd.ISBN
				}
				if c.Flags().Changed("copies") {
					next.Copies = upd.Copies
				}
				if c.Flags().Changed("category") {
					next.Category = upd.Category
				}
				lib.UpdateBook(args[0], next)
				fmt.Printf("Updated book %s\n", args[0])
				return nil
			})
		},
	}
	update.Flags().StringVar(&upd.Title, "title", "", "book title")
	update.Flags().StringVar(&upd.Author, "author", "", "author name")
	update.Flags().StringVar(&upd.ISBN, "isbn", "", "ISBN")
	update.Flags().IntVar(&upd.Copies, "copies", 0, "total copies owned")
	update.Flags().StringVar(&upd.Category, "category", "", "category")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book and its loan history",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withLibrary(func(lib *library.Library) error {
				lib.DeleteBook(args[0])
				fmt.Printf("Deleted book %s (with its transactions)\n", args[0])
				return nil
			})
		},
	}

	cmd.AddCommand(add, list, update, del)
	return cmd
}

// ------------------ member ------------------

func memberCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "member", Short: "Manage the roster"}

	var m library.Member
	add := &cobra.Command{
		Use:   "add",
		Short: "Register a member",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withLibrary(func(lib *library.Library) error {
				added, err := lib.AddMember(m)
				if err != nil {
					return err
				}
				fmt.Printf("Added member %s (%s)\n", added.Name, added.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&m.Name, "name", "", "member name (required)")
	add.Flags().StringVar(&m.Email, "email", "", "email address")
	add.Flags().StringVar(&m.Phone, "phone", "", "phone number")

	var filter string
	list := &cobra.Command{
		Use:   "list",
		Short: "List members, optionally filtered",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withLibrary(func(lib *library.Library) error {
				fmt.Printf("%-38s %-25s %-28s %s\n", "ID", "NAME", "EMAIL", "PHONE")
				for _, mb := range lib.ListMembers(filter) {
					fmt.Printf("%-38s %-25s %-28s %s\n", mb.ID, mb.Name, mb.Email, mb.Phone)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&filter, "filter", "", "case-insensitive substring filter")

	var upd library.Member
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a member's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withLibrary(func(lib *library.Library) error {
				current, ok := lib.FindMember(args[0])
				if !ok {
					fmt.Println("No such member; nothing updated.")
					return nil
				}
				next := current
				if c.Flags().Changed("name") {
					next.Name = upd.Name
				}
				if c.Flags().Changed("email") {
					next.Email = upd.Email
				}
				if c.Flags().Changed("phone") {
					next.Phone = upd.Phone
				}
				lib.UpdateMember(args[0], next)
				fmt.Printf("Updated member %s\n", args[0])
				return nil
			})
		},
	}
	update.Flags().StringVar(&upd.Name, "name", "", "member name")
	update.Flags().StringVar(&upd.Email, "email", "", "email address")
	update.Flags().StringVar(&upd.Phone, "phone", "", "phone number")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a member and their loan history",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withLibrary(func(lib *library.Library) error {
				lib.DeleteMember(args[0])
				fmt.Printf("Deleted member %s (with their transactions)\n", args[0])
				return nil
			})
		},
	}

	cmd.AddCommand(add, list, update, del)
	return cmd
}

// ------------------ loan ------------------

func loanCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "loan", Short: "Issue and return copies"}

	var days int
	issue := &cobra.Command{
		Use:   "issue <book-id> <member-id>",
		Short: "Issue one copy to a member",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return withLibrary(func(lib *library.Library) error {
				tr, err := lib.Issue(args[0], args[1], days)
				if err != nil {
					return err
				}
				fmt.Printf("Issued %s: due %s (transaction %s)\n", args[0], tr.DueAt.Format("2006-01-02"), tr.ID)
				return nil
			})
		},
	}
	issue.Flags().IntVar(&days, "days", library.DefaultLoanDays, "loan period in days")

	ret := &cobra.Command{
		Use:   "return <transaction-id>",
		Short: "Return the copy held by an issue transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withLibrary(func(lib *library.Library) error {
				lib.Return(args[0])
				fmt.Printf("Returned transaction %s\n", args[0])
				return nil
			})
		},
	}

	active := &cobra.Command{
		Use:   "active",
		Short: "List open issues, newest first",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withLibrary(func(lib *library.Library) error {
				fmt.Printf("%-38s %-30s %-25s %s\n", "TRANSACTION", "BOOK", "MEMBER", "DUE")
				for _, tr := range lib.ActiveIssues() {
					title, member := tr.BookID, tr.MemberID
					if b, ok := lib.FindBook(tr.BookID); ok {
						title = b.Title
					}
					if m, ok := lib.FindMember(tr.MemberID); ok {
						member = m.Name
					}
					fmt.Printf("%-38s %-30s %-25s %s\n", tr.ID, title, member, tr.DueAt.Format("2006-01-02"))
				}
				return nil
			})
		},
	}

	cmd.AddCommand(issue, ret, active)
	return cmd
}

// ------------------ dashboard / export ------------------

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show collection counts",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withLibrary(func(lib *library.Library) error {
				d := lib.Dashboard()
				fmt.Printf("Books: %d\nMembers: %d\nActive issues: %d\n", d.TotalBooks, d.TotalMembers, d.TotalActiveIssues)
				return nil
			})
		},
	}
}

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export <books|members|transactions>",
		Short: "Export one collection as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withLibrary(func(lib *library.Library) error {
				if out == "" {
					out = args[0] + ".csv"
				}
				var err error
				switch args[0] {
				case "books":
					err = library.ExportCSV(out, lib.Books())
				case "members":
					err = library.ExportCSV(out, lib.Members())
				case "transactions":
					err = library.ExportCSV(out, lib.Transactions())
				default:
					return fmt.Errorf("unknown collection %q", args[0])
				}
				if err != nil {
					return err
				}
				fmt.Printf("Exported %s to %s\n", args[0], out)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (defaults to <collection>.csv)")
	return cmd
}

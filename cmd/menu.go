package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	catalogview "github.com/bnema/libcat/internal/adapters/render/catalog"
	"github.com/bnema/libcat/internal/domain"
	"github.com/spf13/cobra"
)

var menuEntries = []string{
	"Register Member",
	"Login Member",
	"Add Book",
	"Borrow Book",
	"Return Book",
	"View Available Books",
	"View Borrowed Books",
	"Search Books by Title",
	"View Statistics",
	"Logout",
	"Exit",
	"View All Members",
}

func newMenuCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive library menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, app)
		},
	}
}

type menu struct {
	cmd     *cobra.Command
	app     *app
	in      *bufio.Reader
	readErr error
	out     io.Writer
}

// runMenu drives the catalog from numbered choices read on stdin until Exit
// or end of input.
func runMenu(cmd *cobra.Command, app *app) error {
	m := &menu{
		cmd: cmd,
		app: app,
		in:  bufio.NewReader(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}

	for {
		m.printMenu()

		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			if m.readErr != nil {
				return fmt.Errorf("read menu choice: %w", m.readErr)
			}
			m.println()
			return nil
		}

		var err error
		switch choice {
		case "1":
			m.registerMember()
		case "2":
			m.loginMember()
		case "3":
			m.addBook()
		case "4":
			m.borrowBook()
		case "5":
			m.returnBook()
		case "6":
			err = m.showBooks("Available Books", m.app.catalog.ViewAvailableBooks())
		case "7":
			err = m.showBorrowedBooks()
		case "8":
			err = m.searchBooks()
		case "9":
			err = writeView(m.cmd, m.app, catalogview.StatisticsView{Stats: m.app.catalog.ViewStatistics()}, catalogview.RenderOptions{})
		case "10":
			m.logoutMember()
		case "11":
			m.println("Goodbye!")
			return nil
		case "12":
			err = writeView(m.cmd, m.app, catalogview.MemberList{Heading: "Members", Members: m.app.catalog.ViewAllMembers()}, catalogview.RenderOptions{})
		default:
			m.println("Invalid choice.")
		}

		if err != nil {
			return err
		}
	}
}

func (m *menu) printMenu() {
	m.println()
	m.println("=== Library System ===")
	for i, entry := range menuEntries {
		m.println(fmt.Sprintf("%d. %s", i+1, entry))
	}
}

// prompt returns false once input is exhausted. Lines have no length limit.
func (m *menu) prompt(label string) (string, bool) {
	_, _ = fmt.Fprint(m.out, label)

	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			m.readErr = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}

	return strings.TrimSpace(line), true
}

func (m *menu) promptAll(labels ...string) ([]string, bool) {
	values := make([]string, 0, len(labels))
	for _, label := range labels {
		value, ok := m.prompt(label)
		if !ok {
			return nil, false
		}
		values = append(values, value)
	}

	return values, true
}

func (m *menu) registerMember() {
	values, ok := m.promptAll("Enter username: ", "Enter member ID: ")
	if !ok {
		return
	}

	if m.app.catalog.RegisterMember(values[0], domain.MemberID(values[1])) {
		m.println("Member registered.")
		return
	}
	m.println("Member ID already exists.")
}

func (m *menu) loginMember() {
	id, ok := m.prompt("Enter member ID: ")
	if !ok {
		return
	}

	if !m.app.catalog.LoginMember(domain.MemberID(id)) {
		m.println("Member not found.")
		return
	}

	member, _ := m.app.catalog.CurrentMember()
	m.println(fmt.Sprintf("Logged in as %s.", catalogview.SanitizeForTerminal(member.Username)))
}

func (m *menu) logoutMember() {
	if _, ok := m.app.catalog.CurrentMember(); !ok {
		m.println("No member logged in.")
		return
	}

	m.app.catalog.LogoutMember()
	m.println("Logged out.")
}

func (m *menu) addBook() {
	values, ok := m.promptAll("Enter book title: ", "Enter book author: ", "Enter book ISBN: ")
	if !ok {
		return
	}

	m.app.catalog.AddBook(values[0], values[1], domain.ISBN(values[2]))
	m.println("Book added.")
}

func (m *menu) borrowBook() {
	isbn, ok := m.prompt("Enter book ISBN: ")
	if !ok {
		return
	}

	if m.app.catalog.BorrowBook(domain.ISBN(isbn)) {
		m.println("Book borrowed.")
		return
	}
	if !m.loggedIn() {
		return
	}
	m.println("Book is not available.")
}

func (m *menu) returnBook() {
	isbn, ok := m.prompt("Enter book ISBN: ")
	if !ok {
		return
	}

	if m.app.catalog.ReturnBook(domain.ISBN(isbn)) {
		m.println("Book returned.")
		return
	}
	if !m.loggedIn() {
		return
	}
	m.println("You have not borrowed a book with that ISBN.")
}

func (m *menu) showBorrowedBooks() error {
	if !m.loggedIn() {
		return nil
	}

	return m.showBooks("Borrowed Books", m.app.catalog.ViewBorrowedBooks())
}

func (m *menu) searchBooks() error {
	keyword, ok := m.prompt("Enter title keyword: ")
	if !ok {
		return nil
	}

	return m.showBooks(fmt.Sprintf("Search results for %q", keyword), m.app.catalog.SearchBooksByTitle(keyword))
}

func (m *menu) showBooks(heading string, books []domain.Book) error {
	return writeView(m.cmd, m.app, catalogview.BookList{Heading: heading, Books: books}, catalogview.RenderOptions{})
}

// loggedIn prints a hint and returns false when no session is active.
func (m *menu) loggedIn() bool {
	if _, ok := m.app.catalog.CurrentMember(); ok {
		return true
	}

	m.println("Please log in first.")
	return false
}

func (m *menu) println(a ...any) {
	_, _ = fmt.Fprintln(m.out, a...)
}

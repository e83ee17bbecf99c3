package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

type BookID string

type ISBN string

func NewBookID() BookID {
	return BookID(uuid.NewString())
}

type Book struct {
	ID         BookID
	Title      string
	Author     string
	ISBN       ISBN
	Borrower   MemberID
	BorrowedAt time.Time
}

func NewBook(title, author string, isbn ISBN) Book {
	return Book{
		ID:     NewBookID(),
		Title:  title,
		Author: author,
		ISBN:   isbn,
	}
}

func (b Book) Available() bool {
	return b.Borrower == ""
}

// TitleContains matches keyword against the title ignoring case. An empty
// keyword matches every title.
func (b Book) TitleContains(keyword string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(b.Title), fold.String(keyword))
}

func (b *Book) Lend(to MemberID, at time.Time) {
	b.Borrower = to
	b.BorrowedAt = at
}

func (b *Book) Release() {
	b.Borrower = ""
	b.BorrowedAt = time.Time{}
}

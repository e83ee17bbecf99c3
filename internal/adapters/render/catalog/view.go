package catalog

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/bnema/libcat/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// ShowStatus marks borrowed books in book lists.
	ShowStatus bool
	// Location converts join dates before printing. Defaults to UTC.
	Location *time.Location
}

// View is one printable section of catalog output.
type View interface {
	render(opts RenderOptions, s styles) string
}

type BookList struct {
	Heading string
	Books   []domain.Book
}

type StatisticsView struct {
	Stats domain.Statistics
}

type MemberList struct {
	Heading string
	Members []domain.Member
}

func (v BookList) render(opts RenderOptions, s styles) string {
	lines := headingLines(v.Heading, len(v.Books), "books", s)

	if len(v.Books) == 0 {
		lines = append(lines, s.empty.Render("No books."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, book := range v.Books {
		lines = append(lines, bookLine(book, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v StatisticsView) render(_ RenderOptions, s styles) string {
	rows := []struct {
		key   string
		value int
	}{
		{key: "Total Books", value: v.Stats.Total},
		{key: "Borrowed Books", value: v.Stats.Borrowed},
		{key: "Available Books", value: v.Stats.Available()},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, s.statKey.Render(row.key+":")+" "+s.statVal.Render(fmt.Sprintf("%d", row.value)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v MemberList) render(opts RenderOptions, s styles) string {
	lines := headingLines(v.Heading, len(v.Members), "members", s)

	if len(v.Members) == 0 {
		lines = append(lines, s.empty.Render("No members."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	for _, member := range v.Members {
		line := fmt.Sprintf("ID: %s, Username: %s, Joined: %s",
			SanitizeForTerminal(string(member.ID)),
			SanitizeForTerminal(member.Username),
			member.JoinedAt.In(loc).Format(time.RFC3339),
		)
		if n := len(member.BorrowedBooks); n > 0 {
			line += fmt.Sprintf(", Borrowed: %d", n)
		}
		lines = append(lines, s.member.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headingLines(heading string, count int, noun string, s styles) []string {
	if heading == "" {
		return nil
	}

	return []string{
		s.title.Render(heading),
		s.header.Render(fmt.Sprintf("%s: %d", noun, count)),
	}
}

func bookLine(book domain.Book, opts RenderOptions, s styles) string {
	line := s.book.Render(fmt.Sprintf("Title: %s, Author: %s, ISBN: %s",
		SanitizeForTerminal(book.Title),
		SanitizeForTerminal(book.Author),
		SanitizeForTerminal(string(book.ISBN)),
	))

	if opts.ShowStatus && !book.Available() {
		line += " " + s.borrowed.Render("[borrowed]")
	}

	return line
}

// SanitizeForTerminal strips control characters from user-entered text.
func SanitizeForTerminal(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
}

package domain

import (
	"slices"
	"time"
)

type MemberID string

type Member struct {
	ID            MemberID
	Username      string
	BorrowedBooks []BookID
	JoinedAt      time.Time
}

func NewMember(id MemberID, username string, joinedAt time.Time) Member {
	return Member{
		ID:            id,
		Username:      username,
		BorrowedBooks: []BookID{},
		JoinedAt:      joinedAt,
	}
}

func (m *Member) Hold(id BookID) {
	m.BorrowedBooks = append(m.BorrowedBooks, id)
}

// Drop removes the first occurrence of id and reports whether it was held.
func (m *Member) Drop(id BookID) bool {
	i := slices.Index(m.BorrowedBooks, id)
	if i < 0 {
		return false
	}
	m.BorrowedBooks = slices.Delete(m.BorrowedBooks, i, i+1)
	return true
}

// Clone returns a copy that does not share the borrowed list.
func (m Member) Clone() Member {
	borrowed := make([]BookID, len(m.BorrowedBooks))
	copy(borrowed, m.BorrowedBooks)
	m.BorrowedBooks = borrowed
	return m
}

package application

import (
	"fmt"

	"github.com/bnema/libcat/internal/domain"
	"github.com/bnema/libcat/internal/ports"
	"go.uber.org/zap"
)

// Catalog holds every member and book of a single library session. It is not
// safe for concurrent use; one caller drives it sequentially.
type Catalog struct {
	clock  ports.Clock
	logger *zap.Logger

	members     map[domain.MemberID]*domain.Member
	memberOrder []domain.MemberID
	books       []*domain.Book
	bookByID    map[domain.BookID]*domain.Book
	session     *domain.Member
}

func NewCatalog(clock ports.Clock, logger *zap.Logger) *Catalog {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Catalog{
		clock:    clock,
		logger:   logger,
		members:  make(map[domain.MemberID]*domain.Member),
		bookByID: make(map[domain.BookID]*domain.Book),
	}
}

func (c *Catalog) RegisterMember(username string, id domain.MemberID) bool {
	if _, ok := c.members[id]; ok {
		c.reject("register member", fmt.Errorf("register %q: %w", id, domain.ErrMemberExists), zap.String("member_id", string(id)))
		return false
	}

	member := domain.NewMember(id, username, c.clock.Now())
	c.members[id] = &member
	c.memberOrder = append(c.memberOrder, id)

	c.logger.Debug("member registered",
		zap.String("member_id", string(id)),
		zap.String("username", username),
		zap.Time("joined_at", member.JoinedAt),
	)
	return true
}

func (c *Catalog) LoginMember(id domain.MemberID) bool {
	member, ok := c.members[id]
	if !ok {
		c.reject("login member", fmt.Errorf("login %q: %w", id, domain.ErrMemberNotFound), zap.String("member_id", string(id)))
		return false
	}

	if c.session != nil && c.session.ID != id {
		c.logger.Debug("session replaced",
			zap.String("previous_member_id", string(c.session.ID)),
			zap.String("member_id", string(id)),
		)
	}
	c.session = member

	c.logger.Debug("member logged in", zap.String("member_id", string(id)))
	return true
}

func (c *Catalog) LogoutMember() {
	if c.session == nil {
		return
	}

	c.logger.Debug("member logged out", zap.String("member_id", string(c.session.ID)))
	c.session = nil
}

func (c *Catalog) AddBook(title, author string, isbn domain.ISBN) {
	book := domain.NewBook(title, author, isbn)
	c.books = append(c.books, &book)
	c.bookByID[book.ID] = &book

	c.logger.Debug("book added",
		zap.String("book_id", string(book.ID)),
		zap.String("title", title),
		zap.String("isbn", string(isbn)),
	)
}

func (c *Catalog) BorrowBook(isbn domain.ISBN) bool {
	if c.session == nil {
		c.reject("borrow book", domain.ErrNoActiveSession, zap.String("isbn", string(isbn)))
		return false
	}

	for _, book := range c.books {
		if book.ISBN != isbn || !book.Available() {
			continue
		}

		book.Lend(c.session.ID, c.clock.Now())
		c.session.Hold(book.ID)

		c.logger.Debug("book borrowed",
			zap.String("book_id", string(book.ID)),
			zap.String("isbn", string(isbn)),
			zap.String("member_id", string(c.session.ID)),
			zap.Time("borrowed_at", book.BorrowedAt),
		)
		return true
	}

	c.reject("borrow book", fmt.Errorf("borrow %q: %w", isbn, domain.ErrBookUnavailable),
		zap.String("isbn", string(isbn)),
		zap.String("member_id", string(c.session.ID)),
	)
	return false
}

func (c *Catalog) ReturnBook(isbn domain.ISBN) bool {
	if c.session == nil {
		c.reject("return book", domain.ErrNoActiveSession, zap.String("isbn", string(isbn)))
		return false
	}

	for _, id := range c.session.BorrowedBooks {
		book := c.bookByID[id]
		if book == nil || book.ISBN != isbn {
			continue
		}

		book.Release()
		c.session.Drop(id)

		c.logger.Debug("book returned",
			zap.String("book_id", string(id)),
			zap.String("isbn", string(isbn)),
			zap.String("member_id", string(c.session.ID)),
		)
		return true
	}

	c.reject("return book", fmt.Errorf("return %q: %w", isbn, domain.ErrBookNotHeld),
		zap.String("isbn", string(isbn)),
		zap.String("member_id", string(c.session.ID)),
	)
	return false
}

func (c *Catalog) ViewAvailableBooks() []domain.Book {
	return c.filterBooks(func(book *domain.Book) bool {
		return book.Available()
	})
}

func (c *Catalog) ViewBorrowedBooks() []domain.Book {
	if c.session == nil {
		return []domain.Book{}
	}

	books := make([]domain.Book, 0, len(c.session.BorrowedBooks))
	for _, id := range c.session.BorrowedBooks {
		if book := c.bookByID[id]; book != nil {
			books = append(books, *book)
		}
	}

	return books
}

func (c *Catalog) SearchBooksByTitle(keyword string) []domain.Book {
	return c.filterBooks(func(book *domain.Book) bool {
		return book.TitleContains(keyword)
	})
}

func (c *Catalog) ViewStatistics() domain.Statistics {
	stats := domain.Statistics{Total: len(c.books)}
	for _, book := range c.books {
		if !book.Available() {
			stats.Borrowed++
		}
	}

	return stats
}

// ViewAllMembers returns every member in registration order.
func (c *Catalog) ViewAllMembers() []domain.Member {
	members := make([]domain.Member, 0, len(c.memberOrder))
	for _, id := range c.memberOrder {
		members = append(members, c.members[id].Clone())
	}

	return members
}

func (c *Catalog) CurrentMember() (domain.Member, bool) {
	if c.session == nil {
		return domain.Member{}, false
	}

	return c.session.Clone(), true
}

func (c *Catalog) Member(id domain.MemberID) (domain.Member, bool) {
	member, ok := c.members[id]
	if !ok {
		return domain.Member{}, false
	}

	return member.Clone(), true
}

func (c *Catalog) filterBooks(keep func(*domain.Book) bool) []domain.Book {
	books := make([]domain.Book, 0, len(c.books))
	for _, book := range c.books {
		if keep(book) {
			books = append(books, *book)
		}
	}

	return books
}

func (c *Catalog) reject(op string, err error, fields ...zap.Field) {
	c.logger.Info(op+" rejected", append(fields, zap.Error(err))...)
}

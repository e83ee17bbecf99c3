package toml

import (
	"fmt"
	"strings"

	"github.com/bnema/libcat/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Members []memberSchema `toml:"members"`
	Books   []bookSchema   `toml:"books"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported catalog schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type memberSchema struct {
	ID       string `toml:"id"`
	Username string `toml:"username"`
}

type bookSchema struct {
	Title  string `toml:"title"`
	Author string `toml:"author"`
	ISBN   string `toml:"isbn"`
}

func (s fileSchema) validate() error {
	for i, member := range s.Members {
		if strings.TrimSpace(member.ID) == "" {
			return fmt.Errorf("members[%d]: id is required", i)
		}
	}

	return nil
}

func fromSchema(file fileSchema) domain.CatalogSeed {
	seed := domain.CatalogSeed{
		Members: make([]domain.SeedMember, 0, len(file.Members)),
		Books:   make([]domain.SeedBook, 0, len(file.Books)),
	}

	for _, member := range file.Members {
		seed.Members = append(seed.Members, domain.SeedMember{
			ID:       domain.MemberID(member.ID),
			Username: member.Username,
		})
	}

	for _, book := range file.Books {
		seed.Books = append(seed.Books, domain.SeedBook{
			Title:  book.Title,
			Author: book.Author,
			ISBN:   domain.ISBN(book.ISBN),
		})
	}

	return seed
}

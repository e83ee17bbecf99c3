package application

import (
	"context"
	"fmt"

	"github.com/bnema/libcat/internal/domain"
	"github.com/bnema/libcat/internal/ports"
	"go.uber.org/zap"
)

type ImportReport struct {
	MembersAdded   int
	MembersSkipped int
	BooksAdded     int
}

// Import registers the seed members and then adds the seed books in order.
// Members whose ID is already registered are skipped.
func (c *Catalog) Import(seed domain.CatalogSeed) ImportReport {
	var report ImportReport

	for _, member := range seed.Members {
		if c.RegisterMember(member.Username, member.ID) {
			report.MembersAdded++
			continue
		}
		report.MembersSkipped++
	}

	for _, book := range seed.Books {
		c.AddBook(book.Title, book.Author, book.ISBN)
		report.BooksAdded++
	}

	c.logger.Info("catalog seeded",
		zap.Int("members_added", report.MembersAdded),
		zap.Int("members_skipped", report.MembersSkipped),
		zap.Int("books_added", report.BooksAdded),
	)

	return report
}

func (c *Catalog) ImportFrom(ctx context.Context, source ports.CatalogSeedSource) (ImportReport, error) {
	seed, err := source.Load(ctx)
	if err != nil {
		return ImportReport{}, fmt.Errorf("load catalog seed: %w", err)
	}

	if seed.Empty() {
		return ImportReport{}, nil
	}

	return c.Import(seed), nil
}

package ports

import (
	"context"

	"github.com/bnema/libcat/internal/domain"
)

type CatalogSeedSource interface {
	Load(ctx context.Context) (domain.CatalogSeed, error)
}

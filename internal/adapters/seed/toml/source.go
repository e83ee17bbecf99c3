package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/libcat/internal/domain"
	"github.com/bnema/libcat/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

// Source reads a catalog seed file. The file is never written back.
type Source struct {
	seedPath string
}

var _ ports.CatalogSeedSource = (*Source)(nil)

// NewSource resolves seedPath against the working directory.
func NewSource(seedPath string) (*Source, error) {
	if seedPath == "" {
		return nil, errors.New("catalog seed path is empty")
	}

	seedPath, err := normalizeSeedPath(seedPath)
	if err != nil {
		return nil, err
	}

	return &Source{seedPath: seedPath}, nil
}

func (s *Source) Path() string {
	return s.seedPath
}

func (s *Source) Load(ctx context.Context) (domain.CatalogSeed, error) {
	if err := ctx.Err(); err != nil {
		return domain.CatalogSeed{}, err
	}

	file, err := s.readSchema()
	if err != nil {
		return domain.CatalogSeed{}, err
	}

	return fromSchema(file), nil
}

func (s *Source) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.seedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read catalog file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode catalog file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	if err := file.validate(); err != nil {
		return fileSchema{}, fmt.Errorf("validate catalog file: %w", err)
	}
	file.applyDefaults()

	return file, nil
}

func normalizeSeedPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve catalog seed path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

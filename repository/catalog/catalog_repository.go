package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// CatalogRepository reads the category and country documents from disk.
// Files are read on every call so edits are visible without a restart.
type CatalogRepository interface {
	Categories(ctx context.Context) (json.RawMessage, error)
	Countries(ctx context.Context) (json.RawMessage, error)
}

type File struct {
	categoriesPath string
	countriesPath  string
}

func NewCatalogRepository(categoriesPath, countriesPath string) CatalogRepository {
	return &File{categoriesPath: categoriesPath, countriesPath: countriesPath}
}

func (f *File) Categories(ctx context.Context) (json.RawMessage, error) {
	return readDocument(ctx, f.categoriesPath)
}

func (f *File) Countries(ctx context.Context) (json.RawMessage, error) {
	return readDocument(ctx, f.countriesPath)
}

func readDocument(ctx context.Context, path string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("%s: malformed JSON", path)
	}
	return json.RawMessage(b), nil
}

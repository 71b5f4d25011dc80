// Package catalog discovers room template records from storage. It is the
// collaborator that feeds the specification database; any mechanism able
// to produce a flat record sequence can stand in for the file scanner.
package catalog

//go:generate mockgen -destination=mock/mock_scanner.go -package=mockcatalog -source=scanner.go

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dungeonworks/roomforge/internal/domain/rooms"
	apperrors "github.com/dungeonworks/roomforge/internal/errors"
)

// Scanner discovers template records under an opaque catalog path
type Scanner interface {
	// Scan returns every template record discovered under the given path
	Scan(ctx context.Context, path string) ([]rooms.TemplateRecord, error)
}

// templateMetadata is the authored sidecar document describing one template
type templateMetadata struct {
	Theme   string `json:"theme"`
	Width   int    `json:"width"`
	Length  int    `json:"length"`
	Locator string `json:"locator"`
}

// FileScanner reads template metadata from a directory of JSON documents,
// one per authored template
type FileScanner struct {
	// MaxParallel bounds concurrent file reads; defaults to 8
	MaxParallel int
}

// NewFileScanner creates a file scanner with default parallelism
func NewFileScanner() *FileScanner {
	return &FileScanner{MaxParallel: 8}
}

// Scan reads every .json document under path and returns the records in
// directory listing order, so the database sees a stable discovery order.
func (s *FileScanner) Scan(ctx context.Context, path string) ([]rooms.TemplateRecord, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to read catalog directory %s", path)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}

	// Indexed assignment keeps discovery order stable under concurrency
	records := make([]rooms.TemplateRecord, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallel())
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			record, err := readTemplateMetadata(ctx, file)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

func (s *FileScanner) maxParallel() int {
	if s.MaxParallel > 0 {
		return s.MaxParallel
	}
	return 8
}

func readTemplateMetadata(ctx context.Context, file string) (rooms.TemplateRecord, error) {
	if err := ctx.Err(); err != nil {
		return rooms.TemplateRecord{}, err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return rooms.TemplateRecord{}, apperrors.Wrapf(err, "failed to read template metadata %s", file)
	}

	var meta templateMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return rooms.TemplateRecord{}, apperrors.WrapWithCode(err, apperrors.CodeInvalidArgument,
			"invalid template metadata in "+file)
	}

	locator := meta.Locator
	if locator == "" {
		locator = file
	}

	return rooms.TemplateRecord{
		Spec: rooms.Specification{
			Theme:  rooms.Theme(meta.Theme),
			Width:  meta.Width,
			Length: meta.Length,
		},
		Locator: locator,
	}, nil
}

// Package storage persists the record books as a single JSON document on
// disk and re-validates every field on the way back in, so that a loaded
// record obeys exactly the same constraints as one typed in live.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/c360studio/carelog/model"
)

// recordDocument is the top-level on-disk shape: one list of active persons
// and one of archived persons.
type recordDocument struct {
	Persons  []adaptedPerson `json:"persons"`
	Archived []adaptedPerson `json:"archived"`
}

// FileStorage reads and writes the record file.
type FileStorage struct {
	path   string
	logger *slog.Logger
}

// NewFileStorage creates storage rooted at path. A nil logger falls back to
// slog.Default().
func NewFileStorage(path string, logger *slog.Logger) *FileStorage {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStorage{path: path, logger: logger}
}

// Path returns the record file location.
func (s *FileStorage) Path() string {
	return s.path
}

// Load reads both books from disk. A missing file yields empty books. The
// per-record decode is all-or-nothing and a single bad record aborts the
// whole load; the caller decides what to do with the error.
func (s *FileStorage) Load() (active, archived *model.RecordBook, err error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("record file not found, starting empty", slog.String("path", s.path))
		return model.NewRecordBook(), model.NewRecordBook(), nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read record file: %w", err)
	}

	var doc recordDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse record file: %w", err)
	}

	active, err = decodeBook(doc.Persons, "persons")
	if err != nil {
		return nil, nil, err
	}
	archived, err = decodeBook(doc.Archived, "archived")
	if err != nil {
		return nil, nil, err
	}
	s.logger.Debug("loaded record file",
		slog.String("path", s.path),
		slog.Int("active", active.Len()),
		slog.Int("archived", archived.Len()))
	return active, archived, nil
}

// Save writes both books to disk, creating the parent directory if needed.
// The document is written to a temporary file and renamed into place so a
// failed write never truncates the existing file.
func (s *FileStorage) Save(active, archived *model.RecordBook) error {
	doc := recordDocument{
		Persons:  adaptBook(active),
		Archived: adaptBook(archived),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create record directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write record file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace record file: %w", err)
	}
	return nil
}

func adaptBook(b *model.RecordBook) []adaptedPerson {
	persons := b.Persons()
	docs := make([]adaptedPerson, 0, len(persons))
	for _, p := range persons {
		docs = append(docs, adaptPerson(p))
	}
	return docs
}

func decodeBook(docs []adaptedPerson, list string) (*model.RecordBook, error) {
	book := model.NewRecordBook()
	for i, doc := range docs {
		p, err := doc.toPerson()
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", list, i, err)
		}
		if err := book.Add(p); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", list, i, err)
		}
	}
	return book, nil
}

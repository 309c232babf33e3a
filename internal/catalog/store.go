package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// json is the catalog file codec.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// storedRecord mirrors Record with pointer fields so Load can tell a missing
// required field from a zero value.
type storedRecord struct {
	ID     *int    `json:"id"`
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Year   *int    `json:"year"`
	Status string  `json:"status"`
}

// searchFields maps the queryable field names to accessors over a book's
// textual representation. Lookups outside this table match nothing.
var searchFields = map[string]func(Book) string{
	"title":  func(b Book) string { return b.Title },
	"author": func(b Book) string { return b.Author },
	"year":   func(b Book) string { return strconv.Itoa(b.Year) },
}

// SearchableFields lists the field names Search accepts, in display order.
func SearchableFields() []string {
	return []string{"title", "author", "year"}
}

// Store owns the ordered book collection and its backing file. It is not
// safe for concurrent use; the catalog model assumes a single caller and a
// single process touching the file.
type Store struct {
	path  string
	books []Book
}

// NewStore creates a store over the given catalog file. The store starts
// empty; call Load to read the file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing catalog file path.
func (s *Store) Path() string { return s.path }

// Len returns the number of records currently held.
func (s *Store) Len() int { return len(s.books) }

// Load reads the whole catalog file and replaces the in-memory collection.
// The file must exist: a missing or unreadable file is ErrStorageUnavailable,
// content that does not parse into valid records is ErrCorruptData.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, s.path, err)
	}

	var records []storedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrCorruptData, s.path, err)
	}

	books := make([]Book, 0, len(records))
	seen := make(map[int]bool, len(records))
	for i, r := range records {
		if r.ID == nil || r.Title == nil || r.Author == nil || r.Year == nil {
			return fmt.Errorf("%w: record %d is missing a required field", ErrCorruptData, i)
		}

		book, err := BookFromRecord(Record{
			ID:     *r.ID,
			Title:  *r.Title,
			Author: *r.Author,
			Year:   *r.Year,
			Status: r.Status,
		})
		if err != nil {
			return fmt.Errorf("%w: record %d: %v", ErrCorruptData, i, err)
		}
		if seen[book.ID] {
			return fmt.Errorf("%w: duplicate id %d", ErrCorruptData, book.ID)
		}
		seen[book.ID] = true
		books = append(books, book)
	}

	s.books = books
	return nil
}

// Save writes the full collection back to the catalog file in stored order.
// The write goes through a temp file in the same directory plus a rename, so
// the file holds either the previous or the new complete state, never a
// partial write.
func (s *Store) Save() error {
	records := make([]Record, len(s.books))
	for i, b := range s.books {
		records[i] = b.ToRecord()
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode catalog: %v", ErrStorageUnavailable, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".library-*.json")
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, s.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, s.path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %v", ErrStorageUnavailable, s.path, err)
	}

	return nil
}

// Add validates the fields, assigns the next ID (max existing + 1), appends
// the book with the Available status, and persists. The assigned ID is
// returned. The append is rolled back if persisting fails.
func (s *Store) Add(title, author string, year int) (int, error) {
	if strings.TrimSpace(title) == "" {
		return 0, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(author) == "" {
		return 0, fmt.Errorf("%w: author must not be empty", ErrInvalidInput)
	}
	if year < 0 {
		return 0, fmt.Errorf("%w: year must not be negative", ErrInvalidInput)
	}

	id := s.maxID() + 1
	s.books = append(s.books, NewBook(id, title, author, year))
	if err := s.Save(); err != nil {
		s.books = s.books[:len(s.books)-1]
		return 0, err
	}

	return id, nil
}

// Remove deletes the record with the given ID and persists. A missing ID is
// ErrNotFound and leaves both the collection and the file untouched. The
// removal is rolled back if persisting fails.
func (s *Store) Remove(id int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	removed := s.books[idx]
	s.books = append(s.books[:idx], s.books[idx+1:]...)
	if err := s.Save(); err != nil {
		tail := append([]Book{removed}, s.books[idx:]...)
		s.books = append(s.books[:idx], tail...)
		return err
	}

	return nil
}

// UpdateStatus sets the status of the record with the given ID and persists.
// The status must be one of the two defined values; anything else is
// ErrInvalidInput and nothing changes. The previous status is restored if
// persisting fails.
func (s *Store) UpdateStatus(id int, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: status %q is not %q or %q",
			ErrInvalidInput, string(status), StatusAvailable, StatusCheckedOut)
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	prev := s.books[idx].Status
	s.books[idx].Status = status
	if err := s.Save(); err != nil {
		s.books[idx].Status = prev
		return err
	}

	return nil
}

// Search returns the records whose named field contains query, compared
// case-insensitively against the field's textual representation. The field
// must be one of title, author or year; any other name matches nothing and
// yields an empty result rather than an error.
func (s *Store) Search(query, field string) []Book {
	accessor, ok := searchFields[field]
	if !ok {
		return nil
	}

	needle := strings.ToLower(query)
	var matches []Book
	for _, b := range s.books {
		if strings.Contains(strings.ToLower(accessor(b)), needle) {
			matches = append(matches, b)
		}
	}

	return matches
}

// ListAll returns a copy of the full collection in stored order. An empty
// catalog yields an empty slice.
func (s *Store) ListAll() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

func (s *Store) maxID() int {
	highest := 0
	for _, b := range s.books {
		if b.ID > highest {
			highest = b.ID
		}
	}
	return highest
}

func (s *Store) indexOf(id int) int {
	for i, b := range s.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Package catalog implements the bookNERD record model and catalog store.
// A catalog is an ordered collection of books persisted as a single
// human-readable JSON file; every mutating operation writes the full
// collection back to disk before reporting success.
package catalog

import "fmt"

// Status enumerates the lending state of a book. Exactly two values exist;
// no other value may be held in memory or persisted.
type Status string

const (
	// StatusAvailable marks a book that is on the shelf.
	StatusAvailable Status = "Available"

	// StatusCheckedOut marks a book that is currently lent out.
	StatusCheckedOut Status = "CheckedOut"
)

// Valid reports whether s is one of the two defined status values.
func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusCheckedOut
}

// String returns the stable label used in the persisted file.
func (s Status) String() string { return string(s) }

// ParseStatus converts a status label to a Status.
func ParseStatus(label string) (Status, error) {
	switch Status(label) {
	case StatusAvailable:
		return StatusAvailable, nil
	case StatusCheckedOut:
		return StatusCheckedOut, nil
	default:
		return "", fmt.Errorf("unknown status %q", label)
	}
}

// Book is one catalog entry. IDs are assigned by the store and unique within
// a catalog; Status is the only field that changes after creation.
type Book struct {
	ID     int
	Title  string
	Author string
	Year   int
	Status Status
}

// NewBook builds a Book with the default Available status. No validation
// happens here; callers validate before construction.
func NewBook(id int, title, author string, year int) Book {
	return Book{
		ID:     id,
		Title:  title,
		Author: author,
		Year:   year,
		Status: StatusAvailable,
	}
}

// Record is the plain serializable form of a Book as stored in the catalog
// file: one JSON object per book with stable field names.
type Record struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Status string `json:"status"`
}

// ToRecord converts the book to its persisted representation.
func (b Book) ToRecord() Record {
	return Record{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Year:   b.Year,
		Status: string(b.Status),
	}
}

// BookFromRecord rebuilds a Book from its persisted representation. A record
// that omits status defaults to Available; an unrecognized label is rejected.
func BookFromRecord(r Record) (Book, error) {
	status := StatusAvailable
	if r.Status != "" {
		parsed, err := ParseStatus(r.Status)
		if err != nil {
			return Book{}, err
		}
		status = parsed
	}

	return Book{
		ID:     r.ID,
		Title:  r.Title,
		Author: r.Author,
		Year:   r.Year,
		Status: status,
	}, nil
}

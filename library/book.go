package library

import (
	"fmt"
	"strings"
	"time"
)

// Book is a catalog entry. The ISBN identifies it; availability and
// reservation state are owned by the loan workflow.
type Book struct {
	isbn          string
	title         string
	author        string
	publishedYear int

	available  bool
	reserved   bool
	reservedBy *Member
}

// NewBook validates the fields and returns an available, unreserved book.
// The published year must lie between 0 and the current calendar year.
func NewBook(isbn, title, author string, publishedYear int) (*Book, error) {
	if strings.TrimSpace(isbn) == "" {
		return nil, validationErrorf("isbn cannot be empty")
	}
	if strings.TrimSpace(title) == "" {
		return nil, validationErrorf("title cannot be empty")
	}
	if strings.TrimSpace(author) == "" {
		return nil, validationErrorf("author cannot be empty")
	}
	if publishedYear < 0 || publishedYear > time.Now().Year() {
		return nil, validationErrorf("invalid published year: %d", publishedYear)
	}
	return &Book{
		isbn:          isbn,
		title:         title,
		author:        author,
		publishedYear: publishedYear,
		available:     true,
	}, nil
}

func (b *Book) ISBN() string       { return b.isbn }
func (b *Book) Title() string      { return b.title }
func (b *Book) Author() string     { return b.author }
func (b *Book) PublishedYear() int { return b.publishedYear }
func (b *Book) IsAvailable() bool  { return b.available }
func (b *Book) IsReserved() bool   { return b.reserved }

// ReservedBy returns the member holding the reservation, or nil when
// the book is not reserved.
func (b *Book) ReservedBy() *Member { return b.reservedBy }

// MarkBorrowed flags the book as checked out.
func (b *Book) MarkBorrowed() error {
	if !b.available {
		return stateErrorf("book %q is already checked out", b.isbn)
	}
	b.available = false
	return nil
}

// MarkReturned flags the book as available again. Marking an already
// available book returned is a no-op.
func (b *Book) MarkReturned() {
	b.available = true
}

// MarkReserved places a hold on the book for member. A book holds at
// most one reservation, regardless of availability.
func (b *Book) MarkReserved(member *Member) error {
	if member == nil {
		return validationErrorf("member cannot be nil")
	}
	if b.reserved {
		return stateErrorf("book %q is already reserved", b.isbn)
	}
	b.reserved = true
	b.reservedBy = member
	return nil
}

// ClearReservation drops any hold on the book. Safe to call when none
// exists.
func (b *Book) ClearReservation() {
	b.reserved = false
	b.reservedBy = nil
}

// Matches reports whether term is a case-insensitive substring of the
// title, author or ISBN. A blank term matches nothing.
func (b *Book) Matches(term string) bool {
	if strings.TrimSpace(term) == "" {
		return false
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(b.title), term) ||
		strings.Contains(strings.ToLower(b.author), term) ||
		strings.Contains(strings.ToLower(b.isbn), term)
}

// Info formats a one-line summary for listings.
func (b *Book) Info() string {
	return fmt.Sprintf("%q by %s (%d) [ISBN %s] - %s",
		b.title, b.author, b.publishedYear, b.isbn, b.Status())
}

// Status renders the availability/reservation pair as one word for
// listings: Available, Reserved, Borrowed or Borrowed (Reserved).
func (b *Book) Status() string {
	switch {
	case b.available && b.reserved:
		return "Reserved"
	case !b.available && b.reserved:
		return "Borrowed (Reserved)"
	case !b.available:
		return "Borrowed"
	default:
		return "Available"
	}
}

package library

import (
	"cmp"
	"iter"
	"slices"
	"strings"
)

// Catalog is the ordered in-memory collection of books.
type Catalog struct {
	books []*Book
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog { return &Catalog{} }

// Add appends a book to the catalog. ISBN uniqueness is not enforced
// here; callers that need it can check FindByISBN first.
func (c *Catalog) Add(book *Book) error {
	if book == nil {
		return validationErrorf("book cannot be nil")
	}
	c.books = append(c.books, book)
	return nil
}

// Remove deletes the first book with the given ISBN and reports
// whether one was found.
func (c *Catalog) Remove(isbn string) (bool, error) {
	if strings.TrimSpace(isbn) == "" {
		return false, validationErrorf("isbn cannot be empty")
	}
	for i, b := range c.books {
		if b.isbn == isbn {
			c.books = slices.Delete(c.books, i, i+1)
			return true, nil
		}
	}
	return false, nil
}

// FindByISBN returns the first book with the given ISBN, or nil.
func (c *Catalog) FindByISBN(isbn string) *Book {
	for _, b := range c.books {
		if b.isbn == isbn {
			return b
		}
	}
	return nil
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int { return len(c.books) }

// All returns the books in insertion order.
func (c *Catalog) All() []*Book { return slices.Clone(c.books) }

// Search yields the books matching term, preserving catalog order.
// The sequence is lazy and can be ranged over more than once.
func (c *Catalog) Search(term string) iter.Seq[*Book] {
	return func(yield func(*Book) bool) {
		for _, b := range c.books {
			if b.Matches(term) && !yield(b) {
				return
			}
		}
	}
}

// SortedByTitle returns the books ordered ascending by title. The sort
// is stable, so ties keep their insertion order.
func (c *Catalog) SortedByTitle() []*Book {
	sorted := slices.Clone(c.books)
	slices.SortStableFunc(sorted, func(a, b *Book) int {
		return strings.Compare(a.title, b.title)
	})
	return sorted
}

// SortedByYear returns the books ordered ascending by published year.
func (c *Catalog) SortedByYear() []*Book {
	sorted := slices.Clone(c.books)
	slices.SortStableFunc(sorted, func(a, b *Book) int {
		return cmp.Compare(a.publishedYear, b.publishedYear)
	})
	return sorted
}

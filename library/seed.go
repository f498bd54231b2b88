package library

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// SeedBook is one catalog entry in a seed document.
type SeedBook struct {
	ISBN          string `json:"isbn"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedYear int    `json:"published_year"`
}

// SeedMember is one registry entry in a seed document.
type SeedMember struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// SeedDoc is the JSON document the shell can load at startup to
// populate the catalog and registry for a session.
type SeedDoc struct {
	Books   []SeedBook   `json:"books"`
	Members []SeedMember `json:"members"`
}

// LoadSeed decodes a seed document from r and adds its entries through
// the regular constructors, so an invalid row fails with the usual
// error kinds. It reports how many books and members were added before
// any failure.
func LoadSeed(r io.Reader, lib *Library) (int, int, error) {
	if lib == nil {
		return 0, 0, validationErrorf("library cannot be nil")
	}

	var doc SeedDoc
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(r).Decode(&doc); err != nil {
		return 0, 0, fmt.Errorf("decode seed: %w", err)
	}

	var books, members int
	for _, sb := range doc.Books {
		book, err := NewBook(sb.ISBN, sb.Title, sb.Author, sb.PublishedYear)
		if err != nil {
			return books, members, fmt.Errorf("seed book %q: %w", sb.ISBN, err)
		}
		if err := lib.Catalog().Add(book); err != nil {
			return books, members, err
		}
		books++
	}
	for _, sm := range doc.Members {
		member, err := NewMember(sm.MemberID, sm.Name, sm.Email)
		if err != nil {
			return books, members, fmt.Errorf("seed member %q: %w", sm.MemberID, err)
		}
		if err := lib.Registry().Add(member); err != nil {
			return books, members, err
		}
		members++
	}
	return books, members, nil
}

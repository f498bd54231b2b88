// Command seed_books writes a sample seed file for the shell's --seed
// flag: a small catalog of well-known books plus a few members with
// generated IDs.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"library-system/library"
)

const outFile = "seed_books.json"

func main() {
	doc := library.SeedDoc{
		Books: []library.SeedBook{
			{ISBN: "978-0451524935", Title: "1984", Author: "George Orwell", PublishedYear: 1949},
			{ISBN: "978-0452284241", Title: "Animal Farm", Author: "George Orwell", PublishedYear: 1945},
			{ISBN: "978-0547928210", Title: "The Fellowship of the Ring", Author: "J.R.R. Tolkien", PublishedYear: 1954},
			{ISBN: "978-0547928203", Title: "The Two Towers", Author: "J.R.R. Tolkien", PublishedYear: 1954},
			{ISBN: "978-0547928197", Title: "The Return of the King", Author: "J.R.R. Tolkien", PublishedYear: 1955},
			{ISBN: "978-1590302255", Title: "The Art of War", Author: "Sun Tzu", PublishedYear: 0},
			{ISBN: "978-0743477116", Title: "Romeo and Juliet", Author: "William Shakespeare", PublishedYear: 1597},
			{ISBN: "978-0553213379", Title: "The Three Musketeers", Author: "Alexandre Dumas", PublishedYear: 1844},
			{ISBN: "978-0553296983", Title: "The Diary of a Young Girl", Author: "Anne Frank", PublishedYear: 1947},
		},
		Members: []library.SeedMember{
			{MemberID: uuid.NewString(), Name: "Alice Archer", Email: "alice@example.com"},
			{MemberID: uuid.NewString(), Name: "Bob Bennett", Email: "bob@example.com"},
			{MemberID: uuid.NewString(), Name: "Charlie Cole", Email: "charlie@example.com"},
		},
	}

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding seed data: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outFile, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outFile, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d book(s) and %d member(s) to %s\n", len(doc.Books), len(doc.Members), outFile)
	fmt.Println("Run the shell with: library-system --seed " + outFile)
}

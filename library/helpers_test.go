package library

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testBook(t *testing.T, isbn string) *Book {
	t.Helper()
	book, err := NewBook(isbn, "Test Book "+isbn, "Test Author", 2000)
	require.NoError(t, err)
	return book
}

func testMember(t *testing.T, id string) *Member {
	t.Helper()
	member, err := NewMember(id, "Member "+id, id+"@example.com")
	require.NoError(t, err)
	return member
}

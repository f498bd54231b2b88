package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := NewLibrary(NewCatalog(), NewRegistry(), NewLoanManager())
	require.NoError(t, err)
	return lib
}

func TestNewLibraryValidation(t *testing.T) {
	catalog := NewCatalog()
	registry := NewRegistry()
	manager := NewLoanManager()

	for _, tc := range []struct {
		name string
		c    *Catalog
		r    *Registry
		m    *LoanManager
	}{
		{name: "nil_catalog", r: registry, m: manager},
		{name: "nil_registry", c: catalog, m: manager},
		{name: "nil_manager", c: catalog, r: registry},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLibrary(tc.c, tc.r, tc.m)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}

	lib, err := NewLibrary(catalog, registry, manager)
	require.NoError(t, err)
	assert.Same(t, catalog, lib.Catalog())
	assert.Same(t, registry, lib.Registry())
	assert.Same(t, manager, lib.LoanManager())
}

func TestLibrarySearchAndTotals(t *testing.T) {
	lib := newTestLibrary(t)
	dune, err := NewBook("978-1", "Dune", "Frank Herbert", 1965)
	require.NoError(t, err)
	hobbit, err := NewBook("978-2", "The Hobbit", "J.R.R. Tolkien", 1937)
	require.NoError(t, err)
	require.NoError(t, lib.Catalog().Add(dune))
	require.NoError(t, lib.Catalog().Add(hobbit))

	assert.Equal(t, 2, lib.TotalBooks())

	var got []*Book
	for b := range lib.SearchBooks("hobbit") {
		got = append(got, b)
	}
	assert.Equal(t, []*Book{hobbit}, got)
}

func TestBorrowedBooksCount(t *testing.T) {
	lib := newTestLibrary(t)
	manager := lib.LoanManager()
	alice := testMember(t, "alice")
	first := testBook(t, "978-1")
	second := testBook(t, "978-2")
	now := time.Now()
	due := now.AddDate(0, 0, 14)

	assert.Equal(t, 0, lib.BorrowedBooksCount())

	loan1, err := manager.CreateLoan(first, alice, now, due)
	require.NoError(t, err)
	_, err = manager.CreateLoan(second, alice, now, due)
	require.NoError(t, err)
	assert.Equal(t, 2, lib.BorrowedBooksCount())

	_, err = manager.ReturnBook(loan1, now, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, lib.BorrowedBooksCount())
}

func TestMostActiveBorrower(t *testing.T) {
	lib := newTestLibrary(t)
	manager := lib.LoanManager()
	alice := testMember(t, "alice")
	bob := testMember(t, "bob")
	now := time.Now()
	due := now.AddDate(0, 0, 14)

	assert.Nil(t, lib.MostActiveBorrower())

	aliceLoan1, err := manager.CreateLoan(testBook(t, "978-1"), alice, now, due)
	require.NoError(t, err)
	aliceLoan2, err := manager.CreateLoan(testBook(t, "978-2"), alice, now, due)
	require.NoError(t, err)
	bobLoan, err := manager.CreateLoan(testBook(t, "978-3"), bob, now, due)
	require.NoError(t, err)

	assert.Same(t, alice, lib.MostActiveBorrower())

	// A tie keeps the member encountered first in the history.
	_, err = manager.ReturnBook(aliceLoan1, now, 0)
	require.NoError(t, err)
	assert.Same(t, alice, lib.MostActiveBorrower())

	// Once Alice has nothing out, Bob leads.
	_, err = manager.ReturnBook(aliceLoan2, now, 0)
	require.NoError(t, err)
	assert.Same(t, bob, lib.MostActiveBorrower())

	_, err = manager.ReturnBook(bobLoan, now, 0)
	require.NoError(t, err)
	assert.Nil(t, lib.MostActiveBorrower())
}

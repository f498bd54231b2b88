package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLoanValidation(t *testing.T) {
	manager := NewLoanManager()
	book := testBook(t, "978-1")
	member := testMember(t, "m1")
	now := time.Now()
	due := now.AddDate(0, 0, 14)

	_, err := manager.CreateLoan(nil, member, now, due)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = manager.CreateLoan(book, nil, now, due)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// Due date must lie strictly in the future.
	_, err = manager.CreateLoan(book, member, now.AddDate(0, 0, -20), now.Add(-time.Hour))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// Nothing was mutated by the failures.
	assert.True(t, book.IsAvailable())
	assert.Empty(t, member.Loans())
	assert.Empty(t, manager.Loans())
}

func TestCreateLoanSideEffects(t *testing.T) {
	manager := NewLoanManager()
	book := testBook(t, "978-1")
	member := testMember(t, "m1")
	now := time.Now()

	loan, err := manager.CreateLoan(book, member, now, now.AddDate(0, 0, 14))
	require.NoError(t, err)

	assert.False(t, book.IsAvailable())
	require.Len(t, member.Loans(), 1)
	assert.Same(t, loan, member.Loans()[0])
	require.Len(t, manager.Loans(), 1)
	assert.Same(t, loan, manager.Loans()[0])

	// The book is out; a second checkout fails and adds nothing.
	_, err = manager.CreateLoan(book, testMember(t, "m2"), now, now.AddDate(0, 0, 14))
	require.Error(t, err)
	assert.True(t, IsStateError(err))
	assert.Len(t, manager.Loans(), 1)
}

func TestReservationBlocksOtherMembers(t *testing.T) {
	manager := NewLoanManager()
	book := testBook(t, "978-1")
	alice := testMember(t, "alice")
	bob := testMember(t, "bob")
	now := time.Now()
	due := now.AddDate(0, 0, 14)

	require.NoError(t, manager.ReserveBook(book, alice))

	// Bob cannot take a book held for Alice.
	_, err := manager.CreateLoan(book, bob, now, due)
	require.Error(t, err)
	assert.True(t, IsStateError(err))
	assert.True(t, book.IsAvailable())
	assert.True(t, book.IsReserved())

	// Alice's own checkout consumes the reservation.
	loan, err := manager.CreateLoan(book, alice, now, due)
	require.NoError(t, err)
	assert.False(t, book.IsAvailable())
	assert.False(t, book.IsReserved())
	assert.Nil(t, book.ReservedBy())
	assert.Same(t, alice, loan.Member())
}

func TestReserveBookValidation(t *testing.T) {
	manager := NewLoanManager()
	book := testBook(t, "978-1")
	member := testMember(t, "m1")

	err := manager.ReserveBook(nil, member)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	err = manager.ReserveBook(book, nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	require.NoError(t, manager.ReserveBook(book, member))

	// Double reservation surfaces the book's state error.
	err = manager.ReserveBook(book, testMember(t, "m2"))
	require.Error(t, err)
	assert.True(t, IsStateError(err))
}

func TestReturnBook(t *testing.T) {
	manager := NewLoanManager()
	book := testBook(t, "978-1")
	member := testMember(t, "m1")
	now := time.Now()

	loan, err := manager.CreateLoan(book, member, now, now.AddDate(0, 0, 14))
	require.NoError(t, err)

	_, err = manager.ReturnBook(nil, now, 10)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// A loan the manager never created cannot be returned through it.
	foreign, err := NewLoan(testBook(t, "978-2"), member, now, now.AddDate(0, 0, 14))
	require.NoError(t, err)
	_, err = manager.ReturnBook(foreign, now, 10)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// A negative rate is rejected before any mutation.
	_, err = manager.ReturnBook(loan, now, -1)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.False(t, loan.IsReturned())
	assert.False(t, book.IsAvailable())

	fee, err := manager.ReturnBook(loan, now, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, fee)
	assert.True(t, loan.IsReturned())
	assert.True(t, book.IsAvailable())

	_, err = manager.ReturnBook(loan, now, 10)
	require.Error(t, err)
	assert.True(t, IsStateError(err))
}

func TestReturnBookLateFee(t *testing.T) {
	manager := NewLoanManager()
	book := testBook(t, "978-1")
	member := testMember(t, "m1")
	now := time.Now()
	due := now.Add(time.Hour)

	loan, err := manager.CreateLoan(book, member, now, due)
	require.NoError(t, err)

	// Three calendar days past due at 10 per day.
	fee, err := manager.ReturnBook(loan, due.AddDate(0, 0, 3), 10)
	require.NoError(t, err)
	assert.Equal(t, 30.0, fee)
	assert.True(t, book.IsAvailable())
}

func TestActiveLoans(t *testing.T) {
	manager := NewLoanManager()
	member := testMember(t, "m1")
	first := testBook(t, "978-1")
	second := testBook(t, "978-2")
	now := time.Now()
	due := now.AddDate(0, 0, 14)

	collect := func() []*Loan {
		var got []*Loan
		for l := range manager.ActiveLoans() {
			got = append(got, l)
		}
		return got
	}

	assert.Empty(t, collect())

	loan1, err := manager.CreateLoan(first, member, now, due)
	require.NoError(t, err)
	loan2, err := manager.CreateLoan(second, member, now, due)
	require.NoError(t, err)
	assert.Equal(t, []*Loan{loan1, loan2}, collect())

	_, err = manager.ReturnBook(loan1, now, 0)
	require.NoError(t, err)
	assert.Equal(t, []*Loan{loan2}, collect())

	// The sequence restarts cleanly on a second pass.
	seq := manager.ActiveLoans()
	var passes [][]*Loan
	for range 2 {
		var pass []*Loan
		for l := range seq {
			pass = append(pass, l)
		}
		passes = append(passes, pass)
	}
	assert.Equal(t, passes[0], passes[1])

	// The full history still holds both loans.
	assert.Equal(t, []*Loan{loan1, loan2}, manager.Loans())
}

package library

import (
	"iter"
	"slices"
	"time"
)

// LoanManager owns the authoritative, append-only loan history and
// enforces the cross-entity rules of the circulation workflow: a book
// cannot be double-borrowed, and a reservation blocks every member but
// the one holding it.
type LoanManager struct {
	loans []*Loan
}

// NewLoanManager returns a manager with an empty history.
func NewLoanManager() *LoanManager { return &LoanManager{} }

// CreateLoan checks a book out to a member. The due date must lie
// strictly in the future. A reservation held by another member blocks
// the loan; the member's own reservation is consumed by it. Every
// guard runs before any state changes, so a failed call mutates
// nothing.
func (lm *LoanManager) CreateLoan(book *Book, member *Member, loanDate, dueDate time.Time) (*Loan, error) {
	if book == nil {
		return nil, validationErrorf("book cannot be nil")
	}
	if member == nil {
		return nil, validationErrorf("member cannot be nil")
	}
	if !dueDate.After(time.Now()) {
		return nil, validationErrorf("due date must be in the future")
	}
	if book.reserved && book.reservedBy != member {
		return nil, stateErrorf("book %q is reserved by another member", book.isbn)
	}

	loan, err := NewLoan(book, member, loanDate, dueDate)
	if err != nil {
		return nil, err
	}
	if err := book.MarkBorrowed(); err != nil {
		return nil, err
	}

	lm.loans = append(lm.loans, loan)
	if err := member.addLoan(loan); err != nil {
		return nil, err
	}
	if book.reserved {
		book.ClearReservation()
	}
	return loan, nil
}

// ReserveBook places a hold on the book for member. The hold blocks
// checkouts by anyone else until the member borrows the book or the
// reservation is cleared.
func (lm *LoanManager) ReserveBook(book *Book, member *Member) error {
	if book == nil {
		return validationErrorf("book cannot be nil")
	}
	if member == nil {
		return validationErrorf("member cannot be nil")
	}
	return book.MarkReserved(member)
}

// ReturnBook closes out a loan, makes the book available again and
// returns the late fee owed at the given daily rate. Only loans
// tracked by this manager can be returned.
func (lm *LoanManager) ReturnBook(loan *Loan, returnDate time.Time, dailyFee float64) (float64, error) {
	if loan == nil {
		return 0, validationErrorf("loan cannot be nil")
	}
	if !slices.Contains(lm.loans, loan) {
		return 0, validationErrorf("loan is not tracked by this manager")
	}
	if dailyFee < 0 {
		return 0, validationErrorf("daily fee cannot be negative: %v", dailyFee)
	}
	if loan.IsReturned() {
		return 0, stateErrorf("loan is already returned")
	}

	if err := loan.MarkReturned(returnDate); err != nil {
		return 0, err
	}
	loan.book.MarkReturned()
	return loan.LateFee(dailyFee)
}

// ActiveLoans yields the unreturned loans in creation order. The
// sequence is lazy and can be ranged over more than once.
func (lm *LoanManager) ActiveLoans() iter.Seq[*Loan] {
	return func(yield func(*Loan) bool) {
		for _, loan := range lm.loans {
			if !loan.IsReturned() && !yield(loan) {
				return
			}
		}
	}
}

// Loans returns the full history, returned loans included, in creation
// order.
func (lm *LoanManager) Loans() []*Loan { return slices.Clone(lm.loans) }

package library

import (
	"time"
)

// Loan binds one book to one member over a date range. The book and
// member references are fixed at creation; the only mutation a loan
// ever sees is being marked returned, exactly once.
type Loan struct {
	book       *Book
	member     *Member
	loanDate   time.Time
	dueDate    time.Time
	returnDate *time.Time
}

// NewLoan validates the references and the date range. The loan date
// must not lie after the due date.
func NewLoan(book *Book, member *Member, loanDate, dueDate time.Time) (*Loan, error) {
	if book == nil {
		return nil, validationErrorf("book cannot be nil")
	}
	if member == nil {
		return nil, validationErrorf("member cannot be nil")
	}
	if loanDate.After(dueDate) {
		return nil, validationErrorf("loan date must not be after due date")
	}
	return &Loan{
		book:     book,
		member:   member,
		loanDate: loanDate,
		dueDate:  dueDate,
	}, nil
}

func (l *Loan) Book() *Book         { return l.book }
func (l *Loan) Member() *Member     { return l.member }
func (l *Loan) LoanDate() time.Time { return l.loanDate }
func (l *Loan) DueDate() time.Time  { return l.dueDate }

// ReturnDate returns the return date and whether the loan has been
// returned yet.
func (l *Loan) ReturnDate() (time.Time, bool) {
	if l.returnDate == nil {
		return time.Time{}, false
	}
	return *l.returnDate, true
}

// IsReturned reports whether the loan has been closed out.
func (l *Loan) IsReturned() bool { return l.returnDate != nil }

// IsOverdue reports whether the loan is still open past its due date.
// A returned loan is never overdue.
func (l *Loan) IsOverdue() bool {
	return l.returnDate == nil && time.Now().After(l.dueDate)
}

// MarkReturned records the return date. A loan can only be returned
// once.
func (l *Loan) MarkReturned(returnDate time.Time) error {
	if l.returnDate != nil {
		return stateErrorf("loan is already returned")
	}
	l.returnDate = &returnDate
	return nil
}

// LateFee computes the penalty owed on the loan: whole calendar days
// past the due date times dailyFee, with the time of day ignored on
// both sides. The reference date is the return date when the loan is
// closed, the optional asOf otherwise, falling back to the current
// time. On-time returns owe nothing.
func (l *Loan) LateFee(dailyFee float64, asOf ...time.Time) (float64, error) {
	if dailyFee < 0 {
		return 0, validationErrorf("daily fee cannot be negative: %v", dailyFee)
	}

	ref := time.Now()
	switch {
	case l.returnDate != nil:
		ref = *l.returnDate
	case len(asOf) > 0:
		ref = asOf[0]
	}

	daysLate := daysBetween(l.dueDate, ref)
	if daysLate <= 0 {
		return 0, nil
	}
	return float64(daysLate) * dailyFee, nil
}

// daysBetween counts calendar days from a to b, truncating both to
// their dates first. The dates are rebuilt in UTC so DST transitions
// and mixed Locations cannot shorten or stretch a day.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

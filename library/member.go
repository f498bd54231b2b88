package library

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Member is a registered patron. The loan list grows through the loan
// workflow only and stays in chronological order.
type Member struct {
	memberID    string
	name        string
	email       string
	memberSince time.Time
	loans       []*Loan
}

// NewMember validates the fields and returns a member with no loans.
// MemberSince is set to the creation time.
func NewMember(memberID, name, email string) (*Member, error) {
	if strings.TrimSpace(memberID) == "" {
		return nil, validationErrorf("member id cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, validationErrorf("name cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, validationErrorf("email cannot be empty")
	}
	return &Member{
		memberID:    memberID,
		name:        name,
		email:       email,
		memberSince: time.Now(),
	}, nil
}

func (m *Member) MemberID() string       { return m.memberID }
func (m *Member) Name() string           { return m.name }
func (m *Member) Email() string          { return m.email }
func (m *Member) MemberSince() time.Time { return m.memberSince }

// Loans returns the member's loans in the order they were created.
func (m *Member) Loans() []*Loan { return slices.Clone(m.loans) }

// addLoan appends a loan to the member's history. Only the loan
// workflow calls it.
func (m *Member) addLoan(loan *Loan) error {
	if loan == nil {
		return validationErrorf("loan cannot be nil")
	}
	m.loans = append(m.loans, loan)
	return nil
}

// Matches reports whether term is a case-insensitive substring of the
// name, email or member ID. A blank term matches nothing.
func (m *Member) Matches(term string) bool {
	if strings.TrimSpace(term) == "" {
		return false
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(m.name), term) ||
		strings.Contains(strings.ToLower(m.email), term) ||
		strings.Contains(strings.ToLower(m.memberID), term)
}

// Info renders the member's identity and their currently borrowed
// (unreturned) books.
func (m *Member) Info() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Member: %s (ID: %s, email: %s, member since: %s)\n",
		m.name, m.memberID, m.email, m.memberSince.Format("2006-01-02"))
	sb.WriteString("Borrowed books:\n")

	active := 0
	for _, loan := range m.loans {
		if loan.IsReturned() {
			continue
		}
		active++
		fmt.Fprintf(&sb, "  - %q by %s (due %s)\n",
			loan.Book().Title(), loan.Book().Author(), loan.DueDate().Format("2006-01-02"))
	}
	if active == 0 {
		sb.WriteString("  No borrowed books.\n")
	}
	return sb.String()
}

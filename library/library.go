package library

import (
	"iter"
)

// Library is a thin façade over the catalog, the member registry and
// the loan workflow, keeping CLI code simple. It holds exactly one of
// each and never duplicates their data.
type Library struct {
	catalog  *Catalog
	registry *Registry
	manager  *LoanManager
}

// NewLibrary composes the three components behind one façade.
func NewLibrary(catalog *Catalog, registry *Registry, manager *LoanManager) (*Library, error) {
	if catalog == nil {
		return nil, validationErrorf("catalog cannot be nil")
	}
	if registry == nil {
		return nil, validationErrorf("registry cannot be nil")
	}
	if manager == nil {
		return nil, validationErrorf("loan manager cannot be nil")
	}
	return &Library{catalog: catalog, registry: registry, manager: manager}, nil
}

func (l *Library) Catalog() *Catalog         { return l.catalog }
func (l *Library) Registry() *Registry       { return l.registry }
func (l *Library) LoanManager() *LoanManager { return l.manager }

// SearchBooks delegates to the catalog search.
func (l *Library) SearchBooks(term string) iter.Seq[*Book] {
	return l.catalog.Search(term)
}

// TotalBooks counts all catalog entries.
func (l *Library) TotalBooks() int { return l.catalog.Len() }

// BorrowedBooksCount counts the distinct books referenced by active
// loans. A book counts once no matter how many active loans point at
// it.
func (l *Library) BorrowedBooksCount() int {
	seen := make(map[*Book]struct{})
	for loan := range l.manager.ActiveLoans() {
		seen[loan.book] = struct{}{}
	}
	return len(seen)
}

// MostActiveBorrower returns the member holding the most active loans,
// or nil when nothing is out. Ties go to the member whose loans appear
// first in the history.
func (l *Library) MostActiveBorrower() *Member {
	counts := make(map[*Member]int)
	var order []*Member
	for loan := range l.manager.ActiveLoans() {
		if _, ok := counts[loan.member]; !ok {
			order = append(order, loan.member)
		}
		counts[loan.member]++
	}

	var best *Member
	for _, m := range order {
		if best == nil || counts[m] > counts[best] {
			best = m
		}
	}
	return best
}

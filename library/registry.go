package library

import (
	"slices"
	"strings"
)

// Registry is the ordered in-memory collection of members, looked up
// by member ID.
type Registry struct {
	members []*Member
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// Add appends a member to the registry.
func (r *Registry) Add(member *Member) error {
	if member == nil {
		return validationErrorf("member cannot be nil")
	}
	r.members = append(r.members, member)
	return nil
}

// ByID returns the first member with the given ID, or nil when none is
// registered.
func (r *Registry) ByID(memberID string) (*Member, error) {
	if strings.TrimSpace(memberID) == "" {
		return nil, validationErrorf("member id cannot be empty")
	}
	for _, m := range r.members {
		if m.memberID == memberID {
			return m, nil
		}
	}
	return nil, nil
}

// Remove deletes the member with the given ID and reports whether one
// was found. Loans already referencing the member stay valid; the loan
// history is append-only.
func (r *Registry) Remove(memberID string) bool {
	for i, m := range r.members {
		if m.memberID == memberID {
			r.members = slices.Delete(r.members, i, i+1)
			return true
		}
	}
	return false
}

// All returns the members in insertion order.
func (r *Registry) All() []*Member { return slices.Clone(r.members) }

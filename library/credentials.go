package library

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore keeps bcrypt password hashes keyed by member ID so
// the shell can authenticate circulation commands. Like everything
// else here, the store lives in memory for the process lifetime.
type CredentialStore struct {
	cost   int
	hashes map[string][]byte
}

// NewCredentialStore returns a store hashing at the given bcrypt cost.
// A cost outside bcrypt's supported range falls back to the default.
func NewCredentialStore(cost int) *CredentialStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CredentialStore{cost: cost, hashes: make(map[string][]byte)}
}

// Set stores or replaces the password for a member.
func (cs *CredentialStore) Set(memberID, password string) error {
	if strings.TrimSpace(memberID) == "" {
		return validationErrorf("member id cannot be empty")
	}
	if strings.TrimSpace(password) == "" {
		return validationErrorf("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cs.cost)
	if err != nil {
		return err
	}
	cs.hashes[memberID] = hash
	return nil
}

// Has reports whether a password is set for the member.
func (cs *CredentialStore) Has(memberID string) bool {
	_, ok := cs.hashes[memberID]
	return ok
}

// Authenticate verifies the member's password.
func (cs *CredentialStore) Authenticate(memberID, password string) error {
	hash, ok := cs.hashes[memberID]
	if !ok {
		return stateErrorf("no password set for member %q", memberID)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return stateErrorf("wrong password for member %q", memberID)
	}
	return nil
}

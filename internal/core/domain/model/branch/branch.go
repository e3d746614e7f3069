package branch

import (
	"errors"

	"tracking/internal/pkg/errs"
)

var ErrBranchIsNotConstructed = errors.New("branch is not constructed")

// Branch is a physical office shipments are routed between. Branches are
// reference data: they are seeded by migrations and never mutated by the
// tracking workflows, which only check that a referenced branch exists.
type Branch struct {
	id      int64
	name    string
	address *string

	isConstructed bool
}

// NewBranch creates a branch with the given name and optional address.
func NewBranch(name string, address *string) (*Branch, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Branch{
		name:          name,
		address:       address,
		isConstructed: true,
	}, nil
}

// RestoreBranch reconstructs a persisted branch from storage.
func RestoreBranch(id int64, name string, address *string) (*Branch, error) {
	b, err := NewBranch(name, address)
	if err != nil {
		return nil, err
	}
	b.id = id
	return b, nil
}

// Validate ensures the Branch instance was properly constructed through one of
// its factory methods.
func (b *Branch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBranchIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned key.
func (b *Branch) ID() int64 {
	return b.id
}

// Name returns the branch's display name.
func (b *Branch) Name() string {
	return b.name
}

// Address returns the branch's street address, or nil when none is recorded.
func (b *Branch) Address() *string {
	return b.address
}

// IsEqual compares branches by their store-assigned keys.
func (b *Branch) IsEqual(other *Branch) bool {
	return other != nil && b.id == other.id
}

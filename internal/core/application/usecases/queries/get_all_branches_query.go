package queries

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var ErrGetAllBranchesQueryIsNotConstructed = errors.New(
	"GetAllBranchesQuery must be created via NewGetAllBranchesQuery constructor",
)

// GetAllBranchesQuery retrieves all branches.
// Used by clients to populate origin and destination pickers.
type GetAllBranchesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllBranchesQuery creates a query to retrieve all branches.
// This is a parameterless query.
func NewGetAllBranchesQuery() GetAllBranchesQuery {
	return GetAllBranchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllBranchesQueryIsNotConstructed if validation fails.
func (q GetAllBranchesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllBranchesQueryIsNotConstructed)
}

// GetAllBranchesQueryResponse represents one branch.
type GetAllBranchesQueryResponse struct {
	ID      int64
	Name    string
	Address *string
}

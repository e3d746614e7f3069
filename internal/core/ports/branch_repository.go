package ports

import (
	"context"

	"tracking/internal/core/domain/model/branch"
)

// BranchRepository defines the read contract for branch reference data.
// Branches are seeded by migrations; the tracking workflows only look them up.
type BranchRepository interface {
	// Get retrieves a branch by its store-assigned key.
	// Returns errs.ObjectNotFoundError when no such branch exists.
	Get(ctx context.Context, id int64) (*branch.Branch, error)
}

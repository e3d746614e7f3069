package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllBranchesQueryHandler retrieves branch reference data from the database.
type GetAllBranchesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllBranchesQueryHandler creates a handler for branch queries.
// Requires a GORM database connection for query execution.
func NewGetAllBranchesQueryHandler(db *gorm.DB) GetAllBranchesQueryHandler {
	return GetAllBranchesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by ID for consistent output.
func (h GetAllBranchesQueryHandler) Handle(
	ctx context.Context,
	query GetAllBranchesQuery,
) ([]GetAllBranchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	branches := make([]GetAllBranchesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address
		FROM branches
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var branchResp GetAllBranchesQueryResponse

		err = rows.Scan(
			&branchResp.ID,
			&branchResp.Name,
			&branchResp.Address,
		)
		if err != nil {
			return nil, err
		}

		branches = append(branches, branchResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}

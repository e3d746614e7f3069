package branchrepo

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/branch"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBranchRepository implements BranchRepository using GORM.
type GormBranchRepository struct {
	db *gorm.DB
}

// NewGormBranchRepository creates a new GORM branch repository.
func NewGormBranchRepository(db *gorm.DB) *GormBranchRepository {
	return &GormBranchRepository{db: db}
}

// Get retrieves a branch by its store-assigned key.
func (r *GormBranchRepository) Get(ctx context.Context, id int64) (*branch.Branch, error) {
	var dto BranchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("branchId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

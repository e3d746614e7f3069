// Package branchrepo provides the read-side repository for branch reference
// data. Branches are seeded by migrations and never written by the application.
package branchrepo

import (
	"tracking/internal/core/domain/model/branch"
)

// BranchDTO represents the database structure for branch reference data.
type BranchDTO struct {
	ID      int64   `gorm:"primaryKey;autoIncrement"`
	Name    string  `gorm:"type:varchar(255);not null"`
	Address *string `gorm:"type:varchar(512)"`
}

// TableName specifies the database table name for branch entities.
// Overrides GORM's default naming convention to use "branches" instead of "branch_dtos".
func (BranchDTO) TableName() string {
	return "branches"
}

// toDomain converts a database DTO to a branch domain entity.
func toDomain(dto BranchDTO) (*branch.Branch, error) {
	return branch.RestoreBranch(dto.ID, dto.Name, dto.Address)
}

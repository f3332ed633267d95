// Package statusrepo resolves domain-scoped status codes against the statuses
// lookup table seeded by migrations.
package statusrepo

import (
	"context"
	"errors"

	"bookmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// StatusDTO represents a row of the status lookup table. Rows are reference
// data: inserted by migrations, never mutated at runtime.
type StatusDTO struct {
	ID     int64  `gorm:"primaryKey"`
	Domain string `gorm:"uniqueIndex:idx_statuses_domain_code"`
	Code   string `gorm:"uniqueIndex:idx_statuses_domain_code"`
}

// TableName specifies the database table name for status entities.
func (StatusDTO) TableName() string {
	return "statuses"
}

// GormStatusRepository implements StatusRepository using GORM.
type GormStatusRepository struct {
	db *gorm.DB
}

// NewGormStatusRepository creates a new GORM status lookup repository.
func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// GetByDomainAndCode returns the status id for the (domain, code) pair.
// A missing pair is a server misconfiguration, reported as StatusNotFound.
func (r *GormStatusRepository) GetByDomainAndCode(ctx context.Context, domain, code string) (int64, error) {
	var dto StatusDTO
	err := r.db.WithContext(ctx).First(&dto, "domain = ? AND code = ?", domain, code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, errs.NewStatusNotFoundError(domain, code)
	}
	if err != nil {
		return 0, err
	}

	return dto.ID, nil
}

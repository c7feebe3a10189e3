package repository

import (
	"context"
	"errors"
	"time"

	"streamhub-backend/internal/models"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type adminRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewAdminRepository(db *gorm.DB, timeout time.Duration) AdminRepository {
	return &adminRepository{db: db, timeout: timeout}
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Create(admin).Error
}

// FindByEmail is a duplicate probe, so a missing row is not an error.
func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var admin models.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"streamhub-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *models.Plan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Plan, error)
	FindByStripePlanID(ctx context.Context, stripePlanID string) (*models.Plan, error)
	FindAll(ctx context.Context) ([]models.Plan, error)
}

type planRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewPlanRepository(db *gorm.DB, timeout time.Duration) PlanRepository {
	return &planRepository{db: db, timeout: timeout}
}

func (r *planRepository) Create(ctx context.Context, plan *models.Plan) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Plan{}, "id = ?", id).Error
}

func (r *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Plan, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var plan models.Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) FindByStripePlanID(ctx context.Context, stripePlanID string) (*models.Plan, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var plan models.Plan
	err := r.db.WithContext(ctx).Where("stripe_plan_id = ?", stripePlanID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) FindAll(ctx context.Context) ([]models.Plan, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var plans []models.Plan
	if err := r.db.WithContext(ctx).Order("price ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

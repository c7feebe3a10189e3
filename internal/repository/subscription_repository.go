package repository

import (
	"context"
	"errors"
	"time"

	"streamhub-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *models.Subscription) error
	Update(ctx context.Context, subscription *models.Subscription) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Subscription, error)
}

type subscriptionRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewSubscriptionRepository(db *gorm.DB, timeout time.Duration) SubscriptionRepository {
	return &subscriptionRepository{db: db, timeout: timeout}
}

func (r *subscriptionRepository) Create(ctx context.Context, subscription *models.Subscription) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *subscriptionRepository) Update(ctx context.Context, subscription *models.Subscription) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Plan", "CreatedAt").Save(subscription).Error
}

func (r *subscriptionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Subscription, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var subscription models.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", userID).
		First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &subscription, nil
}

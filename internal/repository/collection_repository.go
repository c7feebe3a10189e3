package repository

import (
	"context"
	"errors"
	"time"

	"streamhub-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CollectionRepository interface {
	Create(ctx context.Context, collection *models.Collection) error
	Update(ctx context.Context, collection *models.Collection) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Collection, error)
	FindAll(ctx context.Context) ([]models.Collection, error)
}

type collectionRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewCollectionRepository(db *gorm.DB, timeout time.Duration) CollectionRepository {
	return &collectionRepository{db: db, timeout: timeout}
}

func (r *collectionRepository) Create(ctx context.Context, collection *models.Collection) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Create(collection).Error
}

// Update replaces the item list wholesale inside one transaction; item rows
// are keyed by position so ordering survives the round trip.
func (r *collectionRepository) Update(ctx context.Context, collection *models.Collection) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items", "CreatedAt").Save(collection).Error; err != nil {
			return err
		}
		if err := tx.Where("collection_id = ?", collection.ID).
			Delete(&models.CollectionItem{}).Error; err != nil {
			return err
		}
		if len(collection.Items) == 0 {
			return nil
		}
		return tx.Create(&collection.Items).Error
	})
}

func (r *collectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).
			Delete(&models.CollectionItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Collection{}, "id = ?", id).Error
	})
}

func (r *collectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Collection, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var collection models.Collection
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&collection, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) FindAll(ctx context.Context) ([]models.Collection, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var collections []models.Collection
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"streamhub-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeasonRepository interface {
	Create(ctx context.Context, season *models.Season) error
	Update(ctx context.Context, season *models.Season) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindBySerie(ctx context.Context, serieID uuid.UUID) ([]models.Season, error)
	FindBySlug(ctx context.Context, serieID uuid.UUID, slug string) (*models.Season, error)
}

type seasonRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewSeasonRepository(db *gorm.DB, timeout time.Duration) SeasonRepository {
	return &seasonRepository{db: db, timeout: timeout}
}

func (r *seasonRepository) Create(ctx context.Context, season *models.Season) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Episodes").Create(season).Error
}

func (r *seasonRepository) Update(ctx context.Context, season *models.Season) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Episodes", "Slug", "CreatedAt").Save(season).Error
}

func (r *seasonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Season{}, "id = ?", id).Error
}

func (r *seasonRepository) FindBySerie(ctx context.Context, serieID uuid.UUID) ([]models.Season, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var seasons []models.Season
	err := r.db.WithContext(ctx).
		Preload("Episodes").
		Where("serie_id = ?", serieID).
		Order("number ASC").
		Find(&seasons).Error
	if err != nil {
		return nil, err
	}
	return seasons, nil
}

func (r *seasonRepository) FindBySlug(ctx context.Context, serieID uuid.UUID, slug string) (*models.Season, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var season models.Season
	err := r.db.WithContext(ctx).
		Preload("Episodes").
		Where("serie_id = ? AND slug = ?", serieID, slug).
		First(&season).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &season, nil
}

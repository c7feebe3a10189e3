package repository

import (
	"context"
	"errors"
	"time"

	"streamhub-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EpisodeRepository interface {
	Create(ctx context.Context, episode *models.Episode) error
	Update(ctx context.Context, episode *models.Episode) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Episode, error)
	FindBySlug(ctx context.Context, seasonID uuid.UUID, slug string) (*models.Episode, error)
}

type episodeRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewEpisodeRepository(db *gorm.DB, timeout time.Duration) EpisodeRepository {
	return &episodeRepository{db: db, timeout: timeout}
}

func (r *episodeRepository) Create(ctx context.Context, episode *models.Episode) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Create(episode).Error
}

func (r *episodeRepository) Update(ctx context.Context, episode *models.Episode) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Slug", "CreatedAt").Save(episode).Error
}

func (r *episodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Episode{}, "id = ?", id).Error
}

func (r *episodeRepository) FindBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Episode, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var episodes []models.Episode
	err := r.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Order("number ASC").
		Find(&episodes).Error
	if err != nil {
		return nil, err
	}
	return episodes, nil
}

func (r *episodeRepository) FindBySlug(ctx context.Context, seasonID uuid.UUID, slug string) (*models.Episode, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var episode models.Episode
	err := r.db.WithContext(ctx).
		Where("season_id = ? AND slug = ?", seasonID, slug).
		First(&episode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &episode, nil
}

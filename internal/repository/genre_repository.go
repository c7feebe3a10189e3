package repository

import (
	"context"
	"errors"
	"time"

	"streamhub-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *models.Genre) error
	Update(ctx context.Context, genre *models.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Genre, error)
	FindByName(ctx context.Context, name string) (*models.Genre, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Genre, error)
	FindAll(ctx context.Context) ([]models.Genre, error)
}

type genreRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGenreRepository(db *gorm.DB, timeout time.Duration) GenreRepository {
	return &genreRepository{db: db, timeout: timeout}
}

func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Movies", "Series").Create(genre).Error
}

func (r *genreRepository) Update(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Movies", "Series", "CreatedAt").Save(genre).Error
}

func (r *genreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genre := models.Genre{ID: id}
		if err := tx.Model(&genre).Association("Movies").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&genre).Association("Series").Clear(); err != nil {
			return err
		}
		return tx.Delete(&genre).Error
	})
}

// FindByID populates the movie and serie membership through the join
// tables; there is no hand-maintained back-reference list to read.
func (r *genreRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).
		Preload("Movies").
		Preload("Series").
		First(&genre, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) FindByName(ctx context.Context, name string) (*models.Genre, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&genre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Genre, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var genres []models.Genre
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var genres []models.Genre
	err := r.db.WithContext(ctx).
		Preload("Movies").
		Preload("Series").
		Find(&genres).Error
	if err != nil {
		return nil, err
	}
	return genres, nil
}

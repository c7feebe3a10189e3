package repository

import (
	"context"
	"errors"
	"time"

	"streamhub-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SerieRepository interface {
	Create(ctx context.Context, serie *models.Serie) error
	Update(ctx context.Context, serie *models.Serie) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Serie, error)
	FindBySlug(ctx context.Context, slug string) (*models.Serie, error)
	FindByTitle(ctx context.Context, title string) (*models.Serie, error)
	FindAll(ctx context.Context, sort string, limit int) ([]models.Serie, error)
	ToggleReaction(ctx context.Context, serieID, userID uuid.UUID, kind models.ReactionKind) (*models.Serie, error)
}

type serieRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewSerieRepository(db *gorm.DB, timeout time.Duration) SerieRepository {
	return &serieRepository{db: db, timeout: timeout}
}

func (r *serieRepository) Create(ctx context.Context, serie *models.Serie) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Genres.*", "Seasons").Create(serie).Error
}

func (r *serieRepository) Update(ctx context.Context, serie *models.Serie) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Genres", "Seasons", "Slug", "CreatedAt").Save(serie).Error; err != nil {
			return err
		}
		genres := make([]models.Genre, len(serie.Genres))
		copy(genres, serie.Genres)
		return tx.Model(serie).Omit("Genres.*").Association("Genres").Replace(genres)
	})
}

func (r *serieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		serie := models.Serie{ID: id}
		if err := tx.Model(&serie).Association("Genres").Clear(); err != nil {
			return err
		}
		if err := tx.Where("serie_id = ?", id).Delete(&models.SerieReaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&serie).Error
	})
}

func (r *serieRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Serie, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var serie models.Serie
	err := r.db.WithContext(ctx).
		Preload("Genres").
		Preload("Seasons").
		First(&serie, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := r.loadReactions(ctx, &serie); err != nil {
		return nil, err
	}
	return &serie, nil
}

func (r *serieRepository) FindBySlug(ctx context.Context, slug string) (*models.Serie, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var serie models.Serie
	err := r.db.WithContext(ctx).
		Preload("Genres").
		Preload("Seasons").
		Where("slug = ?", slug).
		First(&serie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := r.loadReactions(ctx, &serie); err != nil {
		return nil, err
	}
	return &serie, nil
}

func (r *serieRepository) FindByTitle(ctx context.Context, title string) (*models.Serie, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var serie models.Serie
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&serie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &serie, nil
}

func (r *serieRepository) FindAll(ctx context.Context, sort string, limit int) ([]models.Serie, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := r.db.WithContext(ctx).Preload("Genres").Preload("Seasons")

	switch sort {
	case "newest":
		query = query.Order("release_date DESC")
	case "oldest":
		query = query.Order("release_date ASC")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var series []models.Serie
	if err := query.Find(&series).Error; err != nil {
		return nil, err
	}
	return series, nil
}

func (r *serieRepository) ToggleReaction(ctx context.Context, serieID, userID uuid.UUID, kind models.ReactionKind) (*models.Serie, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var slug string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var serie models.Serie
		if err := tx.First(&serie, "id = ?", serieID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		slug = serie.Slug

		var existing models.SerieReaction
		err := tx.Where("serie_id = ? AND user_id = ?", serieID, userID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.SerieReaction{SerieID: serieID, UserID: userID, Kind: kind}).Error
		case err != nil:
			return err
		case existing.Kind == kind:
			return tx.Where("serie_id = ? AND user_id = ?", serieID, userID).
				Delete(&models.SerieReaction{}).Error
		default:
			return tx.Model(&models.SerieReaction{}).
				Where("serie_id = ? AND user_id = ?", serieID, userID).
				Update("kind", kind).Error
		}
	})
	if err != nil {
		return nil, err
	}

	return r.FindBySlug(ctx, slug)
}

func (r *serieRepository) loadReactions(ctx context.Context, serie *models.Serie) error {
	var reactions []models.SerieReaction
	err := r.db.WithContext(ctx).
		Where("serie_id = ?", serie.ID).
		Order("created_at ASC").
		Find(&reactions).Error
	if err != nil {
		return err
	}

	serie.Likes = make([]uuid.UUID, 0, len(reactions))
	serie.Dislikes = make([]uuid.UUID, 0)
	for _, reaction := range reactions {
		if reaction.Kind == models.ReactionLike {
			serie.Likes = append(serie.Likes, reaction.UserID)
		} else {
			serie.Dislikes = append(serie.Dislikes, reaction.UserID)
		}
	}
	return nil
}

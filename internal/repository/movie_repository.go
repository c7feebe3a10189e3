package repository

import (
	"context"
	"errors"
	"time"

	"streamhub-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Movie, error)
	FindByTitle(ctx context.Context, title string) (*models.Movie, error)
	FindAll(ctx context.Context, sort string, limit int) ([]models.Movie, error)
	ToggleReaction(ctx context.Context, movieID, userID uuid.UUID, kind models.ReactionKind) (*models.Movie, error)
}

type movieRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewMovieRepository(db *gorm.DB, timeout time.Duration) MovieRepository {
	return &movieRepository{db: db, timeout: timeout}
}

// Create persists the movie and its genre links in one transaction. Genre
// rows themselves are never touched, only the join table.
func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Genres.*").Create(movie).Error
}

// Update saves scalar fields and replaces the genre membership atomically.
// The slug column is deliberately excluded: it is fixed at creation.
func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Genres", "Slug", "CreatedAt").Save(movie).Error; err != nil {
			return err
		}
		genres := make([]models.Genre, len(movie.Genres))
		copy(genres, movie.Genres)
		return tx.Model(movie).Omit("Genres.*").Association("Genres").Replace(genres)
	})
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		movie := models.Movie{ID: id}
		if err := tx.Model(&movie).Association("Genres").Clear(); err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", id).Delete(&models.MovieReaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&movie).Error
	})
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Movie, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Preload("Genres").First(&movie, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := r.loadReactions(ctx, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*models.Movie, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, sort string, limit int) ([]models.Movie, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := r.db.WithContext(ctx).Preload("Genres")

	switch sort {
	case "newest":
		query = query.Order("release_date DESC")
	case "oldest":
		query = query.Order("release_date ASC")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var movies []models.Movie
	if err := query.Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// ToggleReaction flips the user's reaction in a single transaction: a
// repeated identical reaction clears it, an opposite one replaces it. The
// composite key on movie_reactions keeps like/dislike mutually exclusive
// even under concurrent toggles.
func (r *movieRepository) ToggleReaction(ctx context.Context, movieID, userID uuid.UUID, kind models.ReactionKind) (*models.Movie, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var movie models.Movie
		if err := tx.First(&movie, "id = ?", movieID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var existing models.MovieReaction
		err := tx.Where("movie_id = ? AND user_id = ?", movieID, userID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.MovieReaction{MovieID: movieID, UserID: userID, Kind: kind}).Error
		case err != nil:
			return err
		case existing.Kind == kind:
			return tx.Where("movie_id = ? AND user_id = ?", movieID, userID).
				Delete(&models.MovieReaction{}).Error
		default:
			return tx.Model(&models.MovieReaction{}).
				Where("movie_id = ? AND user_id = ?", movieID, userID).
				Update("kind", kind).Error
		}
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, movieID)
}

func (r *movieRepository) loadReactions(ctx context.Context, movie *models.Movie) error {
	var reactions []models.MovieReaction
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movie.ID).
		Order("created_at ASC").
		Find(&reactions).Error
	if err != nil {
		return err
	}

	movie.Likes = make([]uuid.UUID, 0, len(reactions))
	movie.Dislikes = make([]uuid.UUID, 0)
	for _, reaction := range reactions {
		if reaction.Kind == models.ReactionLike {
			movie.Likes = append(movie.Likes, reaction.UserID)
		} else {
			movie.Dislikes = append(movie.Dislikes, reaction.UserID)
		}
	}
	return nil
}

package services

import (
	"context"

	"streamhub-backend/internal/models"
	"streamhub-backend/internal/repository"
	"streamhub-backend/internal/validators"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type GenreInput struct {
	Name string `json:"name" validate:"required"`
}

type GenreService struct {
	genres repository.GenreRepository
	logger *logrus.Logger
}

func NewGenreService(genres repository.GenreRepository, logger *logrus.Logger) *GenreService {
	return &GenreService{genres: genres, logger: logger}
}

func (s *GenreService) Create(ctx context.Context, input GenreInput) (*models.Genre, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := validators.Check(input)

	existing, err := s.genres.FindByName(ctx, input.Name)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		violations.AddWithValue("name", input.Name, "A genre with this name already exists")
	}

	if !violations.Empty() {
		return nil, violations, nil
	}

	genre := &models.Genre{Name: input.Name}
	if err := s.genres.Create(ctx, genre); err != nil {
		return nil, nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"genreId": genre.ID,
		"name":    genre.Name,
	}).Info("Genre created")

	return genre, nil, nil
}

func (s *GenreService) Update(ctx context.Context, id uuid.UUID, input GenreInput) (*models.Genre, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := validators.Check(input)

	genre, err := s.genres.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	existing, err := s.genres.FindByName(ctx, input.Name)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil && existing.ID != id {
		violations.AddWithValue("name", input.Name, "A genre with this name already exists")
	}

	if !violations.Empty() {
		return nil, violations, nil
	}

	genre.Name = input.Name
	if err := s.genres.Update(ctx, genre); err != nil {
		return nil, nil, err
	}
	return genre, nil, nil
}

// Delete removes the genre and its join-table links. Movies and series keep
// their other genres untouched.
func (s *GenreService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.genres.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.genres.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("genreId", id).Info("Genre deleted")
	return nil
}

// Get returns the genre with its movie and serie membership resolved from
// the join tables.
func (s *GenreService) Get(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	return s.genres.FindByID(ctx, id)
}

func (s *GenreService) List(ctx context.Context) ([]models.Genre, error) {
	return s.genres.FindAll(ctx)
}

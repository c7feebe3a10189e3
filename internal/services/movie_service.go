package services

import (
	"context"
	"time"

	"streamhub-backend/internal/models"
	"streamhub-backend/internal/realtime"
	"streamhub-backend/internal/repository"
	"streamhub-backend/internal/validators"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MovieAnnouncer pushes a new-movie notification to connected clients.
type MovieAnnouncer interface {
	BroadcastNewMovie(event realtime.NewMovieEvent)
}

// MovieInput carries the scalar movie fields plus genre references. Image
// files travel separately as ImageUpload values.
type MovieInput struct {
	Title       string    `json:"title" validate:"required"`
	Plot        string    `json:"plot" validate:"required"`
	ReleaseDate time.Time `json:"releaseDate" validate:"required"`
	Runtime     int       `json:"runtime" validate:"required,min=1"`
	Country     string    `json:"country" validate:"required"`
	Trailer     string    `json:"trailer" validate:"omitempty,url"`
	GenreIDs    []string  `json:"genres" validate:"required,min=1"`
}

type MovieService struct {
	movies    repository.MovieRepository
	genres    repository.GenreRepository
	storage   MediaStorage
	announcer MovieAnnouncer
	logger    *logrus.Logger
}

func NewMovieService(
	movies repository.MovieRepository,
	genres repository.GenreRepository,
	storage MediaStorage,
	announcer MovieAnnouncer,
	logger *logrus.Logger,
) *MovieService {
	return &MovieService{
		movies:    movies,
		genres:    genres,
		storage:   storage,
		announcer: announcer,
		logger:    logger,
	}
}

// Create validates the input, uploads both images, persists the movie and
// announces it to realtime subscribers. All violations are collected and
// returned together, so a client fixing a form sees every problem at once.
// Coercion violations from the form layer arrive as formViolations and join
// the declarative ones.
func (s *MovieService) Create(ctx context.Context, input MovieInput, poster, backdrop *ImageUpload, formViolations validators.Violations) (*models.Movie, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := formViolations.Merge(validators.Check(input))
	if poster == nil {
		violations.Add("poster", "Poster image is required")
	}
	if backdrop == nil {
		violations.Add("backdrop", "Backdrop image is required")
	}

	existing, err := s.movies.FindByTitle(ctx, input.Title)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		violations.AddWithValue("title", input.Title, "A movie with this title already exists")
	}

	genreList, genreViolations, err := resolveGenres(ctx, s.genres, input.GenreIDs)
	if err != nil {
		return nil, nil, err
	}
	violations = append(violations, genreViolations...)

	if !violations.Empty() {
		return nil, violations, nil
	}

	posterAsset, err := s.storage.Upload(ctx, poster)
	if err != nil {
		return nil, nil, err
	}
	backdropAsset, err := s.storage.Upload(ctx, backdrop)
	if err != nil {
		return nil, nil, err
	}

	movie := &models.Movie{
		Title:       input.Title,
		Plot:        input.Plot,
		ReleaseDate: input.ReleaseDate,
		Runtime:     input.Runtime,
		Country:     input.Country,
		Trailer:     input.Trailer,
		Poster:      models.ImageAsset{ID: posterAsset.ID, URL: posterAsset.URL},
		Backdrop:    models.ImageAsset{ID: backdropAsset.ID, URL: backdropAsset.URL},
		Genres:      genreList,
	}

	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"movieId": movie.ID,
		"title":   movie.Title,
	}).Info("Movie created")

	s.announcer.BroadcastNewMovie(realtime.NewMovieEvent{
		Title:  movie.Title,
		Poster: movie.Poster.URL,
	})

	created, err := s.movies.FindByID(ctx, movie.ID)
	if err != nil {
		return nil, nil, err
	}
	return created, nil, nil
}

// Update replaces scalar fields and genre links. When a new image arrives
// the old one is destroyed at the media host before the record is saved; a
// missing image keeps the stored one. The slug is never regenerated.
func (s *MovieService) Update(ctx context.Context, id uuid.UUID, input MovieInput, poster, backdrop *ImageUpload, formViolations validators.Violations) (*models.Movie, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := formViolations.Merge(validators.Check(input))

	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	existing, err := s.movies.FindByTitle(ctx, input.Title)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil && existing.ID != id {
		violations.AddWithValue("title", input.Title, "A movie with this title already exists")
	}

	genreList, genreViolations, err := resolveGenres(ctx, s.genres, input.GenreIDs)
	if err != nil {
		return nil, nil, err
	}
	violations = append(violations, genreViolations...)

	if !violations.Empty() {
		return nil, violations, nil
	}

	if poster != nil {
		if err := s.storage.Delete(ctx, movie.Poster.ID); err != nil {
			return nil, nil, err
		}
		asset, err := s.storage.Upload(ctx, poster)
		if err != nil {
			return nil, nil, err
		}
		movie.Poster = models.ImageAsset{ID: asset.ID, URL: asset.URL}
	}
	if backdrop != nil {
		if err := s.storage.Delete(ctx, movie.Backdrop.ID); err != nil {
			return nil, nil, err
		}
		asset, err := s.storage.Upload(ctx, backdrop)
		if err != nil {
			return nil, nil, err
		}
		movie.Backdrop = models.ImageAsset{ID: asset.ID, URL: asset.URL}
	}

	movie.Title = input.Title
	movie.Plot = input.Plot
	movie.ReleaseDate = input.ReleaseDate
	movie.Runtime = input.Runtime
	movie.Country = input.Country
	movie.Trailer = input.Trailer
	movie.Genres = genreList

	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, nil, err
	}

	s.logger.WithField("movieId", movie.ID).Info("Movie updated")

	updated, err := s.movies.FindByID(ctx, movie.ID)
	if err != nil {
		return nil, nil, err
	}
	return updated, nil, nil
}

// Delete destroys the poster and backdrop at the media host, then removes
// the record with its genre links and reactions.
func (s *MovieService) Delete(ctx context.Context, id uuid.UUID) error {
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, movie.Poster.ID); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, movie.Backdrop.ID); err != nil {
		return err
	}

	if err := s.movies.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("movieId", id).Info("Movie deleted")
	return nil
}

func (s *MovieService) Get(ctx context.Context, id uuid.UUID) (*models.Movie, error) {
	return s.movies.FindByID(ctx, id)
}

func (s *MovieService) List(ctx context.Context, sort string, limit int) ([]models.Movie, error) {
	return s.movies.FindAll(ctx, sort, limit)
}

func (s *MovieService) ToggleReaction(ctx context.Context, movieID, userID uuid.UUID, kind models.ReactionKind) (*models.Movie, error) {
	return s.movies.ToggleReaction(ctx, movieID, userID, kind)
}

// resolveGenres turns genre id strings into loaded Genre rows. Malformed
// ids and ids with no matching row each produce a violation.
func resolveGenres(ctx context.Context, genres repository.GenreRepository, ids []string) ([]models.Genre, validators.Violations, error) {
	var violations validators.Violations

	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			violations.AddWithValue("genres", raw, "Genre id is not valid")
			continue
		}
		parsed = append(parsed, id)
	}
	if !violations.Empty() || len(parsed) == 0 {
		return nil, violations, nil
	}

	found, err := genres.FindByIDs(ctx, parsed)
	if err != nil {
		return nil, nil, err
	}
	if len(found) != len(parsed) {
		known := make(map[uuid.UUID]bool, len(found))
		for _, g := range found {
			known[g.ID] = true
		}
		for _, id := range parsed {
			if !known[id] {
				violations.AddWithValue("genres", id.String(), "Genre does not exist")
			}
		}
		return nil, violations, nil
	}
	return found, nil, nil
}

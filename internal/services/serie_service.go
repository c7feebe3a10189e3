package services

import (
	"context"
	"time"

	"streamhub-backend/internal/models"
	"streamhub-backend/internal/repository"
	"streamhub-backend/internal/utils"
	"streamhub-backend/internal/validators"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SerieInput struct {
	Title       string    `json:"title" validate:"required"`
	Plot        string    `json:"plot" validate:"required"`
	ReleaseDate time.Time `json:"releaseDate" validate:"required"`
	Country     string    `json:"country" validate:"required"`
	Trailer     string    `json:"trailer" validate:"omitempty,url"`
	GenreIDs    []string  `json:"genres" validate:"required,min=1"`
}

type SeasonInput struct {
	Title       string    `json:"title"`
	Number      int       `json:"number" validate:"required,min=1"`
	ReleaseDate time.Time `json:"releaseDate" validate:"required"`
}

type EpisodeInput struct {
	Title    string `json:"title" validate:"required"`
	Plot     string `json:"plot" validate:"required"`
	Number   int    `json:"number" validate:"required,min=1"`
	VideoURL string `json:"videoURL" validate:"omitempty,url"`
}

type SerieService struct {
	series   repository.SerieRepository
	seasons  repository.SeasonRepository
	episodes repository.EpisodeRepository
	genres   repository.GenreRepository
	storage  MediaStorage
	logger   *logrus.Logger
}

func NewSerieService(
	series repository.SerieRepository,
	seasons repository.SeasonRepository,
	episodes repository.EpisodeRepository,
	genres repository.GenreRepository,
	storage MediaStorage,
	logger *logrus.Logger,
) *SerieService {
	return &SerieService{
		series:   series,
		seasons:  seasons,
		episodes: episodes,
		genres:   genres,
		storage:  storage,
		logger:   logger,
	}
}

func (s *SerieService) Create(ctx context.Context, input SerieInput, poster, backdrop *ImageUpload, formViolations validators.Violations) (*models.Serie, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := formViolations.Merge(validators.Check(input))
	if poster == nil {
		violations.Add("poster", "Poster image is required")
	}
	if backdrop == nil {
		violations.Add("backdrop", "Backdrop image is required")
	}

	existing, err := s.series.FindByTitle(ctx, input.Title)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		violations.AddWithValue("title", input.Title, "A serie with this title already exists")
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

	serie := &models.Serie{
		Title:       input.Title,
		Plot:        input.Plot,
		ReleaseDate: input.ReleaseDate,
		Country:     input.Country,
		Trailer:     input.Trailer,
		Poster:      models.ImageAsset{ID: posterAsset.ID, URL: posterAsset.URL},
		Backdrop:    models.ImageAsset{ID: backdropAsset.ID, URL: backdropAsset.URL},
		Genres:      genreList,
	}

	if err := s.series.Create(ctx, serie); err != nil {
		return nil, nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"serieId": serie.ID,
		"title":   serie.Title,
	}).Info("Serie created")

	created, err := s.series.FindByID(ctx, serie.ID)
	if err != nil {
		return nil, nil, err
	}
	return created, nil, nil
}

// Update replaces scalar fields and genre links on the serie addressed by
// slug. The slug itself is never regenerated, even when the title changes.
func (s *SerieService) Update(ctx context.Context, slug string, input SerieInput, poster, backdrop *ImageUpload, formViolations validators.Violations) (*models.Serie, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := formViolations.Merge(validators.Check(input))

	serie, err := s.series.FindBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	existing, err := s.series.FindByTitle(ctx, input.Title)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil && existing.ID != serie.ID {
		violations.AddWithValue("title", input.Title, "A serie with this title already exists")
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
		if err := s.storage.Delete(ctx, serie.Poster.ID); err != nil {
			return nil, nil, err
		}
		asset, err := s.storage.Upload(ctx, poster)
		if err != nil {
			return nil, nil, err
		}
		serie.Poster = models.ImageAsset{ID: asset.ID, URL: asset.URL}
	}
	if backdrop != nil {
		if err := s.storage.Delete(ctx, serie.Backdrop.ID); err != nil {
			return nil, nil, err
		}
		asset, err := s.storage.Upload(ctx, backdrop)
		if err != nil {
			return nil, nil, err
		}
		serie.Backdrop = models.ImageAsset{ID: asset.ID, URL: asset.URL}
	}

	serie.Title = input.Title
	serie.Plot = input.Plot
	serie.ReleaseDate = input.ReleaseDate
	serie.Country = input.Country
	serie.Trailer = input.Trailer
	serie.Genres = genreList

	if err := s.series.Update(ctx, serie); err != nil {
		return nil, nil, err
	}

	s.logger.WithField("serieId", serie.ID).Info("Serie updated")

	updated, err := s.series.FindByID(ctx, serie.ID)
	if err != nil {
		return nil, nil, err
	}
	return updated, nil, nil
}

// Delete removes the serie with every season and episode underneath it,
// destroying the poster and backdrop at the media host first.
func (s *SerieService) Delete(ctx context.Context, slug string) error {
	serie, err := s.series.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, serie.Poster.ID); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, serie.Backdrop.ID); err != nil {
		return err
	}

	seasons, err := s.seasons.FindBySerie(ctx, serie.ID)
	if err != nil {
		return err
	}
	for _, season := range seasons {
		episodes, err := s.episodes.FindBySeason(ctx, season.ID)
		if err != nil {
			return err
		}
		for _, episode := range episodes {
			if err := s.episodes.Delete(ctx, episode.ID); err != nil {
				return err
			}
		}
		if err := s.seasons.Delete(ctx, season.ID); err != nil {
			return err
		}
	}

	if err := s.series.Delete(ctx, serie.ID); err != nil {
		return err
	}

	s.logger.WithField("serieSlug", slug).Info("Serie deleted")
	return nil
}

func (s *SerieService) GetBySlug(ctx context.Context, slug string) (*models.Serie, error) {
	return s.series.FindBySlug(ctx, slug)
}

func (s *SerieService) List(ctx context.Context, sort string, limit int) ([]models.Serie, error) {
	return s.series.FindAll(ctx, sort, limit)
}

func (s *SerieService) ToggleReaction(ctx context.Context, slug string, userID uuid.UUID, kind models.ReactionKind) (*models.Serie, error) {
	serie, err := s.series.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.series.ToggleReaction(ctx, serie.ID, userID, kind)
}

// CreateSeason attaches a season to an existing serie. A missing serie is
// an invalid reference, not a plain not-found, so the handler can report
// which ancestor failed.
func (s *SerieService) CreateSeason(ctx context.Context, serieSlug string, input SeasonInput) (*models.Season, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := validators.Check(input)

	serie, err := s.resolveSerie(ctx, serieSlug)
	if err != nil {
		return nil, nil, err
	}

	existing, err := s.seasons.FindBySlug(ctx, serie.ID, utils.SeasonSlug(input.Number))
	if err != nil && err != repository.ErrNotFound {
		return nil, nil, err
	}
	if existing != nil {
		violations.Add("number", "This season already exists")
	}

	if !violations.Empty() {
		return nil, violations, nil
	}

	season := &models.Season{
		Title:       input.Title,
		Number:      input.Number,
		ReleaseDate: input.ReleaseDate,
		SerieID:     serie.ID,
	}
	if err := s.seasons.Create(ctx, season); err != nil {
		return nil, nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"serieId":  serie.ID,
		"seasonId": season.ID,
		"number":   season.Number,
	}).Info("Season created")

	return season, nil, nil
}

func (s *SerieService) UpdateSeason(ctx context.Context, serieSlug, slug string, input SeasonInput) (*models.Season, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := validators.Check(input)
	if !violations.Empty() {
		return nil, violations, nil
	}

	serie, err := s.resolveSerie(ctx, serieSlug)
	if err != nil {
		return nil, nil, err
	}

	season, err := s.seasons.FindBySlug(ctx, serie.ID, slug)
	if err != nil {
		return nil, nil, err
	}

	season.Title = input.Title
	season.Number = input.Number
	season.ReleaseDate = input.ReleaseDate
	if err := s.seasons.Update(ctx, season); err != nil {
		return nil, nil, err
	}
	return season, nil, nil
}

func (s *SerieService) DeleteSeason(ctx context.Context, serieSlug, slug string) error {
	serie, err := s.resolveSerie(ctx, serieSlug)
	if err != nil {
		return err
	}

	season, err := s.seasons.FindBySlug(ctx, serie.ID, slug)
	if err != nil {
		return err
	}

	episodes, err := s.episodes.FindBySeason(ctx, season.ID)
	if err != nil {
		return err
	}
	for _, episode := range episodes {
		if err := s.episodes.Delete(ctx, episode.ID); err != nil {
			return err
		}
	}

	if err := s.seasons.Delete(ctx, season.ID); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"serieId":  serie.ID,
		"seasonId": season.ID,
	}).Info("Season deleted")
	return nil
}

func (s *SerieService) ListSeasons(ctx context.Context, serieSlug string) ([]models.Season, error) {
	serie, err := s.resolveSerie(ctx, serieSlug)
	if err != nil {
		return nil, err
	}
	return s.seasons.FindBySerie(ctx, serie.ID)
}

func (s *SerieService) GetSeason(ctx context.Context, serieSlug, slug string) (*models.Season, error) {
	serie, err := s.resolveSerie(ctx, serieSlug)
	if err != nil {
		return nil, err
	}
	return s.seasons.FindBySlug(ctx, serie.ID, slug)
}

// CreateEpisode checks the whole ancestor chain, reporting the first link
// that is missing.
func (s *SerieService) CreateEpisode(ctx context.Context, serieSlug, seasonSlug string, input EpisodeInput) (*models.Episode, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := validators.Check(input)

	season, err := s.resolveSeason(ctx, serieSlug, seasonSlug)
	if err != nil {
		return nil, nil, err
	}

	if !violations.Empty() {
		return nil, violations, nil
	}

	episode := &models.Episode{
		Title:    input.Title,
		Plot:     input.Plot,
		Number:   input.Number,
		VideoURL: input.VideoURL,
		SeasonID: season.ID,
	}
	if err := s.episodes.Create(ctx, episode); err != nil {
		return nil, nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"seasonId":  season.ID,
		"episodeId": episode.ID,
		"number":    episode.Number,
	}).Info("Episode created")

	return episode, nil, nil
}

func (s *SerieService) UpdateEpisode(ctx context.Context, serieSlug, seasonSlug, episodeSlug string, input EpisodeInput) (*models.Episode, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := validators.Check(input)
	if !violations.Empty() {
		return nil, violations, nil
	}

	season, err := s.resolveSeason(ctx, serieSlug, seasonSlug)
	if err != nil {
		return nil, nil, err
	}

	episode, err := s.episodes.FindBySlug(ctx, season.ID, episodeSlug)
	if err != nil {
		return nil, nil, err
	}

	episode.Title = input.Title
	episode.Plot = input.Plot
	episode.Number = input.Number
	episode.VideoURL = input.VideoURL
	if err := s.episodes.Update(ctx, episode); err != nil {
		return nil, nil, err
	}
	return episode, nil, nil
}

func (s *SerieService) DeleteEpisode(ctx context.Context, serieSlug, seasonSlug, episodeSlug string) error {
	season, err := s.resolveSeason(ctx, serieSlug, seasonSlug)
	if err != nil {
		return err
	}

	episode, err := s.episodes.FindBySlug(ctx, season.ID, episodeSlug)
	if err != nil {
		return err
	}

	if err := s.episodes.Delete(ctx, episode.ID); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"seasonId":  season.ID,
		"episodeId": episode.ID,
	}).Info("Episode deleted")
	return nil
}

func (s *SerieService) ListEpisodes(ctx context.Context, serieSlug, seasonSlug string) ([]models.Episode, error) {
	season, err := s.resolveSeason(ctx, serieSlug, seasonSlug)
	if err != nil {
		return nil, err
	}
	return s.episodes.FindBySeason(ctx, season.ID)
}

func (s *SerieService) GetEpisode(ctx context.Context, serieSlug, seasonSlug, episodeSlug string) (*models.Episode, error) {
	season, err := s.resolveSeason(ctx, serieSlug, seasonSlug)
	if err != nil {
		return nil, err
	}
	return s.episodes.FindBySlug(ctx, season.ID, episodeSlug)
}

// resolveSerie loads the ancestor serie for nested season and episode
// operations, reporting a missing one as an invalid reference.
func (s *SerieService) resolveSerie(ctx context.Context, slug string) (*models.Serie, error) {
	serie, err := s.series.FindBySlug(ctx, slug)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, invalidRef("Serie")
		}
		return nil, err
	}
	return serie, nil
}

func (s *SerieService) resolveSeason(ctx context.Context, serieSlug, seasonSlug string) (*models.Season, error) {
	serie, err := s.resolveSerie(ctx, serieSlug)
	if err != nil {
		return nil, err
	}
	season, err := s.seasons.FindBySlug(ctx, serie.ID, seasonSlug)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, invalidRef("Season")
		}
		return nil, err
	}
	return season, nil
}

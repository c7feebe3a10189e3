package services

import (
	"context"
	"testing"
	"time"

	"streamhub-backend/internal/models"
	"streamhub-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serieFixture struct {
	service *SerieService
	storage *fakeStorage
	genres  repository.GenreRepository
}

func newSerieFixture(t *testing.T) *serieFixture {
	db := newTestDB(t)
	storage := &fakeStorage{}
	series := repository.NewSerieRepository(db, testTimeout)
	seasons := repository.NewSeasonRepository(db, testTimeout)
	episodes := repository.NewEpisodeRepository(db, testTimeout)
	genres := repository.NewGenreRepository(db, testTimeout)

	return &serieFixture{
		service: NewSerieService(series, seasons, episodes, genres, storage, newTestLogger()),
		storage: storage,
		genres:  genres,
	}
}

func (f *serieFixture) seedSerie(t *testing.T, title string) *models.Serie {
	t.Helper()
	ctx := context.Background()

	genre := &models.Genre{Name: "Drama-" + title}
	require.NoError(t, f.genres.Create(ctx, genre))

	serie, violations, err := f.service.Create(ctx, SerieInput{
		Title:       title,
		Plot:        "plot",
		ReleaseDate: time.Now(),
		Country:     "USA",
		GenreIDs:    []string{genre.ID.String()},
	}, testImage("p.png"), testImage("b.png"), nil)
	require.NoError(t, err)
	require.True(t, violations.Empty())
	return serie
}

func TestCreateSeasonUnderUnknownSerie(t *testing.T) {
	f := newSerieFixture(t)

	_, _, err := f.service.CreateSeason(context.Background(), "missing-serie", SeasonInput{
		Number:      1,
		ReleaseDate: time.Now(),
	})

	var refErr *InvalidReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "Serie", refErr.Ref)
}

func TestCreateSeasonDerivesSlugFromNumber(t *testing.T) {
	f := newSerieFixture(t)
	serie := f.seedSerie(t, "Show")

	season, violations, err := f.service.CreateSeason(context.Background(), serie.Slug, SeasonInput{
		Title:       "The Beginning",
		Number:      2,
		ReleaseDate: time.Now(),
	})
	require.NoError(t, err)
	require.True(t, violations.Empty())
	assert.Equal(t, "season-2", season.Slug)
}

func TestCreateSeasonDuplicateNumber(t *testing.T) {
	f := newSerieFixture(t)
	serie := f.seedSerie(t, "Show")
	ctx := context.Background()

	_, _, err := f.service.CreateSeason(ctx, serie.Slug, SeasonInput{Number: 1, ReleaseDate: time.Now()})
	require.NoError(t, err)

	_, violations, err := f.service.CreateSeason(ctx, serie.Slug, SeasonInput{Number: 1, ReleaseDate: time.Now()})
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "number", violations[0].Param)
}

func TestCreateEpisodeReportsFirstMissingAncestor(t *testing.T) {
	f := newSerieFixture(t)
	serie := f.seedSerie(t, "Show")
	ctx := context.Background()

	input := EpisodeInput{Title: "Pilot", Plot: "plot", Number: 1}

	// Unknown serie is reported before the season is even looked at.
	_, _, err := f.service.CreateEpisode(ctx, "missing-serie", "season-1", input)
	var refErr *InvalidReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "Serie", refErr.Ref)

	// Known serie, unknown season.
	_, _, err = f.service.CreateEpisode(ctx, serie.Slug, "season-9", input)
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "Season", refErr.Ref)
}

func TestUpdateSerieAddressedBySlug(t *testing.T) {
	f := newSerieFixture(t)
	serie := f.seedSerie(t, "Show")
	ctx := context.Background()

	genre := &models.Genre{Name: "Thriller"}
	require.NoError(t, f.genres.Create(ctx, genre))

	input := SerieInput{
		Title:       "Show Renamed",
		Plot:        "plot",
		ReleaseDate: time.Now(),
		Country:     "USA",
		GenreIDs:    []string{genre.ID.String()},
	}

	updated, violations, err := f.service.Update(ctx, serie.Slug, input, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, violations.Empty())
	assert.Equal(t, "Show Renamed", updated.Title)
	// The slug survives the rename.
	assert.Equal(t, serie.Slug, updated.Slug)

	_, _, err = f.service.Update(ctx, "missing-serie", input, nil, nil, nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteSerieCascades(t *testing.T) {
	f := newSerieFixture(t)
	serie := f.seedSerie(t, "Show")
	ctx := context.Background()

	_, _, err := f.service.CreateSeason(ctx, serie.Slug, SeasonInput{Number: 1, ReleaseDate: time.Now()})
	require.NoError(t, err)
	_, _, err = f.service.CreateEpisode(ctx, serie.Slug, "season-1", EpisodeInput{Title: "Pilot", Plot: "plot", Number: 1})
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, serie.Slug))

	// Both images destroyed, serie and descendants gone.
	assert.Len(t, f.storage.deleted, 2)
	_, err = f.service.GetBySlug(ctx, serie.Slug)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = f.service.ListSeasons(ctx, serie.Slug)
	var refErr *InvalidReferenceError
	assert.ErrorAs(t, err, &refErr)
}

func TestGetEpisodeBySlugChain(t *testing.T) {
	f := newSerieFixture(t)
	serie := f.seedSerie(t, "Show")
	ctx := context.Background()

	_, _, err := f.service.CreateSeason(ctx, serie.Slug, SeasonInput{Number: 1, ReleaseDate: time.Now()})
	require.NoError(t, err)
	created, _, err := f.service.CreateEpisode(ctx, serie.Slug, "season-1", EpisodeInput{Title: "The Pilot!", Plot: "plot", Number: 1})
	require.NoError(t, err)
	assert.Equal(t, "the-pilot", created.Slug)

	episode, err := f.service.GetEpisode(ctx, serie.Slug, "season-1", "the-pilot")
	require.NoError(t, err)
	assert.Equal(t, created.ID, episode.ID)
}

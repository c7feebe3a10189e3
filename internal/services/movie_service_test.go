package services

import (
	"context"
	"testing"
	"time"

	"streamhub-backend/internal/models"
	"streamhub-backend/internal/repository"
	"streamhub-backend/internal/validators"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type movieFixture struct {
	service   *MovieService
	storage   *fakeStorage
	announcer *fakeAnnouncer
	genres    repository.GenreRepository
	db        *gorm.DB
}

func newMovieFixture(t *testing.T) *movieFixture {
	db := newTestDB(t)
	storage := &fakeStorage{}
	announcer := &fakeAnnouncer{}
	movies := repository.NewMovieRepository(db, testTimeout)
	genres := repository.NewGenreRepository(db, testTimeout)

	return &movieFixture{
		service:   NewMovieService(movies, genres, storage, announcer, newTestLogger()),
		storage:   storage,
		announcer: announcer,
		genres:    genres,
		db:        db,
	}
}

func (f *movieFixture) seedGenre(t *testing.T, name string) *models.Genre {
	t.Helper()
	genre := &models.Genre{Name: name}
	require.NoError(t, f.genres.Create(context.Background(), genre))
	return genre
}

func validMovieInput(genreID string) MovieInput {
	return MovieInput{
		Title:       "Heat",
		Plot:        "A heist crew against a relentless detective.",
		ReleaseDate: time.Date(1995, 12, 15, 0, 0, 0, 0, time.UTC),
		Runtime:     170,
		Country:     "USA",
		GenreIDs:    []string{genreID},
	}
}

func TestCreateMovieUploadsAndBroadcasts(t *testing.T) {
	f := newMovieFixture(t)
	genre := f.seedGenre(t, "Crime")
	ctx := context.Background()

	movie, violations, err := f.service.Create(ctx, validMovieInput(genre.ID.String()), testImage("poster.png"), testImage("backdrop.png"), nil)
	require.NoError(t, err)
	require.True(t, violations.Empty())

	assert.Equal(t, "heat", movie.Slug)
	assert.Equal(t, 2, f.storage.uploads)
	assert.NotEmpty(t, movie.Poster.URL)
	assert.NotEmpty(t, movie.Backdrop.URL)
	require.Len(t, movie.Genres, 1)

	require.Len(t, f.announcer.events, 1)
	assert.Equal(t, "Heat", f.announcer.events[0].Title)
	assert.Equal(t, movie.Poster.URL, f.announcer.events[0].Poster)
}

func TestCreateMovieCollectsViolations(t *testing.T) {
	f := newMovieFixture(t)
	genre := f.seedGenre(t, "Crime")
	ctx := context.Background()

	_, _, err := f.service.Create(ctx, validMovieInput(genre.ID.String()), testImage("p.png"), testImage("b.png"), nil)
	require.NoError(t, err)

	// Missing images, duplicate title and a missing required field are all
	// reported in a single response, and nothing gets uploaded.
	uploadsBefore := f.storage.uploads
	input := validMovieInput(genre.ID.String())
	input.Country = ""

	movie, violations, err := f.service.Create(ctx, input, nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, movie)
	assert.Equal(t, uploadsBefore, f.storage.uploads)

	params := make([]string, 0, len(violations))
	for _, v := range violations {
		params = append(params, v.Param)
	}
	assert.Contains(t, params, "poster")
	assert.Contains(t, params, "backdrop")
	assert.Contains(t, params, "title")
	assert.Contains(t, params, "country")
}

func TestCreateMovieUnknownGenre(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	input := validMovieInput("b3f1f1f0-0000-4000-8000-000000000000")
	_, violations, err := f.service.Create(ctx, input, testImage("p.png"), testImage("b.png"), nil)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "genres", violations[0].Param)
}

func TestCreateMovieMergesFormViolations(t *testing.T) {
	f := newMovieFixture(t)
	genre := f.seedGenre(t, "Crime")
	ctx := context.Background()

	// A runtime that failed form coercion arrives as a ready-made
	// violation alongside an input that also misses its title.
	var form validators.Violations
	form.AddWithValue("runtime", "abc", "Runtime must be a number")

	input := validMovieInput(genre.ID.String())
	input.Runtime = 0
	input.Title = ""

	movie, violations, err := f.service.Create(ctx, input, testImage("p.png"), testImage("b.png"), form)
	require.NoError(t, err)
	assert.Nil(t, movie)
	assert.Zero(t, f.storage.uploads)

	params := make([]string, 0, len(violations))
	runtimeReports := 0
	for _, v := range violations {
		params = append(params, v.Param)
		if v.Param == "runtime" {
			runtimeReports++
			assert.Equal(t, "Runtime must be a number", v.Msg)
		}
	}
	assert.Contains(t, params, "title")
	// The coerced field is reported once, with the coercion message.
	assert.Equal(t, 1, runtimeReports)
}

func TestUpdateMovieReplacesPoster(t *testing.T) {
	f := newMovieFixture(t)
	genre := f.seedGenre(t, "Crime")
	ctx := context.Background()

	movie, _, err := f.service.Create(ctx, validMovieInput(genre.ID.String()), testImage("poster.png"), testImage("backdrop.png"), nil)
	require.NoError(t, err)
	oldPosterID := movie.Poster.ID

	input := validMovieInput(genre.ID.String())
	input.Plot = "Updated plot."
	updated, violations, err := f.service.Update(ctx, movie.ID, input, testImage("poster2.png"), nil, nil)
	require.NoError(t, err)
	require.True(t, violations.Empty())

	// Old poster destroyed at the host, backdrop untouched, slug stable.
	assert.Equal(t, []string{oldPosterID}, f.storage.deleted)
	assert.NotEqual(t, oldPosterID, updated.Poster.ID)
	assert.Equal(t, movie.Backdrop.ID, updated.Backdrop.ID)
	assert.Equal(t, "heat", updated.Slug)
	assert.Equal(t, "Updated plot.", updated.Plot)
}

func TestDeleteMovieDestroysBothAssets(t *testing.T) {
	f := newMovieFixture(t)
	genre := f.seedGenre(t, "Crime")
	ctx := context.Background()

	movie, _, err := f.service.Create(ctx, validMovieInput(genre.ID.String()), testImage("poster.png"), testImage("backdrop.png"), nil)
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, movie.ID))

	require.Len(t, f.storage.deleted, 2)
	assert.Contains(t, f.storage.deleted, movie.Poster.ID)
	assert.Contains(t, f.storage.deleted, movie.Backdrop.ID)

	_, err = f.service.Get(ctx, movie.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteMovieUnknown(t *testing.T) {
	f := newMovieFixture(t)

	err := f.service.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, f.storage.deleted)
}

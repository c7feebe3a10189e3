package services

import (
	"context"
	"testing"
	"time"

	"streamhub-backend/internal/models"
	"streamhub-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collectionFixture struct {
	service *CollectionService
	movies  repository.MovieRepository
	series  repository.SerieRepository
}

func newCollectionFixture(t *testing.T) *collectionFixture {
	db := newTestDB(t)
	collections := repository.NewCollectionRepository(db, testTimeout)
	movies := repository.NewMovieRepository(db, testTimeout)
	series := repository.NewSerieRepository(db, testTimeout)

	return &collectionFixture{
		service: NewCollectionService(collections, movies, series, newTestLogger()),
		movies:  movies,
		series:  series,
	}
}

func (f *collectionFixture) seedMovie(t *testing.T, title string) *models.Movie {
	t.Helper()
	movie := &models.Movie{Title: title, Plot: "plot", ReleaseDate: time.Now(), Runtime: 100, Country: "USA"}
	require.NoError(t, f.movies.Create(context.Background(), movie))
	return movie
}

func (f *collectionFixture) seedSerie(t *testing.T, title string) *models.Serie {
	t.Helper()
	serie := &models.Serie{Title: title, Plot: "plot", ReleaseDate: time.Now(), Country: "USA"}
	require.NoError(t, f.series.Create(context.Background(), serie))
	return serie
}

func TestCreateCollectionMixedContent(t *testing.T) {
	f := newCollectionFixture(t)
	movie := f.seedMovie(t, "Heat")
	serie := f.seedSerie(t, "Show")
	ctx := context.Background()

	collection, violations, err := f.service.Create(ctx, CollectionInput{
		Name: "Staff Picks",
		Items: []CollectionItemInput{
			{ContentID: movie.ID.String(), ContentType: "movie"},
			{ContentID: serie.ID.String(), ContentType: "serie"},
		},
	})
	require.NoError(t, err)
	require.True(t, violations.Empty())

	resolved, err := f.service.Get(ctx, collection.ID)
	require.NoError(t, err)
	require.Len(t, resolved.Items, 2)

	assert.Equal(t, models.ContentTypeMovie, resolved.Items[0].ContentType)
	assert.IsType(t, &models.Movie{}, resolved.Items[0].Content)
	assert.Equal(t, models.ContentTypeSerie, resolved.Items[1].ContentType)
	assert.IsType(t, &models.Serie{}, resolved.Items[1].Content)
}

func TestCreateCollectionRejectsBadItems(t *testing.T) {
	f := newCollectionFixture(t)
	movie := f.seedMovie(t, "Heat")

	_, violations, err := f.service.Create(context.Background(), CollectionInput{
		Name: "Staff Picks",
		Items: []CollectionItemInput{
			{ContentID: movie.ID.String(), ContentType: "book"},
			{ContentID: "not-a-uuid", ContentType: "movie"},
			{ContentID: uuid.New().String(), ContentType: "movie"},
		},
	})
	require.NoError(t, err)
	require.Len(t, violations, 3)
	for _, v := range violations {
		assert.Equal(t, "contentItems", v.Param)
	}
}

func TestCollectionResolutionSkipsDeletedContent(t *testing.T) {
	f := newCollectionFixture(t)
	kept := f.seedMovie(t, "Kept")
	doomed := f.seedMovie(t, "Doomed")
	ctx := context.Background()

	collection, violations, err := f.service.Create(ctx, CollectionInput{
		Name: "Staff Picks",
		Items: []CollectionItemInput{
			{ContentID: kept.ID.String(), ContentType: "movie"},
			{ContentID: doomed.ID.String(), ContentType: "movie"},
		},
	})
	require.NoError(t, err)
	require.True(t, violations.Empty())

	require.NoError(t, f.movies.Delete(ctx, doomed.ID))

	resolved, err := f.service.Get(ctx, collection.ID)
	require.NoError(t, err)
	require.Len(t, resolved.Items, 1)
	assert.Equal(t, kept.ID, resolved.Items[0].Content.(*models.Movie).ID)
}

func TestUpdateCollectionReplacesItems(t *testing.T) {
	f := newCollectionFixture(t)
	first := f.seedMovie(t, "First")
	second := f.seedMovie(t, "Second")
	ctx := context.Background()

	collection, _, err := f.service.Create(ctx, CollectionInput{
		Name:  "Staff Picks",
		Items: []CollectionItemInput{{ContentID: first.ID.String(), ContentType: "movie"}},
	})
	require.NoError(t, err)

	_, violations, err := f.service.Update(ctx, collection.ID, CollectionInput{
		Name:  "Editor Picks",
		Items: []CollectionItemInput{{ContentID: second.ID.String(), ContentType: "movie"}},
	})
	require.NoError(t, err)
	require.True(t, violations.Empty())

	resolved, err := f.service.Get(ctx, collection.ID)
	require.NoError(t, err)
	assert.Equal(t, "Editor Picks", resolved.Name)
	require.Len(t, resolved.Items, 1)
	assert.Equal(t, second.ID, resolved.Items[0].Content.(*models.Movie).ID)
}

func TestDeleteCollectionLeavesContent(t *testing.T) {
	f := newCollectionFixture(t)
	movie := f.seedMovie(t, "Heat")
	ctx := context.Background()

	collection, _, err := f.service.Create(ctx, CollectionInput{
		Name:  "Staff Picks",
		Items: []CollectionItemInput{{ContentID: movie.ID.String(), ContentType: "movie"}},
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, collection.ID))

	_, err = f.service.Get(ctx, collection.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// The referenced movie survives the collection.
	_, err = f.movies.FindByID(ctx, movie.ID)
	assert.NoError(t, err)
}

package repository

import (
	"context"
	"testing"
	"time"

	"streamhub-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSerie(t *testing.T, repo SerieRepository, title string) *models.Serie {
	t.Helper()
	serie := &models.Serie{
		Title:       title,
		Plot:        "plot",
		ReleaseDate: time.Now(),
		Country:     "USA",
	}
	require.NoError(t, repo.Create(context.Background(), serie))
	return serie
}

func TestSerieFindBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewSerieRepository(db, testTimeout)
	ctx := context.Background()

	serie := seedSerie(t, repo, "Breaking Point")
	require.Equal(t, "breaking-point", serie.Slug)

	found, err := repo.FindBySlug(ctx, "breaking-point")
	require.NoError(t, err)
	assert.Equal(t, serie.ID, found.ID)

	_, err = repo.FindBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSerieToggleReactionReturnsFreshState(t *testing.T) {
	db := newTestDB(t)
	repo := NewSerieRepository(db, testTimeout)
	ctx := context.Background()

	serie := seedSerie(t, repo, "Breaking Point")
	userID := uuid.New()

	result, err := repo.ToggleReaction(ctx, serie.ID, userID, models.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{userID}, result.Likes)

	result, err = repo.ToggleReaction(ctx, serie.ID, userID, models.ReactionLike)
	require.NoError(t, err)
	assert.Empty(t, result.Likes)
}

func TestSeasonSlugScopedToSerie(t *testing.T) {
	db := newTestDB(t)
	series := NewSerieRepository(db, testTimeout)
	seasons := NewSeasonRepository(db, testTimeout)
	ctx := context.Background()

	first := seedSerie(t, series, "First Show")
	second := seedSerie(t, series, "Second Show")

	// Both series may hold a season-1; the slug is only unique per serie.
	require.NoError(t, seasons.Create(ctx, &models.Season{Number: 1, SerieID: first.ID, ReleaseDate: time.Now()}))
	require.NoError(t, seasons.Create(ctx, &models.Season{Number: 1, SerieID: second.ID, ReleaseDate: time.Now()}))

	found, err := seasons.FindBySlug(ctx, first.ID, "season-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.SerieID)

	_, err = seasons.FindBySlug(ctx, first.ID, "season-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEpisodesOrderedByNumber(t *testing.T) {
	db := newTestDB(t)
	series := NewSerieRepository(db, testTimeout)
	seasons := NewSeasonRepository(db, testTimeout)
	episodes := NewEpisodeRepository(db, testTimeout)
	ctx := context.Background()

	serie := seedSerie(t, series, "Show")
	season := &models.Season{Number: 1, SerieID: serie.ID, ReleaseDate: time.Now()}
	require.NoError(t, seasons.Create(ctx, season))

	require.NoError(t, episodes.Create(ctx, &models.Episode{Title: "Finale", Number: 2, SeasonID: season.ID}))
	require.NoError(t, episodes.Create(ctx, &models.Episode{Title: "Pilot", Number: 1, SeasonID: season.ID}))

	list, err := episodes.FindBySeason(ctx, season.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Pilot", list[0].Title)
	assert.Equal(t, "Finale", list[1].Title)
}

package services

import (
	"context"
	"testing"

	"streamhub-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenreService(t *testing.T) *GenreService {
	db := newTestDB(t)
	return NewGenreService(repository.NewGenreRepository(db, testTimeout), newTestLogger())
}

func TestCreateGenreDuplicateName(t *testing.T) {
	service := newGenreService(t)
	ctx := context.Background()

	_, violations, err := service.Create(ctx, GenreInput{Name: "Drama"})
	require.NoError(t, err)
	require.True(t, violations.Empty())

	_, violations, err = service.Create(ctx, GenreInput{Name: "Drama"})
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "name", violations[0].Param)
}

func TestUpdateGenreKeepsOwnName(t *testing.T) {
	service := newGenreService(t)
	ctx := context.Background()

	genre, _, err := service.Create(ctx, GenreInput{Name: "Drama"})
	require.NoError(t, err)

	// Renaming a genre to its current name is not a duplicate.
	updated, violations, err := service.Update(ctx, genre.ID, GenreInput{Name: "Drama"})
	require.NoError(t, err)
	assert.True(t, violations.Empty())
	assert.Equal(t, "Drama", updated.Name)
}

func TestGenreNotFound(t *testing.T) {
	service := newGenreService(t)

	_, err := service.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = service.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

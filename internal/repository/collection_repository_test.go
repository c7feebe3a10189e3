package repository

import (
	"context"
	"testing"

	"streamhub-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionItemsKeepOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewCollectionRepository(db, testTimeout)
	ctx := context.Background()

	collection := &models.Collection{
		Name: "Staff Picks",
		Items: []models.CollectionItem{
			{Position: 0, ContentID: uuid.New(), ContentType: models.ContentTypeMovie},
			{Position: 1, ContentID: uuid.New(), ContentType: models.ContentTypeSerie},
			{Position: 2, ContentID: uuid.New(), ContentType: models.ContentTypeMovie},
		},
	}
	require.NoError(t, repo.Create(ctx, collection))

	found, err := repo.FindByID(ctx, collection.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 3)
	for i, item := range found.Items {
		assert.Equal(t, i, item.Position)
	}
}

func TestCollectionUpdateReplacesItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewCollectionRepository(db, testTimeout)
	ctx := context.Background()

	collection := &models.Collection{
		Name: "Staff Picks",
		Items: []models.CollectionItem{
			{Position: 0, ContentID: uuid.New(), ContentType: models.ContentTypeMovie},
			{Position: 1, ContentID: uuid.New(), ContentType: models.ContentTypeMovie},
		},
	}
	require.NoError(t, repo.Create(ctx, collection))

	replacement := uuid.New()
	collection.Name = "Editor Picks"
	collection.Items = []models.CollectionItem{
		{CollectionID: collection.ID, Position: 0, ContentID: replacement, ContentType: models.ContentTypeSerie},
	}
	require.NoError(t, repo.Update(ctx, collection))

	found, err := repo.FindByID(ctx, collection.ID)
	require.NoError(t, err)
	assert.Equal(t, "Editor Picks", found.Name)
	require.Len(t, found.Items, 1)
	assert.Equal(t, replacement, found.Items[0].ContentID)
}

func TestCollectionDeleteRemovesItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewCollectionRepository(db, testTimeout)
	ctx := context.Background()

	collection := &models.Collection{
		Name: "Staff Picks",
		Items: []models.CollectionItem{
			{Position: 0, ContentID: uuid.New(), ContentType: models.ContentTypeMovie},
		},
	}
	require.NoError(t, repo.Create(ctx, collection))
	require.NoError(t, repo.Delete(ctx, collection.ID))

	_, err := repo.FindByID(ctx, collection.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.CollectionItem{}).Where("collection_id = ?", collection.ID).Count(&count).Error)
	assert.Zero(t, count)
}

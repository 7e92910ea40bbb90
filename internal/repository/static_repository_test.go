package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CoastRisk-App/internal/domain/model"
)

func TestStaticLayerCatalogRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("デフォルトカタログ", func(t *testing.T) {
		repo := NewStaticLayerCatalogRepository(nil)
		layers, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, layers, 3)
		assert.Equal(t, "2030", layers[0].Key)
		assert.Equal(t, "#003B5C", layers[2].Color)

		def, err := repo.GetByKey(ctx, "2040")
		require.NoError(t, err)
		assert.Equal(t, "risk_zone_2040.json", def.SourceURL)

		_, err = repo.GetByKey(ctx, "2100")
		assert.ErrorIs(t, err, model.ErrLayerNotFound)
	})

	t.Run("表示順で並べる", func(t *testing.T) {
		repo := NewStaticLayerCatalogRepository([]model.LayerDefinition{
			{Key: "b", SortOrder: 2},
			{Key: "a", SortOrder: 1},
		})
		layers, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "a", layers[0].Key)

		// 返した配列の変更はカタログに影響しない
		layers[0].Key = "changed"
		again, _ := repo.GetAll(ctx)
		assert.Equal(t, "a", again[0].Key)
	})
}

func TestStaticStoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStaticStoryRepository()

	story, err := repo.GetByID(ctx, DefaultStoryID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2030", "2040", "2050"}, story.LayerKeys())

	story.Waypoints[0].LayerKey = "changed"
	again, err := repo.GetByID(ctx, DefaultStoryID)
	require.NoError(t, err)
	assert.Equal(t, "2030", again.Waypoints[0].LayerKey)

	_, err = repo.GetByID(ctx, "unknown")
	assert.ErrorIs(t, err, model.ErrStoryNotFound)
}

package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CoastRisk-App/internal/domain/model"
	"CoastRisk-App/internal/repository"
)

func TestStoryUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewStoryUseCase(repository.NewStaticStoryRepository())

	t.Run("組み込みストーリー", func(t *testing.T) {
		story, err := uc.GetStory(ctx, repository.DefaultStoryID)
		require.NoError(t, err)
		assert.Len(t, story.Waypoints, 3)
	})

	t.Run("ステップ", func(t *testing.T) {
		step, err := uc.GetStep(ctx, repository.DefaultStoryID, 1)
		require.NoError(t, err)
		assert.Equal(t, "2040", step.ShowLayer)
		assert.Equal(t, []string{"2030", "2050"}, step.HideLayers)
	})

	t.Run("存在しないストーリー", func(t *testing.T) {
		_, err := uc.GetStep(ctx, "unknown", 0)
		assert.ErrorIs(t, err, model.ErrStoryNotFound)
	})

	t.Run("範囲外", func(t *testing.T) {
		_, err := uc.GetStep(ctx, repository.DefaultStoryID, 3)
		assert.ErrorIs(t, err, model.ErrWaypointOutOfRange)
	})
}

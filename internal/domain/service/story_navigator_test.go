package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CoastRisk-App/internal/domain/model"
)

func testStory() *model.Story {
	return &model.Story{
		ID:    "test",
		Title: "テスト",
		Waypoints: []model.Waypoint{
			{Index: 0, Title: "2030", LayerKey: "2030", Zoom: 8, Center: model.Location{Latitude: 24.3, Longitude: 67.5}},
			{Index: 1, Title: "2050", LayerKey: "2050", Zoom: 9, Pitch: 45},
			{Index: 2, Title: "2040", LayerKey: "2040", Bearing: 30},
		},
	}
}

func TestStoryNavigator_Step(t *testing.T) {
	n := NewStoryNavigator()
	story := testStory()

	t.Run("最初のウェイポイント", func(t *testing.T) {
		step, err := n.Step(story, 0)
		require.NoError(t, err)
		assert.Equal(t, "2030", step.ShowLayer)
		assert.Equal(t, []string{"2040", "2050"}, step.HideLayers)
		assert.Equal(t, model.Location{Latitude: 24.3, Longitude: 67.5}, step.Camera.Center)
		assert.Equal(t, 8.0, step.Camera.Zoom)
		assert.False(t, step.HasPrev)
		assert.True(t, step.HasNext)
		assert.Equal(t, 3, step.Total)
	})

	t.Run("最後のウェイポイント", func(t *testing.T) {
		step, err := n.Step(story, 2)
		require.NoError(t, err)
		assert.Equal(t, "2040", step.ShowLayer)
		assert.Equal(t, []string{"2030", "2050"}, step.HideLayers)
		assert.Equal(t, 30.0, step.Camera.Bearing)
		assert.True(t, step.HasPrev)
		assert.False(t, step.HasNext)
	})

	t.Run("範囲外", func(t *testing.T) {
		for _, i := range []int{-1, 3, 100} {
			_, err := n.Step(story, i)
			assert.True(t, errors.Is(err, model.ErrWaypointOutOfRange), "index %d", i)
		}
	})

	t.Run("nilのストーリー", func(t *testing.T) {
		_, err := n.Step(nil, 0)
		assert.ErrorIs(t, err, model.ErrStoryNotFound)
	})

	t.Run("レイヤーが1つならHideLayersは空配列", func(t *testing.T) {
		step, err := n.Step(&model.Story{Waypoints: []model.Waypoint{{LayerKey: "2030"}}}, 0)
		require.NoError(t, err)
		assert.NotNil(t, step.HideLayers)
		assert.Empty(t, step.HideLayers)
	})
}

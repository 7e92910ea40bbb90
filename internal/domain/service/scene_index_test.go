package service

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CoastRisk-App/internal/domain/model"
)

func square(index int, x, y, size float64) model.ProjectedRing {
	return model.ProjectedRing{
		FeatureIndex: index,
		Points:       orb.Ring{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}},
	}
}

func testLayers() []model.Layer {
	return []model.Layer{
		{Key: "2030", Rings: []model.ProjectedRing{square(0, 0, 0, 10), square(4, 20, 20, 5)}},
		{Key: "2040", Rings: []model.ProjectedRing{square(2, 5, 5, 10), square(1, 0, 0, 100)}},
		{Key: "2050", Rings: []model.ProjectedRing{{FeatureIndex: 0}}},
	}
}

func TestSceneIndex(t *testing.T) {
	idx := NewSceneIndex(testLayers())

	t.Run("空のリングは格納しない", func(t *testing.T) {
		assert.Equal(t, 4, idx.Size())
	})

	t.Run("レイヤー内で交差するリングをフィーチャー順に返す", func(t *testing.T) {
		got := idx.Search("2040", orb.Bound{Min: orb.Point{6, 6}, Max: orb.Point{8, 8}})
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].FeatureIndex)
		assert.Equal(t, 2, got[1].FeatureIndex)

		got = idx.Search("2030", orb.Bound{Min: orb.Point{21, 21}, Max: orb.Point{22, 22}})
		require.Len(t, got, 1)
		assert.Equal(t, 4, got[0].FeatureIndex)
	})

	t.Run("範囲外は空", func(t *testing.T) {
		assert.Empty(t, idx.Search("2030", orb.Bound{Min: orb.Point{500, 500}, Max: orb.Point{600, 600}}))
		assert.Empty(t, idx.Search("unknown", orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{100, 100}}))
	})

	t.Run("点を含むリングをレイヤー順に返す", func(t *testing.T) {
		hits := idx.Containing(orb.Point{7, 7})
		require.Len(t, hits, 3)
		assert.Equal(t, "2030", hits[0].LayerKey)
		assert.Equal(t, "2040", hits[1].LayerKey)
		assert.Equal(t, 1, hits[1].Ring.FeatureIndex)
		assert.Equal(t, "2040", hits[2].LayerKey)
		assert.Equal(t, 2, hits[2].Ring.FeatureIndex)
	})

	t.Run("境界ボックス内でもリング外なら含まない", func(t *testing.T) {
		tri := NewSceneIndex([]model.Layer{{
			Key:   "tri",
			Rings: []model.ProjectedRing{{Points: orb.Ring{{0, 0}, {10, 0}, {0, 10}}}},
		}})
		assert.Len(t, tri.Containing(orb.Point{1, 1}), 1)
		assert.Empty(t, tri.Containing(orb.Point{9, 9}))
	})

	t.Run("元のリングを変更しない", func(t *testing.T) {
		layers := testLayers()
		NewSceneIndex(layers).Containing(orb.Point{1, 1})
		assert.Len(t, layers[0].Rings[0].Points, 4)
	})
}

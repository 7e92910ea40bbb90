package repository

import (
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"CoastRisk-App/internal/domain/model"
)

func TestFlattenRing(t *testing.T) {
	ring := orb.Ring{{1, 2}, {3, 4}, {5, 6}}
	flat := FlattenRing(ring)

	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, flat)
	assert.Equal(t, ring, UnflattenRing(flat))
	assert.Equal(t, orb.Ring{{1, 2}}, UnflattenRing([]float64{1, 2, 3}))
	assert.Empty(t, UnflattenRing(nil))
}

func TestSliceToBound(t *testing.T) {
	b := orb.Bound{Min: orb.Point{-1, -2}, Max: orb.Point{3, 4}}
	assert.Equal(t, &b, SliceToBound(BoundToSlice(&b)))
	assert.Nil(t, SliceToBound([]float64{1, 2}))
	assert.Nil(t, BoundToSlice(nil))
}

func TestSceneFirestoreConversion(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	scene := &model.Scene{
		ID:     "scene-1",
		Origin: model.Origin{MinX: 7458405.8, MinY: 2753408.1},
		Scale:  0.01,
		Layers: []model.Layer{{
			Key:               "2030",
			Label:             "2030 Risk Zone",
			Color:             "#56B4E9",
			PopupText:         "2030 Risk Zone: Baseline Inundation Area",
			FeatureCount:      3,
			SkippedFeatures:   1,
			MalformedFeatures: 1,
			Bound:             &orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}},
			Rings: []model.ProjectedRing{
				{FeatureIndex: 0, Points: orb.Ring{{0, 0}, {10, 0}, {10, 10}}},
				{FeatureIndex: 2, Points: orb.Ring{{1, 1}, {2, 1}, {2, 2}, {1, 2}}},
			},
		}},
		MissingLayers: []model.LayerFailure{{Key: "2040", Source: "risk_zone_2040.json", Message: "404"}},
		CreatedAt:     created,
		ExpireAt:      created.Add(2 * time.Hour),
	}

	fs := SceneToFirestore(scene)
	assert.Equal(t, []float64{0, 0, 10, 0, 10, 10}, fs.Layers[0].Rings[0].Coordinates)
	assert.Equal(t, []float64{0, 0, 10, 10}, fs.Layers[0].Bound)

	assert.Equal(t, scene, FirestoreToScene("scene-1", fs))

	// リングのないレイヤーは境界なしのまま戻る
	scene.Layers[0].Bound = nil
	scene.Layers[0].Rings = []model.ProjectedRing{}
	fs = SceneToFirestore(scene)
	assert.Nil(t, fs.Layers[0].Bound)
	assert.Equal(t, scene, FirestoreToScene("scene-1", fs))
}

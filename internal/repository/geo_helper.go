package repository

import (
	"github.com/paulmach/orb"

	"CoastRisk-App/internal/domain/model"
)

// FlattenRing orb.Ring を [x0, y0, x1, y1, ...] に変換
func FlattenRing(ring orb.Ring) []float64 {
	coords := make([]float64, 0, len(ring)*2)
	for _, p := range ring {
		coords = append(coords, p.X(), p.Y())
	}
	return coords
}

// UnflattenRing [x0, y0, x1, y1, ...] を orb.Ring に戻す（端数の座標は捨てる）
func UnflattenRing(coords []float64) orb.Ring {
	ring := make(orb.Ring, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		ring = append(ring, orb.Point{coords[i], coords[i+1]})
	}
	return ring
}

// BoundToSlice orb.Bound を [minX, minY, maxX, maxY] に変換（nil は nil）
func BoundToSlice(b *orb.Bound) []float64 {
	if b == nil {
		return nil
	}
	return []float64{b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y()}
}

// SliceToBound [minX, minY, maxX, maxY] を orb.Bound に戻す（4要素未満は nil）
func SliceToBound(s []float64) *orb.Bound {
	if len(s) < 4 {
		return nil
	}
	return &orb.Bound{
		Min: orb.Point{s[0], s[1]},
		Max: orb.Point{s[2], s[3]},
	}
}

// SceneToFirestore model.Scene を Firestore 保存用に変換
func SceneToFirestore(scene *model.Scene) *model.FirestoreScene {
	layers := make([]model.FirestoreLayer, len(scene.Layers))
	for i, l := range scene.Layers {
		rings := make([]model.FirestoreRing, len(l.Rings))
		for j, r := range l.Rings {
			rings[j] = model.FirestoreRing{
				FeatureIndex: r.FeatureIndex,
				Coordinates:  FlattenRing(r.Points),
			}
		}
		layers[i] = model.FirestoreLayer{
			Key:               l.Key,
			Label:             l.Label,
			Color:             l.Color,
			PopupText:         l.PopupText,
			FeatureCount:      l.FeatureCount,
			SkippedFeatures:   l.SkippedFeatures,
			MalformedFeatures: l.MalformedFeatures,
			Bound:             BoundToSlice(l.Bound),
			Rings:             rings,
		}
	}

	return &model.FirestoreScene{
		Origin:        scene.Origin,
		Scale:         scene.Scale,
		Layers:        layers,
		MissingLayers: scene.MissingLayers,
		CreatedAt:     scene.CreatedAt,
		ExpireAt:      scene.ExpireAt,
	}
}

// FirestoreToScene Firestore のデータを model.Scene に戻す
func FirestoreToScene(id string, fs *model.FirestoreScene) *model.Scene {
	layers := make([]model.Layer, len(fs.Layers))
	for i, l := range fs.Layers {
		rings := make([]model.ProjectedRing, len(l.Rings))
		for j, r := range l.Rings {
			rings[j] = model.ProjectedRing{
				FeatureIndex: r.FeatureIndex,
				Points:       UnflattenRing(r.Coordinates),
			}
		}
		layers[i] = model.Layer{
			Key:               l.Key,
			Label:             l.Label,
			Color:             l.Color,
			PopupText:         l.PopupText,
			FeatureCount:      l.FeatureCount,
			SkippedFeatures:   l.SkippedFeatures,
			MalformedFeatures: l.MalformedFeatures,
			Bound:             SliceToBound(l.Bound),
			Rings:             rings,
		}
	}

	return &model.Scene{
		ID:            id,
		Origin:        fs.Origin,
		Scale:         fs.Scale,
		Layers:        layers,
		MissingLayers: fs.MissingLayers,
		CreatedAt:     fs.CreatedAt,
		ExpireAt:      fs.ExpireAt,
	}
}

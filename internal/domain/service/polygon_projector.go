package service

import (
	"iter"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"CoastRisk-App/internal/domain/helper"
	"CoastRisk-App/internal/domain/model"
)

// minRingPoints 描画可能なリングに必要な最小点数
const minRingPoints = 3

// PolygonProjector 地理座標のポリゴンを Origin 基準の平面リングに変換する
type PolygonProjector struct {
	project orb.Projection
}

// NewPolygonProjector 投影関数を指定して PolygonProjector を作成（nil の場合は WebMercator）
func NewPolygonProjector(projection orb.Projection) *PolygonProjector {
	if projection == nil {
		projection = WebMercator
	}
	return &PolygonProjector{project: projection}
}

// ComputeOrigin 全コレクションの全リングを投影し、有限な点の最小 x, y を返す
// 同じシーンに描画するコレクションはすべてまとめて渡すこと
func (p *PolygonProjector) ComputeOrigin(collections []*geojson.FeatureCollection) (model.Origin, error) {
	minX, minY := math.Inf(1), math.Inf(1)
	valid := 0

	for _, fc := range collections {
		if fc == nil {
			continue
		}
		for _, f := range fc.Features {
			for _, ring := range helper.PolygonRings(f) {
				for _, pt := range ring {
					if !helper.IsFinitePoint(pt) {
						continue
					}
					projected := p.project(pt)
					if !helper.IsFinitePoint(projected) {
						continue
					}
					valid++
					minX = math.Min(minX, projected[0])
					minY = math.Min(minY, projected[1])
				}
			}
		}
	}

	if valid == 0 {
		return model.Origin{}, &model.NoValidGeometryError{Collections: len(collections)}
	}

	return model.Origin{MinX: minX, MinY: minY}, nil
}

// ProjectPoint 1点を投影し、Origin を引いて scale 倍する
// 入力または投影結果が有限でない場合は false
func (p *PolygonProjector) ProjectPoint(pt orb.Point, origin model.Origin, scale float64) (orb.Point, bool) {
	if !helper.IsFinitePoint(pt) {
		return orb.Point{}, false
	}
	projected := p.project(pt)
	if !helper.IsFinitePoint(projected) {
		return orb.Point{}, false
	}
	return orb.Point{
		(projected[0] - origin.MinX) * scale,
		(projected[1] - origin.MinY) * scale,
	}, true
}

// ProjectRing リングを投影し、Origin を引いて scale 倍する
// 有限な点が3点未満になった場合は (nil, false)
func (p *PolygonProjector) ProjectRing(ring orb.Ring, origin model.Origin, scale float64) (orb.Ring, bool) {
	out := make(orb.Ring, 0, len(ring))
	for _, pt := range ring {
		if projected, ok := p.ProjectPoint(pt, origin, scale); ok {
			out = append(out, projected)
		}
	}

	if len(out) < minRingPoints {
		return nil, false
	}
	return out, true
}

// ProjectFeatureCollection 各フィーチャーの外周リングを入力順に投影する
// ジオメトリのないフィーチャーと縮退リングは読み飛ばす
func (p *PolygonProjector) ProjectFeatureCollection(fc *geojson.FeatureCollection, origin model.Origin, scale float64) iter.Seq[model.ProjectedRing] {
	return func(yield func(model.ProjectedRing) bool) {
		if fc == nil {
			return
		}
		for i, f := range fc.Features {
			ring, ok := helper.OuterRing(f)
			if !ok {
				continue
			}
			projected, ok := p.ProjectRing(ring, origin, scale)
			if !ok {
				continue
			}
			if !yield(model.ProjectedRing{FeatureIndex: i, Points: projected}) {
				return
			}
		}
	}
}

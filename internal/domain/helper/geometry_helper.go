package helper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// IsFinite NaN・±Inf でないかチェック
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsFinitePoint x, y がともに有限値かチェック
func IsFinitePoint(p orb.Point) bool {
	return IsFinite(p[0]) && IsFinite(p[1])
}

// OuterRing フィーチャーの最初（外周）のリングを返す
// ジオメトリがない、リングがない、ポリゴン以外の場合は false
func OuterRing(f *geojson.Feature) (orb.Ring, bool) {
	if f == nil || f.Geometry == nil {
		return nil, false
	}

	switch g := f.Geometry.(type) {
	case orb.Polygon:
		if len(g) == 0 {
			return nil, false
		}
		return g[0], true
	case orb.MultiPolygon:
		// 最初のポリゴンの外周のみを使用する
		if len(g) == 0 || len(g[0]) == 0 {
			return nil, false
		}
		return g[0][0], true
	default:
		return nil, false
	}
}

// PolygonRings フィーチャーの全リング（穴・マルチポリゴンの各要素を含む）を返す
func PolygonRings(f *geojson.Feature) []orb.Ring {
	if f == nil || f.Geometry == nil {
		return nil
	}

	switch g := f.Geometry.(type) {
	case orb.Polygon:
		return g
	case orb.MultiPolygon:
		var rings []orb.Ring
		for _, p := range g {
			rings = append(rings, p...)
		}
		return rings
	default:
		return nil
	}
}

// rawFeatureCollection フィーチャーを個別に解析するためのエンベロープ
type rawFeatureCollection struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}

// DecodeFeatureCollection GeoJSON FeatureCollection を解析する
// 解析できないフィーチャーは除外し、その件数を返す（コレクション全体はエラーにしない）
func DecodeFeatureCollection(data []byte) (*geojson.FeatureCollection, int, error) {
	var raw rawFeatureCollection
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("GeoJSONの解析に失敗: %w", err)
	}
	if raw.Type != "FeatureCollection" {
		return nil, 0, fmt.Errorf("FeatureCollectionではありません: type=%q", raw.Type)
	}

	fc := geojson.NewFeatureCollection()
	malformed := 0
	for _, rf := range raw.Features {
		if len(bytes.TrimSpace(rf)) == 0 || bytes.Equal(bytes.TrimSpace(rf), []byte("null")) {
			malformed++
			continue
		}

		f, err := geojson.UnmarshalFeature(rf)
		if err != nil {
			malformed++
			continue
		}
		fc.Append(f)
	}

	return fc, malformed, nil
}

// LimitFeatures 先頭 limit 件に制限したコレクションを返す（limit <= 0 は無制限）
// 元のコレクションは変更しない
func LimitFeatures(fc *geojson.FeatureCollection, limit int) *geojson.FeatureCollection {
	if fc == nil || limit <= 0 || len(fc.Features) <= limit {
		return fc
	}

	limited := geojson.NewFeatureCollection()
	limited.BBox = fc.BBox
	limited.Features = fc.Features[:limit:limit]
	return limited
}

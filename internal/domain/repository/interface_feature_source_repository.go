package repository

import (
	"context"

	"github.com/paulmach/orb/geojson"

	"CoastRisk-App/internal/domain/model"
)

// FeatureSource レイヤー定義から GeoJSON を取得する I/O 境界
type FeatureSource interface {
	// Fetch フィーチャーコレクションと解析できなかったフィーチャー数を返す
	Fetch(ctx context.Context, def model.LayerDefinition) (*geojson.FeatureCollection, int, error)
}

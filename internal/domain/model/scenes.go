package model

import "time"

// BuildSceneRequest シーン構築リクエスト
type BuildSceneRequest struct {
	LayerKeys   []string `json:"layer_keys"`   // 空の場合はカタログの全レイヤー
	Scale       float64  `json:"scale"`        // 0 の場合は設定値
	MaxFeatures int      `json:"max_features"` // 0 の場合は設定値、負の場合は無制限
}

// Scene 共通 Origin で投影された複数レイヤーのまとまり
type Scene struct {
	ID            string         `json:"scene_id"`
	Origin        Origin         `json:"origin"`
	Scale         float64        `json:"scale"`
	Layers        []Layer        `json:"layers"`
	MissingLayers []LayerFailure `json:"missing_layers"`
	CreatedAt     time.Time      `json:"created_at"`
	ExpireAt      time.Time      `json:"expire_at"`
}

// LayerKeys シーンに含まれるレイヤーキーを返す
func (s *Scene) LayerKeys() []string {
	keys := make([]string, 0, len(s.Layers))
	for _, l := range s.Layers {
		keys = append(keys, l.Key)
	}
	return keys
}

// FindLayer キーに一致するレイヤーを返す
func (s *Scene) FindLayer(key string) (*Layer, bool) {
	for i := range s.Layers {
		if s.Layers[i].Key == key {
			return &s.Layers[i], true
		}
	}
	return nil, false
}

// SceneSummary レイヤーのリングを含まないシーン概要
type SceneSummary struct {
	ID            string         `json:"scene_id"`
	Origin        Origin         `json:"origin"`
	Scale         float64        `json:"scale"`
	Layers        []LayerSummary `json:"layers"`
	MissingLayers []LayerFailure `json:"missing_layers"`
	ExpireAt      time.Time      `json:"expire_at"`
}

// LayerSummary リング数のみを持つレイヤー概要
type LayerSummary struct {
	Key               string `json:"key"`
	Label             string `json:"label"`
	Color             string `json:"color"`
	FeatureCount      int    `json:"feature_count"`
	RingCount         int    `json:"ring_count"`
	SkippedFeatures   int    `json:"skipped_features"`
	MalformedFeatures int    `json:"malformed_features"`
}

// Summary シーン概要を作成
func (s *Scene) Summary() *SceneSummary {
	layers := make([]LayerSummary, len(s.Layers))
	for i, l := range s.Layers {
		layers[i] = LayerSummary{
			Key:               l.Key,
			Label:             l.Label,
			Color:             l.Color,
			FeatureCount:      l.FeatureCount,
			RingCount:         len(l.Rings),
			SkippedFeatures:   l.SkippedFeatures,
			MalformedFeatures: l.MalformedFeatures,
		}
	}
	return &SceneSummary{
		ID:            s.ID,
		Origin:        s.Origin,
		Scale:         s.Scale,
		Layers:        layers,
		MissingLayers: s.MissingLayers,
		ExpireAt:      s.ExpireAt,
	}
}

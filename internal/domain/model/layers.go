package model

import "github.com/paulmach/orb"

// LayerDefinition リスクレイヤーのカタログ情報
type LayerDefinition struct {
	Key       string `json:"key" db:"key"`               // 表示切り替えのキー（例: "2030"）
	Label     string `json:"label" db:"label"`           // 表示名
	SourceURL string `json:"source_url" db:"source_url"` // GeoJSON の取得元（http(s) URL またはファイルパス）
	Color     string `json:"color" db:"color"`           // 塗りつぶし色（例: "#56B4E9"）
	PopupText string `json:"popup_text" db:"popup_text"` // ポップアップ表示文言
	SortOrder int    `json:"sort_order" db:"sort_order"` // 表示順
}

// Layer 投影済みのリスクレイヤー
type Layer struct {
	Key               string          `json:"key"`
	Label             string          `json:"label"`
	Color             string          `json:"color"`
	PopupText         string          `json:"popup_text"`
	FeatureCount      int             `json:"feature_count"`      // 入力フィーチャー数（上限適用後）
	SkippedFeatures   int             `json:"skipped_features"`   // ジオメトリなし・縮退リングで除外した数
	MalformedFeatures int             `json:"malformed_features"` // 解析できなかったフィーチャー数
	Bound             *orb.Bound      `json:"bound,omitempty"`    // 投影済みリング全体の平面境界（リングがなければ nil）
	Rings             []ProjectedRing `json:"rings"`
}

// LayerFailure シーンに含められなかったレイヤー
type LayerFailure struct {
	Key     string `json:"key"`
	Source  string `json:"source"`
	Message string `json:"message"`
}

// RiskHit 地点を含むリスクレイヤー
type RiskHit struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	PopupText    string `json:"popup_text"`
	FeatureIndex int    `json:"feature_index"`
}

// RiskAtResponse 地点リスク照会のレスポンス
type RiskAtResponse struct {
	Location Location  `json:"location"`
	Planar   orb.Point `json:"planar"`
	Hits     []RiskHit `json:"hits"`
}

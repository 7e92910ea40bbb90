package model

import "github.com/paulmach/orb"

// Origin シーン全体で共有する平面座標の最小値（投影後の minX, minY）
// 一度計算したら変更しない。値として各投影呼び出しに渡す
type Origin struct {
	MinX float64 `json:"min_x" firestore:"min_x"`
	MinY float64 `json:"min_y" firestore:"min_y"`
}

// Point Origin を orb.Point として返す
func (o Origin) Point() orb.Point {
	return orb.Point{o.MinX, o.MinY}
}

// ProjectedRing Origin 基準・スケール済みの平面リング（外周リングのみ）
type ProjectedRing struct {
	FeatureIndex int      `json:"feature_index"` // 入力コレクション内のフィーチャー位置
	Points       orb.Ring `json:"points"`        // [x, y] の並び
}

// Bound リングの平面境界ボックスを返す
func (r ProjectedRing) Bound() orb.Bound {
	return r.Points.Bound()
}

// Location 緯度経度
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ToPoint Location を orb.Point（[lon, lat]）に変換
func (l Location) ToPoint() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

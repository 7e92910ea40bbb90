package service

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"

	"CoastRisk-App/internal/domain/helper"
)

// invalidPoint 範囲外・不正な入力に対して返す非有限の点
var invalidPoint = orb.Point{math.NaN(), math.NaN()}

// WebMercator WGS84 経度緯度を球面 Web メルカトル（メートル）に変換する
// 不正な入力には panic やエラーではなく NaN の点を返す
func WebMercator(p orb.Point) orb.Point {
	lon, lat := p.Lon(), p.Lat()
	if !helper.IsFinite(lon) || !helper.IsFinite(lat) {
		return invalidPoint
	}
	if lon < -180 || lon > 180 || lat <= -90 || lat >= 90 {
		return invalidPoint
	}
	return project.WGS84.ToMercator(p)
}

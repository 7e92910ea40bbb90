package service

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"CoastRisk-App/internal/domain/helper"
)

func TestWebMercator(t *testing.T) {
	t.Run("原点", func(t *testing.T) {
		got := WebMercator(orb.Point{0, 0})
		assert.InDelta(t, 0, got[0], 1e-9)
		assert.InDelta(t, 0, got[1], 1e-9)
	})

	t.Run("経度180は半周", func(t *testing.T) {
		got := WebMercator(orb.Point{180, 0})
		assert.InDelta(t, 20037508.342789244, got[0], 1e-3)
	})

	t.Run("単調増加", func(t *testing.T) {
		a := WebMercator(orb.Point{67.0, 24.0})
		b := WebMercator(orb.Point{67.5, 24.5})
		assert.Less(t, a[0], b[0])
		assert.Less(t, a[1], b[1])
	})

	t.Run("不正な入力はNaN", func(t *testing.T) {
		for _, p := range []orb.Point{
			{math.NaN(), 0},
			{0, math.Inf(1)},
			{181, 0},
			{-180.5, 10},
			{0, 90},
			{0, -90},
		} {
			assert.False(t, helper.IsFinitePoint(WebMercator(p)), "%v", p)
		}
	})
}

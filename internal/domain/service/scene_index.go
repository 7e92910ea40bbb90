package service

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"CoastRisk-App/internal/domain/model"
)

// minRectLength R-tree は長さ0の矩形を扱えないため、点や線分状の境界に使う最小幅
const minRectLength = 1e-9

// SceneIndex 投影済みリングの境界を R-tree に格納し、平面座標での検索を行う
type SceneIndex struct {
	tree      *rtreego.Rtree
	layerRank map[string]int
}

// indexedRing R-tree に格納するリング
type indexedRing struct {
	layerKey string
	ring     model.ProjectedRing
	bound    orb.Bound
}

// Bounds rtreego.Spatial の実装
func (r *indexedRing) Bounds() rtreego.Rect {
	return boundToRect(r.bound)
}

// IndexHit 検索でヒットしたリング
type IndexHit struct {
	LayerKey string
	Ring     model.ProjectedRing
}

// NewSceneIndex レイヤーのリングから SceneIndex を作成
func NewSceneIndex(layers []model.Layer) *SceneIndex {
	idx := &SceneIndex{
		tree:      rtreego.NewTree(2, 25, 50),
		layerRank: make(map[string]int, len(layers)),
	}
	for i, layer := range layers {
		idx.layerRank[layer.Key] = i
		for _, ring := range layer.Rings {
			if len(ring.Points) == 0 {
				continue
			}
			idx.tree.Insert(&indexedRing{
				layerKey: layer.Key,
				ring:     ring,
				bound:    ring.Bound(),
			})
		}
	}
	return idx
}

// Size 格納されたリング数
func (idx *SceneIndex) Size() int {
	return idx.tree.Size()
}

// Search 指定レイヤーのうち境界が bound と交差するリングを入力順で返す
func (idx *SceneIndex) Search(layerKey string, bound orb.Bound) []model.ProjectedRing {
	var rings []model.ProjectedRing
	for _, hit := range idx.searchIntersect(bound) {
		if hit.LayerKey == layerKey {
			rings = append(rings, hit.Ring)
		}
	}
	return rings
}

// Containing 点を含むリングをレイヤー順・入力順で返す
func (idx *SceneIndex) Containing(point orb.Point) []IndexHit {
	var hits []IndexHit
	for _, hit := range idx.searchIntersect(orb.Bound{Min: point, Max: point}) {
		ring := hit.Ring.Points
		if !ring.Closed() {
			ring = append(ring[:len(ring):len(ring)], ring[0])
		}
		if planar.RingContains(ring, point) {
			hits = append(hits, hit)
		}
	}
	return hits
}

// searchIntersect 交差するリングを (レイヤー順, フィーチャー順) に並べて返す
func (idx *SceneIndex) searchIntersect(bound orb.Bound) []IndexHit {
	spatials := idx.tree.SearchIntersect(boundToRect(bound))

	hits := make([]IndexHit, 0, len(spatials))
	for _, s := range spatials {
		ir := s.(*indexedRing)
		hits = append(hits, IndexHit{LayerKey: ir.layerKey, Ring: ir.ring})
	}

	sort.Slice(hits, func(i, j int) bool {
		ri, rj := idx.layerRank[hits[i].LayerKey], idx.layerRank[hits[j].LayerKey]
		if ri != rj {
			return ri < rj
		}
		return hits[i].Ring.FeatureIndex < hits[j].Ring.FeatureIndex
	})
	return hits
}

// boundToRect orb.Bound を rtreego.Rect に変換
func boundToRect(b orb.Bound) rtreego.Rect {
	point := rtreego.Point{b.Min[0], b.Min[1]}

	width := b.Max[0] - b.Min[0]
	height := b.Max[1] - b.Min[1]
	if width < minRectLength {
		width = minRectLength
	}
	if height < minRectLength {
		height = minRectLength
	}

	// 幅・高さは minRectLength 以上に丸めているため、有限な境界ではエラーにならない
	// 非有限な境界はハンドラーで弾いている
	rect, _ := rtreego.NewRect(point, []float64{width, height})
	return rect
}

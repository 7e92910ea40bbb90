package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"CoastRisk-App/internal/domain/helper"
	"CoastRisk-App/internal/domain/model"
	"CoastRisk-App/internal/domain/repository"
	"CoastRisk-App/internal/domain/service"
)

type SceneUseCase interface {
	// ListLayers レイヤーカタログを取得
	ListLayers(ctx context.Context) ([]model.LayerDefinition, error)

	// GetLayerDefinition キーに一致するレイヤー定義を取得
	GetLayerDefinition(ctx context.Context, key string) (*model.LayerDefinition, error)

	// BuildScene 全レイヤーを並行取得し、共通 Origin で投影したシーンを保存して返す
	BuildScene(ctx context.Context, req *model.BuildSceneRequest) (*model.Scene, error)

	// GetScene 保存済みシーンを取得
	GetScene(ctx context.Context, id string) (*model.Scene, error)

	// GetLayer シーン内の1レイヤーを取得（viewport 指定時は交差するリングのみ）
	GetLayer(ctx context.Context, id, key string, viewport *orb.Bound) (*model.Layer, error)

	// RiskAt 指定地点を含むリスクレイヤーを返す
	RiskAt(ctx context.Context, id string, location model.Location) (*model.RiskAtResponse, error)
}

// SceneOptions シーン構築の設定
type SceneOptions struct {
	DefaultScale         float64
	MaxFeaturesPerLayer  int
	FetchTimeout         time.Duration
	MaxConcurrentFetches int
	SceneTTL             time.Duration
}

// sceneUseCaseImpl はSceneUseCaseの実装
type sceneUseCaseImpl struct {
	catalog   repository.LayerCatalogRepository
	source    repository.FeatureSource
	scenes    repository.SceneRepository
	projector *service.PolygonProjector
	opts      SceneOptions
	now       func() time.Time
}

// NewSceneUseCase は新しいSceneUseCaseインスタンスを作成
func NewSceneUseCase(
	catalog repository.LayerCatalogRepository,
	source repository.FeatureSource,
	scenes repository.SceneRepository,
	projector *service.PolygonProjector,
	opts SceneOptions,
) SceneUseCase {
	if opts.MaxConcurrentFetches < 1 {
		opts.MaxConcurrentFetches = 1
	}
	if projector == nil {
		projector = service.NewPolygonProjector(nil)
	}
	return &sceneUseCaseImpl{
		catalog:   catalog,
		source:    source,
		scenes:    scenes,
		projector: projector,
		opts:      opts,
		now:       time.Now,
	}
}

func (u *sceneUseCaseImpl) ListLayers(ctx context.Context) ([]model.LayerDefinition, error) {
	layers, err := u.catalog.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("レイヤーカタログの取得に失敗: %w", err)
	}
	return layers, nil
}

func (u *sceneUseCaseImpl) GetLayerDefinition(ctx context.Context, key string) (*model.LayerDefinition, error) {
	def, err := u.catalog.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("レイヤー定義の取得に失敗: %w", err)
	}
	return def, nil
}

// fetchResult 1レイヤーの取得結果
type fetchResult struct {
	index     int
	fc        *geojson.FeatureCollection
	malformed int
	err       error
}

func (u *sceneUseCaseImpl) BuildScene(ctx context.Context, req *model.BuildSceneRequest) (*model.Scene, error) {
	if req == nil {
		req = &model.BuildSceneRequest{}
	}

	scale := req.Scale
	if scale == 0 {
		scale = u.opts.DefaultScale
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidScale, scale)
	}

	limit := req.MaxFeatures
	if limit == 0 {
		limit = u.opts.MaxFeaturesPerLayer
	}

	defs, err := u.resolveLayers(ctx, req.LayerKeys)
	if err != nil {
		return nil, err
	}

	log.Printf("🚀 シーン構築開始: %dレイヤー (scale=%v, limit=%d)", len(defs), scale, limit)
	start := u.now()

	// Step 1: 全レイヤーを並行取得し、すべて揃うまで待つ
	results := u.fetchAll(ctx, defs)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("シーン構築が中断されました: %w", err)
	}

	var (
		loaded      []fetchResult
		failures    []model.LayerFailure
		collections []*geojson.FeatureCollection
	)
	for _, r := range results {
		if r.err != nil {
			def := defs[r.index]
			log.Printf("⚠️ レイヤー %s をスキップ: %v", def.Key, r.err)
			failures = append(failures, model.LayerFailure{
				Key:     def.Key,
				Source:  def.SourceURL,
				Message: r.err.Error(),
			})
			continue
		}
		r.fc = helper.LimitFeatures(r.fc, limit)
		loaded = append(loaded, r)
		collections = append(collections, r.fc)
	}

	// Step 2: 取得できた全コレクションから Origin を一度だけ計算
	origin, err := u.projector.ComputeOrigin(collections)
	if err != nil {
		return nil, fmt.Errorf("Originの計算に失敗: %w", err)
	}

	// Step 3: 各レイヤーを投影
	layers := make([]model.Layer, 0, len(loaded))
	for _, r := range loaded {
		layers = append(layers, u.buildLayer(defs[r.index], r, origin, scale))
	}

	now := u.now()
	scene := &model.Scene{
		ID:            uuid.New().String(),
		Origin:        origin,
		Scale:         scale,
		Layers:        layers,
		MissingLayers: failures,
		CreatedAt:     now,
	}

	// Step 4: 保存
	if err := u.scenes.Save(ctx, scene, u.opts.SceneTTL); err != nil {
		return nil, fmt.Errorf("シーンの保存に失敗: %w", err)
	}

	log.Printf("✅ シーン構築完了: %s (%v, 成功:%d, 失敗:%d)", scene.ID, now.Sub(start), len(layers), len(failures))
	return scene, nil
}

// resolveLayers 指定キー（空の場合は全件）のレイヤー定義をカタログ順で返す
func (u *sceneUseCaseImpl) resolveLayers(ctx context.Context, keys []string) ([]model.LayerDefinition, error) {
	all, err := u.catalog.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("レイヤーカタログの取得に失敗: %w", err)
	}
	if len(keys) == 0 {
		if len(all) == 0 {
			return nil, fmt.Errorf("%w: カタログが空です", model.ErrLayerNotFound)
		}
		return all, nil
	}

	wanted := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
	}

	var defs []model.LayerDefinition
	for _, def := range all {
		if _, ok := wanted[def.Key]; ok {
			defs = append(defs, def)
			delete(wanted, def.Key)
		}
	}
	for _, k := range keys {
		if _, missing := wanted[k]; missing {
			return nil, fmt.Errorf("%w: %s", model.ErrLayerNotFound, k)
		}
	}
	return defs, nil
}

// fetchAll セマフォで同時実行数を制限しつつ全レイヤーを取得し、入力順で返す
func (u *sceneUseCaseImpl) fetchAll(ctx context.Context, defs []model.LayerDefinition) []fetchResult {
	semaphore := make(chan struct{}, u.opts.MaxConcurrentFetches)
	resultChan := make(chan fetchResult, len(defs))
	var wg sync.WaitGroup

	for i, def := range defs {
		wg.Add(1)
		go func(idx int, d model.LayerDefinition) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			fetchCtx := ctx
			if u.opts.FetchTimeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(ctx, u.opts.FetchTimeout)
				defer cancel()
			}

			fc, malformed, err := u.source.Fetch(fetchCtx, d)
			if err != nil {
				var fetchErr *model.FetchError
				if !errors.As(err, &fetchErr) {
					err = &model.FetchError{LayerKey: d.Key, Source: d.SourceURL, Err: err}
				}
			} else if fc == nil {
				err = &model.FetchError{LayerKey: d.Key, Source: d.SourceURL, Err: errors.New("空のレスポンス")}
			}
			resultChan <- fetchResult{index: idx, fc: fc, malformed: malformed, err: err}
		}(i, def)
	}

	// 別のgoroutineでwaitしてチャンネルを閉じる
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]fetchResult, len(defs))
	for r := range resultChan {
		results[r.index] = r
	}
	return results
}

// buildLayer 1コレクションを投影してレイヤーを作成
func (u *sceneUseCaseImpl) buildLayer(def model.LayerDefinition, r fetchResult, origin model.Origin, scale float64) model.Layer {
	rings := slices.Collect(u.projector.ProjectFeatureCollection(r.fc, origin, scale))
	if rings == nil {
		rings = []model.ProjectedRing{}
	}

	var bound *orb.Bound
	for _, ring := range rings {
		b := ring.Bound()
		if bound != nil {
			b = bound.Union(b)
		}
		bound = &b
	}

	return model.Layer{
		Key:               def.Key,
		Label:             def.Label,
		Color:             def.Color,
		PopupText:         def.PopupText,
		FeatureCount:      len(r.fc.Features),
		SkippedFeatures:   len(r.fc.Features) - len(rings),
		MalformedFeatures: r.malformed,
		Bound:             bound,
		Rings:             rings,
	}
}

func (u *sceneUseCaseImpl) GetScene(ctx context.Context, id string) (*model.Scene, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: 無効なシーンID形式: %s", model.ErrSceneNotFound, id)
	}

	scene, err := u.scenes.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("シーンの取得に失敗: %w", err)
	}
	return scene, nil
}

func (u *sceneUseCaseImpl) GetLayer(ctx context.Context, id, key string, viewport *orb.Bound) (*model.Layer, error) {
	scene, err := u.GetScene(ctx, id)
	if err != nil {
		return nil, err
	}

	layer, ok := scene.FindLayer(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrLayerNotFound, key)
	}

	result := *layer
	if viewport != nil {
		idx := service.NewSceneIndex([]model.Layer{*layer})
		result.Rings = idx.Search(key, *viewport)
		if result.Rings == nil {
			result.Rings = []model.ProjectedRing{}
		}
	}
	return &result, nil
}

func (u *sceneUseCaseImpl) RiskAt(ctx context.Context, id string, location model.Location) (*model.RiskAtResponse, error) {
	scene, err := u.GetScene(ctx, id)
	if err != nil {
		return nil, err
	}

	planar, ok := u.projector.ProjectPoint(location.ToPoint(), scene.Origin, scene.Scale)
	if !ok {
		return nil, fmt.Errorf("%w: (%v, %v)", model.ErrInvalidLocation, location.Longitude, location.Latitude)
	}

	idx := service.NewSceneIndex(scene.Layers)
	hits := []model.RiskHit{}
	for _, hit := range idx.Containing(planar) {
		layer, _ := scene.FindLayer(hit.LayerKey)
		hits = append(hits, model.RiskHit{
			Key:          layer.Key,
			Label:        layer.Label,
			PopupText:    layer.PopupText,
			FeatureIndex: hit.Ring.FeatureIndex,
		})
	}

	return &model.RiskAtResponse{
		Location: location,
		Planar:   planar,
		Hits:     hits,
	}, nil
}

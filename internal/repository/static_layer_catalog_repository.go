package repository

import (
	"context"
	"fmt"
	"sort"

	"CoastRisk-App/internal/domain/model"
	"CoastRisk-App/internal/domain/repository"
)

// DefaultLayerDefinitions シンド州沿岸の海面上昇リスクレイヤー（2030/2040/2050）
func DefaultLayerDefinitions() []model.LayerDefinition {
	return []model.LayerDefinition{
		{
			Key:       "2030",
			Label:     "2030 Risk Zone",
			SourceURL: "inundation_baseline.json",
			Color:     "#56B4E9",
			PopupText: "2030 Risk Zone: Baseline Inundation Area",
			SortOrder: 1,
		},
		{
			Key:       "2040",
			Label:     "2040 Risk Zone",
			SourceURL: "risk_zone_2040.json",
			Color:     "#0072B2",
			PopupText: "2040 Risk Zone: Vulnerable to episodic flooding.",
			SortOrder: 2,
		},
		{
			Key:       "2050",
			Label:     "2050 Risk Zone",
			SourceURL: "risk_zone_2050.json",
			Color:     "#003B5C",
			PopupText: "2050 Risk Zone: Highly vulnerable to episodic flooding.",
			SortOrder: 3,
		},
	}
}

// StaticLayerCatalogRepository メモリ上の固定カタログ
type StaticLayerCatalogRepository struct {
	layers []model.LayerDefinition
}

// NewStaticLayerCatalogRepository 定義リストからカタログを作成（nil の場合はデフォルト）
func NewStaticLayerCatalogRepository(layers []model.LayerDefinition) repository.LayerCatalogRepository {
	if layers == nil {
		layers = DefaultLayerDefinitions()
	}
	sorted := make([]model.LayerDefinition, len(layers))
	copy(sorted, layers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SortOrder < sorted[j].SortOrder })

	return &StaticLayerCatalogRepository{layers: sorted}
}

func (r *StaticLayerCatalogRepository) GetAll(ctx context.Context) ([]model.LayerDefinition, error) {
	out := make([]model.LayerDefinition, len(r.layers))
	copy(out, r.layers)
	return out, nil
}

func (r *StaticLayerCatalogRepository) GetByKey(ctx context.Context, key string) (*model.LayerDefinition, error) {
	for _, l := range r.layers {
		if l.Key == key {
			def := l
			return &def, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", model.ErrLayerNotFound, key)
}

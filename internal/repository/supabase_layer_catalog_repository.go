package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"CoastRisk-App/internal/database"
	"CoastRisk-App/internal/domain/model"
	"CoastRisk-App/internal/domain/repository"
)

const riskLayersTable = "risk_layers"

// SupabaseLayerCatalogRepository Supabase の risk_layers テーブルを使用したカタログ
type SupabaseLayerCatalogRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseLayerCatalogRepository(client *database.SupabaseClient) repository.LayerCatalogRepository {
	return &SupabaseLayerCatalogRepository{
		client: client,
	}
}

func (r *SupabaseLayerCatalogRepository) GetAll(ctx context.Context) ([]model.LayerDefinition, error) {
	var layers []model.LayerDefinition
	data, _, err := r.client.GetClient().From(riskLayersTable).Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("レイヤーカタログの取得失敗: %w", err)
	}

	if err := json.Unmarshal(data, &layers); err != nil {
		return nil, fmt.Errorf("レイヤーカタログのJSONアンマーシャル失敗: %w", err)
	}

	sort.SliceStable(layers, func(i, j int) bool { return layers[i].SortOrder < layers[j].SortOrder })
	return layers, nil
}

func (r *SupabaseLayerCatalogRepository) GetByKey(ctx context.Context, key string) (*model.LayerDefinition, error) {
	var layers []model.LayerDefinition
	data, _, err := r.client.GetClient().From(riskLayersTable).Select("*", "exact", false).Eq("key", key).Execute()
	if err != nil {
		return nil, fmt.Errorf("レイヤー定義の取得失敗: %w", err)
	}

	if err := json.Unmarshal(data, &layers); err != nil {
		return nil, fmt.Errorf("レイヤー定義のJSONアンマーシャル失敗: %w", err)
	}

	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrLayerNotFound, key)
	}
	return &layers[0], nil
}

package repository

import (
	"context"

	"CoastRisk-App/internal/domain/model"
)

// LayerCatalogRepository リスクレイヤーのカタログ
type LayerCatalogRepository interface {
	// GetAll 全レイヤー定義を表示順で取得
	GetAll(ctx context.Context) ([]model.LayerDefinition, error)
	// GetByKey キーに一致するレイヤー定義を取得
	GetByKey(ctx context.Context, key string) (*model.LayerDefinition, error)
}

package repository

import (
	"context"
	"time"

	"CoastRisk-App/internal/domain/model"
)

type SceneRepository interface {
	Save(ctx context.Context, scene *model.Scene, ttl time.Duration) error
	// Get 見つからない・期限切れの場合は model.ErrSceneNotFound
	Get(ctx context.Context, id string) (*model.Scene, error)
}

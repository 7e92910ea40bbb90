package repository

import (
	"context"

	"CoastRisk-App/internal/domain/model"
)

type StoryRepository interface {
	// GetByID 見つからない場合は model.ErrStoryNotFound
	GetByID(ctx context.Context, id string) (*model.Story, error)
}

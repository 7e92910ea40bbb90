package usecase

import (
	"context"
	"fmt"

	"CoastRisk-App/internal/domain/model"
	"CoastRisk-App/internal/domain/repository"
	"CoastRisk-App/internal/domain/service"
)

type StoryUseCase interface {
	// GetStory ストーリーを取得
	GetStory(ctx context.Context, id string) (*model.Story, error)

	// GetStep index 番目のウェイポイントの表示コマンドを取得
	GetStep(ctx context.Context, id string, index int) (*model.StoryStep, error)
}

type storyUseCaseImpl struct {
	stories   repository.StoryRepository
	navigator *service.StoryNavigator
}

// NewStoryUseCase は新しいStoryUseCaseインスタンスを作成
func NewStoryUseCase(stories repository.StoryRepository) StoryUseCase {
	return &storyUseCaseImpl{
		stories:   stories,
		navigator: service.NewStoryNavigator(),
	}
}

func (u *storyUseCaseImpl) GetStory(ctx context.Context, id string) (*model.Story, error) {
	story, err := u.stories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ストーリーの取得に失敗: %w", err)
	}
	return story, nil
}

func (u *storyUseCaseImpl) GetStep(ctx context.Context, id string, index int) (*model.StoryStep, error) {
	story, err := u.GetStory(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.navigator.Step(story, index)
}

package repository

import (
	"context"
	"fmt"

	"CoastRisk-App/internal/domain/model"
	"CoastRisk-App/internal/domain/repository"
)

// DefaultStoryID 組み込みストーリーのID
const DefaultStoryID = "sindh-coast"

// DefaultStory シンド州沿岸の海面上昇ストーリー
func DefaultStory() *model.Story {
	return &model.Story{
		ID:    DefaultStoryID,
		Title: "Rising Seas on the Sindh Coast",
		Waypoints: []model.Waypoint{
			{
				Index:       0,
				Title:       "2030: Baseline inundation",
				Description: "Low-lying land along the Indus delta already exposed to tidal inundation.",
				Center:      model.Location{Latitude: 24.3, Longitude: 67.5},
				Zoom:        9,
				LayerKey:    "2030",
			},
			{
				Index:       1,
				Title:       "2040: Episodic flooding",
				Description: "Storm surge and high tides reach further inland around Karachi's creeks.",
				Center:      model.Location{Latitude: 24.8, Longitude: 67.0},
				Zoom:        10,
				Pitch:       45,
				LayerKey:    "2040",
			},
			{
				Index:       2,
				Title:       "2050: Highly vulnerable zone",
				Description: "Large parts of the delta become highly vulnerable to episodic flooding.",
				Center:      model.Location{Latitude: 24.1, Longitude: 67.6},
				Zoom:        9,
				Pitch:       60,
				Bearing:     -20,
				LayerKey:    "2050",
			},
		},
	}
}

// StaticStoryRepository メモリ上の固定ストーリー
type StaticStoryRepository struct {
	stories map[string]*model.Story
}

// NewStaticStoryRepository ストーリー一覧から作成（空の場合はデフォルトストーリー）
func NewStaticStoryRepository(stories ...*model.Story) repository.StoryRepository {
	if len(stories) == 0 {
		stories = []*model.Story{DefaultStory()}
	}
	m := make(map[string]*model.Story, len(stories))
	for _, s := range stories {
		m[s.ID] = s
	}
	return &StaticStoryRepository{stories: m}
}

func (r *StaticStoryRepository) GetByID(ctx context.Context, id string) (*model.Story, error) {
	story, ok := r.stories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrStoryNotFound, id)
	}
	cp := *story
	cp.Waypoints = append([]model.Waypoint(nil), story.Waypoints...)
	return &cp, nil
}

package service

import (
	"fmt"
	"sort"

	"CoastRisk-App/internal/domain/model"
)

// StoryNavigator ウェイポイント番号から表示コマンドを組み立てる
type StoryNavigator struct{}

// NewStoryNavigator StoryNavigator を作成
func NewStoryNavigator() *StoryNavigator {
	return &StoryNavigator{}
}

// Step index 番目のウェイポイントの表示コマンドを返す
func (n *StoryNavigator) Step(story *model.Story, index int) (*model.StoryStep, error) {
	if story == nil {
		return nil, model.ErrStoryNotFound
	}
	total := len(story.Waypoints)
	if index < 0 || index >= total {
		return nil, fmt.Errorf("%w: %d (0〜%d)", model.ErrWaypointOutOfRange, index, total-1)
	}

	wp := story.Waypoints[index]

	hide := []string{}
	for _, key := range story.LayerKeys() {
		if key != wp.LayerKey {
			hide = append(hide, key)
		}
	}
	sort.Strings(hide)

	return &model.StoryStep{
		StoryID:    story.ID,
		Waypoint:   wp,
		ShowLayer:  wp.LayerKey,
		HideLayers: hide,
		Camera: model.Camera{
			Center:  wp.Center,
			Zoom:    wp.Zoom,
			Pitch:   wp.Pitch,
			Bearing: wp.Bearing,
		},
		HasPrev: index > 0,
		HasNext: index < total-1,
		Total:   total,
	}, nil
}

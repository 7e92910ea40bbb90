package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"CoastRisk-App/internal/domain/model"
	"CoastRisk-App/internal/domain/repository"
)

// MemorySceneRepository 有効期限付きのインメモリシーンキャッシュ
type MemorySceneRepository struct {
	mu     sync.RWMutex
	scenes map[string]*model.Scene
	now    func() time.Time
}

func NewMemorySceneRepository() repository.SceneRepository {
	return newMemorySceneRepository(time.Now)
}

func newMemorySceneRepository(now func() time.Time) *MemorySceneRepository {
	return &MemorySceneRepository{
		scenes: make(map[string]*model.Scene),
		now:    now,
	}
}

// Save シーンを保存する（ttl <= 0 の場合は期限なし）
func (r *MemorySceneRepository) Save(ctx context.Context, scene *model.Scene, ttl time.Duration) error {
	if scene == nil || scene.ID == "" {
		return fmt.Errorf("シーンIDが空です")
	}

	now := r.now()
	if ttl > 0 {
		scene.ExpireAt = now.Add(ttl)
	} else {
		scene.ExpireAt = time.Time{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictExpiredLocked(now)
	r.scenes[scene.ID] = scene
	return nil
}

func (r *MemorySceneRepository) Get(ctx context.Context, id string) (*model.Scene, error) {
	r.mu.RLock()
	scene, ok := r.scenes[id]
	r.mu.RUnlock()

	if !ok || isExpired(scene, r.now()) {
		return nil, fmt.Errorf("%w: %s", model.ErrSceneNotFound, id)
	}
	return scene, nil
}

func (r *MemorySceneRepository) evictExpiredLocked(now time.Time) {
	for id, s := range r.scenes {
		if isExpired(s, now) {
			delete(r.scenes, id)
		}
	}
}

func isExpired(scene *model.Scene, now time.Time) bool {
	return !scene.ExpireAt.IsZero() && !now.Before(scene.ExpireAt)
}

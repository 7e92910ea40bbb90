package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"CoastRisk-App/internal/domain/model"
	"CoastRisk-App/internal/domain/repository"
)

const scenesCollection = "scenes"

// FirestoreSceneRepository Firestoreを使用したシーンキャッシュリポジトリ
// 期限切れドキュメントの削除は expireAt フィールドの TTL ポリシーに任せる
type FirestoreSceneRepository struct {
	client *firestore.Client
}

// NewFirestoreSceneRepository 新しいFirestoreSceneRepositoryインスタンスを作成
func NewFirestoreSceneRepository(client *firestore.Client) repository.SceneRepository {
	return &FirestoreSceneRepository{
		client: client,
	}
}

// Save シーンをFirestoreに保存する
func (r *FirestoreSceneRepository) Save(ctx context.Context, scene *model.Scene, ttl time.Duration) error {
	if scene == nil || scene.ID == "" {
		return fmt.Errorf("シーンIDが空です")
	}
	if ttl > 0 {
		scene.ExpireAt = time.Now().Add(ttl)
	}

	_, err := r.client.Collection(scenesCollection).Doc(scene.ID).Set(ctx, SceneToFirestore(scene))
	if err != nil {
		log.Printf("❌ Failed to save scene %s: %v", scene.ID, err)
		return fmt.Errorf("シーンの保存に失敗しました: %w", err)
	}

	log.Printf("✅ Scene saved: %s (expires in %v)", scene.ID, ttl)
	return nil
}

// Get 指定されたIDのシーンをFirestoreから取得する
func (r *FirestoreSceneRepository) Get(ctx context.Context, id string) (*model.Scene, error) {
	doc, err := r.client.Collection(scenesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", model.ErrSceneNotFound, id)
		}
		return nil, fmt.Errorf("シーンの取得に失敗しました: %w", err)
	}

	var data model.FirestoreScene
	if err := doc.DataTo(&data); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	// TTL による削除は即時ではないため、期限切れはここで弾く
	if !data.ExpireAt.IsZero() && time.Now().After(data.ExpireAt) {
		return nil, fmt.Errorf("%w: %s", model.ErrSceneNotFound, id)
	}

	return FirestoreToScene(id, &data), nil
}

package model

import (
	"errors"
	"fmt"
)

var (
	ErrSceneNotFound      = errors.New("シーンが見つかりません（有効期限切れまたは無効なID）")
	ErrStoryNotFound      = errors.New("ストーリーが見つかりません")
	ErrLayerNotFound      = errors.New("レイヤーが見つかりません")
	ErrWaypointOutOfRange = errors.New("ウェイポイントの番号が範囲外です")
	ErrInvalidScale       = errors.New("スケールは正の有限値である必要があります")
	ErrInvalidLocation    = errors.New("座標が投影可能な範囲外です")
)

// FetchError フィーチャーコレクションの取得・解析に失敗したことを表す
// 該当レイヤーはシーンから除外されるだけで、シーン構築自体は継続する
type FetchError struct {
	LayerKey string
	Source   string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("レイヤー %s の取得に失敗 (%s): %v", e.LayerKey, e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NoValidGeometryError Origin を計算できる有効な座標が1つもなかったことを表す
// シーン構築はここで中止しなければならない
type NoValidGeometryError struct {
	Collections int
}

func (e *NoValidGeometryError) Error() string {
	return fmt.Sprintf("有効なジオメトリが見つかりません（コレクション数: %d）", e.Collections)
}

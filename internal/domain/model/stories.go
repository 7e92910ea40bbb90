package model

// Waypoint ストーリーの1ステップ（カメラ位置と表示レイヤーの組）
type Waypoint struct {
	Index       int      `json:"index" db:"idx"`
	Title       string   `json:"title" db:"title"`
	Description string   `json:"description" db:"description"`
	Center      Location `json:"center"`
	Zoom        float64  `json:"zoom" db:"zoom"`
	Pitch       float64  `json:"pitch" db:"pitch"`     // 3D 表示用の傾き（度）
	Bearing     float64  `json:"bearing" db:"bearing"` // 3D 表示用の方位（度）
	LayerKey    string   `json:"layer_key" db:"layer_key"`
}

// Story ウェイポイントの並び
type Story struct {
	ID        string     `json:"story_id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Waypoints []Waypoint `json:"waypoints"`
}

// LayerKeys ストーリーで使われるレイヤーキーを登場順（重複なし）で返す
func (s *Story) LayerKeys() []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, w := range s.Waypoints {
		if w.LayerKey == "" {
			continue
		}
		if _, ok := seen[w.LayerKey]; ok {
			continue
		}
		seen[w.LayerKey] = struct{}{}
		keys = append(keys, w.LayerKey)
	}
	return keys
}

// Camera 描画側へ渡す視点移動コマンド
type Camera struct {
	Center  Location `json:"center"`
	Zoom    float64  `json:"zoom"`
	Pitch   float64  `json:"pitch"`
	Bearing float64  `json:"bearing"`
}

// StoryStep 「レイヤーXを表示し他を隠す」「視点をYへ移動」のコマンド
type StoryStep struct {
	StoryID    string   `json:"story_id"`
	Waypoint   Waypoint `json:"waypoint"`
	ShowLayer  string   `json:"show_layer"`
	HideLayers []string `json:"hide_layers"`
	Camera     Camera   `json:"camera"`
	HasPrev    bool     `json:"has_prev"`
	HasNext    bool     `json:"has_next"`
	Total      int      `json:"total"`
}

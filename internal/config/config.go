package config

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config アプリケーション設定
type Config struct {
	Port                 string
	LayerBaseDir         string        // 相対パスのレイヤー取得元の基準ディレクトリ
	SceneScale           float64       // 平面座標に掛けるスケール
	MaxFeaturesPerLayer  int           // 1レイヤーあたりのフィーチャー上限（0 は無制限）
	FetchTimeout         time.Duration // 1レイヤーの取得タイムアウト
	MaxConcurrentFetches int
	SceneTTL             time.Duration

	FirestoreProjectID string
	GoogleCredentials  string
	SupabaseURL        string
	SupabaseAnonKey    string
	DatabaseURL        string
}

// Load .env と環境変数から設定を読み込む
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv 環境変数のみから設定を読み込む
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		LayerBaseDir:       getEnv("LAYER_BASE_DIR", "./data"),
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),
		GoogleCredentials:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
	}

	var err error
	if cfg.SceneScale, err = getFloat("SCENE_SCALE", 0.01); err != nil {
		return nil, err
	}
	if cfg.SceneScale <= 0 || math.IsInf(cfg.SceneScale, 0) || math.IsNaN(cfg.SceneScale) {
		return nil, fmt.Errorf("SCENE_SCALEは正の値である必要があります: %v", cfg.SceneScale)
	}
	if cfg.MaxFeaturesPerLayer, err = getInt("MAX_FEATURES_PER_LAYER", 0); err != nil {
		return nil, err
	}

	timeoutSec, err := getInt("FETCH_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	cfg.FetchTimeout = time.Duration(timeoutSec) * time.Second

	if cfg.MaxConcurrentFetches, err = getInt("MAX_CONCURRENT_FETCHES", 3); err != nil {
		return nil, err
	}
	if cfg.MaxConcurrentFetches < 1 {
		cfg.MaxConcurrentFetches = 1
	}

	ttlHours, err := getInt("SCENE_TTL_HOURS", 2)
	if err != nil {
		return nil, err
	}
	cfg.SceneTTL = time.Duration(ttlHours) * time.Hour

	return cfg, nil
}

// UseFirestore Firestoreのシーンキャッシュを使うか
func (c *Config) UseFirestore() bool {
	return c.FirestoreProjectID != ""
}

// UseSupabase Supabaseのレイヤーカタログを使うか
func (c *Config) UseSupabase() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

// UsePostgres PostgreSQLのストーリーを使うか
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%sの値が不正です: %q", key, v)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%sの値が不正です: %q", key, v)
	}
	return f, nil
}

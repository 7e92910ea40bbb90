package geodata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paulmach/orb/geojson"

	"CoastRisk-App/internal/domain/helper"
	"CoastRisk-App/internal/domain/model"
)

// maxBodyBytes 1レイヤーあたりの最大読み込みサイズ
const maxBodyBytes = 256 << 20

// Source http(s) URL またはローカルファイルから GeoJSON を取得する
type Source struct {
	baseDir    string
	httpClient *http.Client
}

// NewSource 新しい Source を作成（相対パスは baseDir 基準で解決）
func NewSource(baseDir string, timeout time.Duration) *Source {
	return &Source{
		baseDir:    baseDir,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch レイヤー定義の取得元から FeatureCollection を読み込む
// 失敗時は *model.FetchError を返す
func (s *Source) Fetch(ctx context.Context, def model.LayerDefinition) (*geojson.FeatureCollection, int, error) {
	data, err := s.read(ctx, def.SourceURL)
	if err != nil {
		return nil, 0, &model.FetchError{LayerKey: def.Key, Source: def.SourceURL, Err: err}
	}

	fc, malformed, err := helper.DecodeFeatureCollection(data)
	if err != nil {
		return nil, 0, &model.FetchError{LayerKey: def.Key, Source: def.SourceURL, Err: err}
	}

	return fc, malformed, nil
}

func (s *Source) read(ctx context.Context, source string) ([]byte, error) {
	if source == "" {
		return nil, fmt.Errorf("取得元が指定されていません")
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return s.readHTTP(ctx, source)
	}
	return s.readFile(ctx, strings.TrimPrefix(source, "file://"))
}

func (s *Source) readHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTPリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("エラーステータスが返されました: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("レスポンスの読み込みに失敗: %w", err)
	}
	return data, nil
}

func (s *Source) readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(path) && s.baseDir != "" {
		path = filepath.Join(s.baseDir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ファイルを開けません: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("ファイルの読み込みに失敗: %w", err)
	}
	return data, nil
}

package geodata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CoastRisk-App/internal/domain/model"
)

const sampleCollection = `{
	"type": "FeatureCollection",
	"features": [
		{"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [[[67.0,24.0],[67.1,24.0],[67.1,24.1],[67.0,24.0]]]}},
		{"type": "Feature", "geometry": {"type": "Polygon", "coordinates": 1}}
	]
}`

func TestSource_FetchHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.json":
			w.Header().Set("Content-Type", "application/geo+json")
			_, _ = w.Write([]byte(sampleCollection))
		case "/slow.json":
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(sampleCollection))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	src := NewSource("", 5*time.Second)

	t.Run("取得成功", func(t *testing.T) {
		fc, malformed, err := src.Fetch(ctx, model.LayerDefinition{Key: "2030", SourceURL: srv.URL + "/ok.json"})
		require.NoError(t, err)
		assert.Len(t, fc.Features, 1)
		assert.Equal(t, 1, malformed)
	})

	t.Run("404はFetchError", func(t *testing.T) {
		_, _, err := src.Fetch(ctx, model.LayerDefinition{Key: "2040", SourceURL: srv.URL + "/missing.json"})
		var fetchErr *model.FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, "2040", fetchErr.LayerKey)
		assert.Contains(t, fetchErr.Error(), "404")
	})

	t.Run("コンテキストのタイムアウト", func(t *testing.T) {
		tctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		_, _, err := src.Fetch(tctx, model.LayerDefinition{Key: "2050", SourceURL: srv.URL + "/slow.json"})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestSource_FetchFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "risk.json"), []byte(sampleCollection), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "feature.json"), []byte(`{"type":"Feature"}`), 0o644))

	ctx := context.Background()
	src := NewSource(dir, time.Second)

	t.Run("相対パスは基準ディレクトリから", func(t *testing.T) {
		fc, _, err := src.Fetch(ctx, model.LayerDefinition{Key: "2030", SourceURL: "risk.json"})
		require.NoError(t, err)
		assert.Len(t, fc.Features, 1)
	})

	t.Run("file://と絶対パス", func(t *testing.T) {
		fc, _, err := NewSource("", time.Second).Fetch(ctx, model.LayerDefinition{
			Key:       "2030",
			SourceURL: "file://" + filepath.Join(dir, "risk.json"),
		})
		require.NoError(t, err)
		assert.Len(t, fc.Features, 1)
	})

	t.Run("失敗はFetchError", func(t *testing.T) {
		for _, source := range []string{"", "missing.json", "feature.json"} {
			_, _, err := src.Fetch(ctx, model.LayerDefinition{Key: "x", SourceURL: source})
			var fetchErr *model.FetchError
			assert.True(t, errors.As(err, &fetchErr), source)
		}
	})
}

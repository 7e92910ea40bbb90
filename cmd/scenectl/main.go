package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"CoastRisk-App/internal/config"
	"CoastRisk-App/internal/domain/model"
	"CoastRisk-App/internal/domain/service"
	"CoastRisk-App/internal/infrastructure/geodata"
	"CoastRisk-App/internal/repository"
	"CoastRisk-App/internal/usecase"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"})
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E69F00"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#243141")).Padding(0, 1)
)

// scenectl ローカルのレイヤーファイルからシーンを構築して概要を表示する
func main() {
	dir := flag.String("dir", "", "レイヤーファイルのディレクトリ（未指定時は LAYER_BASE_DIR）")
	scale := flag.Float64("scale", 0, "平面座標のスケール（0 で SCENE_SCALE）")
	limit := flag.Int("limit", 0, "レイヤーごとの最大フィーチャー数（0 で MAX_FEATURES_PER_LAYER、負数で無制限）")
	layers := flag.String("layers", "", "カンマ区切りのレイヤーキー（未指定時は全件）")
	lon := flag.Float64("lon", 0, "リスク判定する経度")
	lat := flag.Float64("lat", 0, "リスク判定する緯度")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}
	if *dir != "" {
		cfg.LayerBaseDir = *dir
	}

	uc := usecase.NewSceneUseCase(
		repository.NewStaticLayerCatalogRepository(nil),
		geodata.NewSource(cfg.LayerBaseDir, cfg.FetchTimeout),
		repository.NewMemorySceneRepository(),
		service.NewPolygonProjector(service.WebMercator),
		usecase.SceneOptions{
			DefaultScale:         cfg.SceneScale,
			MaxFeaturesPerLayer:  cfg.MaxFeaturesPerLayer,
			FetchTimeout:         cfg.FetchTimeout,
			MaxConcurrentFetches: cfg.MaxConcurrentFetches,
			SceneTTL:             time.Hour,
		},
	)

	req := &model.BuildSceneRequest{Scale: *scale, MaxFeatures: *limit}
	if *layers != "" {
		req.LayerKeys = strings.Split(*layers, ",")
	}

	ctx := context.Background()
	scene, err := uc.BuildScene(ctx, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, warnStyle.Render("シーン構築に失敗: "+err.Error()))
		os.Exit(1)
	}

	fmt.Println(renderScene(scene))

	if *lon != 0 || *lat != 0 {
		resp, err := uc.RiskAt(ctx, scene.ID, model.Location{Latitude: *lat, Longitude: *lon})
		if err != nil {
			fmt.Fprintln(os.Stderr, warnStyle.Render("リスク判定に失敗: "+err.Error()))
			os.Exit(1)
		}
		fmt.Println(renderRisk(resp))
	}
}

func renderScene(scene *model.Scene) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Scene " + scene.ID))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("origin=(%.3f, %.3f) scale=%v", scene.Origin.MinX, scene.Origin.MinY, scene.Scale)))
	b.WriteString("\n\n")

	for _, l := range scene.Layers {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(l.Color)).Render("■")
		b.WriteString(fmt.Sprintf("%s %-6s rings=%-5d skipped=%-4d malformed=%d\n",
			swatch, l.Key, len(l.Rings), l.SkippedFeatures, l.MalformedFeatures))
		if l.Bound != nil {
			b.WriteString(dimStyle.Render(fmt.Sprintf("   bound=[%.2f,%.2f]-[%.2f,%.2f]",
				l.Bound.Min[0], l.Bound.Min[1], l.Bound.Max[0], l.Bound.Max[1])))
			b.WriteString("\n")
		}
	}
	for _, m := range scene.MissingLayers {
		b.WriteString(warnStyle.Render(fmt.Sprintf("✗ %s: %s", m.Key, m.Message)))
		b.WriteString("\n")
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderRisk(resp *model.RiskAtResponse) string {
	header := fmt.Sprintf("(%.4f, %.4f) → (%.2f, %.2f)",
		resp.Location.Longitude, resp.Location.Latitude, resp.Planar[0], resp.Planar[1])
	if len(resp.Hits) == 0 {
		return boxStyle.Render(header + "\n" + dimStyle.Render("リスクゾーン外"))
	}

	lines := []string{header}
	for _, h := range resp.Hits {
		lines = append(lines, fmt.Sprintf("● %s: %s", h.Key, h.PopupText))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

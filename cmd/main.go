package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"CoastRisk-App/internal/config"
	"CoastRisk-App/internal/database"
	domainrepo "CoastRisk-App/internal/domain/repository"
	"CoastRisk-App/internal/domain/service"
	"CoastRisk-App/internal/handler"
	pgdatabase "CoastRisk-App/internal/infrastructure/database"
	"CoastRisk-App/internal/infrastructure/firestore"
	"CoastRisk-App/internal/infrastructure/geodata"
	"CoastRisk-App/internal/repository"
	"CoastRisk-App/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	ctx := context.Background()

	// レイヤーカタログ
	var catalog domainrepo.LayerCatalogRepository
	if cfg.UseSupabase() {
		fmt.Println("Initializing Supabase client...")
		supabaseClient, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
		}
		if err := supabaseClient.HealthCheck(); err != nil {
			log.Fatalf("Supabaseヘルスチェック失敗: %v", err)
		}
		catalog = repository.NewSupabaseLayerCatalogRepository(supabaseClient)
		fmt.Println("✅ Layer catalog: Supabase")
	} else {
		catalog = repository.NewStaticLayerCatalogRepository(nil)
		fmt.Println("✅ Layer catalog: built-in (2030/2040/2050)")
	}

	// ストーリー
	var stories domainrepo.StoryRepository
	if cfg.UsePostgres() {
		pgClient, err := pgdatabase.NewPostgreSQLClientWithRetry(cfg.DatabaseURL, 5, 2*time.Second)
		if err != nil {
			log.Fatalf("PostgreSQL初期化失敗: %v", err)
		}
		defer pgClient.Close()
		if err := pgClient.HealthCheck(); err != nil {
			log.Fatalf("PostgreSQLヘルスチェック失敗: %v", err)
		}
		stories = repository.NewPostgresStoryRepository(pgClient)
		fmt.Println("✅ Stories: PostgreSQL")
	} else {
		stories = repository.NewStaticStoryRepository()
		fmt.Println("✅ Stories: built-in")
	}

	// シーンキャッシュ
	var scenes domainrepo.SceneRepository
	if cfg.UseFirestore() {
		fsClient, err := firestore.NewFirestoreClient(ctx, cfg.FirestoreProjectID, cfg.GoogleCredentials)
		if err != nil {
			log.Fatalf("Firestore初期化失敗: %v", err)
		}
		defer fsClient.Close()
		scenes = repository.NewFirestoreSceneRepository(fsClient.GetClient())
		fmt.Println("✅ Scene cache: Firestore")
	} else {
		scenes = repository.NewMemorySceneRepository()
		fmt.Println("✅ Scene cache: in-memory")
	}

	source := geodata.NewSource(cfg.LayerBaseDir, cfg.FetchTimeout)
	sceneUseCase := usecase.NewSceneUseCase(catalog, source, scenes, service.NewPolygonProjector(service.WebMercator), usecase.SceneOptions{
		DefaultScale:         cfg.SceneScale,
		MaxFeaturesPerLayer:  cfg.MaxFeaturesPerLayer,
		FetchTimeout:         cfg.FetchTimeout,
		MaxConcurrentFetches: cfg.MaxConcurrentFetches,
		SceneTTL:             cfg.SceneTTL,
	})
	storyUseCase := usecase.NewStoryUseCase(stories)

	router := handler.NewRouter(handler.NewSceneHandler(sceneUseCase), handler.NewStoryHandler(storyUseCase))

	fmt.Printf("CoastRisk-App server starting on :%s...\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// 진단 백엔드 엔트리포인트
//
// 기동 흐름:
//  1. .env 로드 + 설정 읽기
//  2. Postgres 풀 생성 (실패 시 degraded 모드로 계속 - alert store/레지스트리 없이 동작)
//  3. 클라이언트/서비스/핸들러 조립
//  4. Gin 라우터 등록 후 서버 시작

package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/grid-twin/backend/internal/client"
	"github.com/grid-twin/backend/internal/config"
	"github.com/grid-twin/backend/internal/db"
	"github.com/grid-twin/backend/internal/handler"
	"github.com/grid-twin/backend/internal/service"
)

func main() {
	// .env 파일은 로컬 개발 편의용 - 없어도 무시
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	// Postgres 연결 (alert store + 레지스트리)
	// 실패해도 서버는 기동 - 해석기들이 폴백 티어로 동작함
	var database *db.Postgres
	if pool, err := db.NewPostgresPool(ctx); err != nil {
		log.Printf("Postgres unavailable, starting in degraded mode: %v", err)
	} else {
		database = &db.Postgres{Pool: pool}
		if err := database.EnsureAlertSchema(ctx); err != nil {
			log.Printf("Failed to ensure alert schema: %v", err)
		}
		if err := database.EnsureRegistrySchema(ctx); err != nil {
			log.Printf("Failed to ensure registry schema: %v", err)
		}
	}

	// 클라이언트 조립
	telemetryClient := client.NewTelemetryClient(cfg.Telemetry)
	if telemetryClient == nil {
		log.Printf("TELEMETRY_DB_URL not set, live snapshots will be synthetic")
	}
	predictorClient := client.NewPredictorClient(cfg.Predictor)

	var briefingGenerator service.BriefingGenerator
	if briefingClient, err := client.NewBriefingClient(cfg.AI); err != nil {
		log.Printf("Briefing generator disabled: %v", err)
	} else {
		briefingGenerator = briefingClient
	}

	// 서비스 조립
	// 인터페이스 필드에 typed nil이 들어가지 않도록 nil 체크 후 대입
	var telemetryStore service.TelemetryStore
	if telemetryClient != nil {
		telemetryStore = telemetryClient
	}
	var registryStore service.RegistryStore
	var alertStore service.AlertStore
	if database != nil {
		registryStore = database
		alertStore = database
	}

	liveService := service.NewLiveSnapshotService(telemetryStore, cfg.Telemetry.TierTimeout)
	assetService := service.NewAssetMetadataService(registryStore)
	dispatchService := service.NewDispatchService(alertStore)
	diagnosisService := service.NewDiagnosisService(liveService, assetService, predictorClient, dispatchService)
	briefingService := service.NewBriefingService(briefingGenerator)

	// 핸들러 조립
	diagnosisHandler := handler.NewDiagnosisHandler(diagnosisService)
	briefingHandler := handler.NewBriefingHandler(briefingService)
	alertHandler := handler.NewAlertHandler(database)
	registryHandler := handler.NewRegistryHandler(database)

	// 라우터 등록
	router := gin.Default()
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins))

	router.GET("/ping", handler.Ping)
	router.GET("/", handler.Root)

	api := router.Group("/api/v1")
	{
		api.POST("/diagnosis", diagnosisHandler.Evaluate)
		api.POST("/diagnosis/briefing", briefingHandler.Generate)
		api.GET("/alerts", alertHandler.GetAlerts)
		api.GET("/alerts/:id", alertHandler.GetAlertDetail)
		api.PUT("/registry/:collection/:id", registryHandler.UpsertDocument)
	}

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

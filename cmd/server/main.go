package main

import (
	"context"
	"log"
	"net/http"

	"copyfx/internal/app"
	"copyfx/internal/application/services"
	"copyfx/internal/config"
	"copyfx/internal/infrastructure/api"
	"copyfx/pkg/logger"
)

func main() {
	// 環境変数から設定を取得
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger.SetDefault(cfg.LogLevel)

	application, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer application.Close()

	// API層を初期化
	handler := api.NewEffectHandler(application.TransformUseCase, application.Effects, services.NewParameterService())
	r := api.NewRouter(handler)

	backend := "Gemini API"
	if cfg.UseVertexAI {
		backend = "Vertex AI (" + cfg.ProjectID + ", " + cfg.Location + ")"
	}

	log.Printf("Starting server on port %s", cfg.Port)
	log.Printf("Backend: %s, Model: %s", backend, cfg.Model)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

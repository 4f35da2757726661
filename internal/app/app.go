// Package app wires configuration, the Gemini client and the use cases
// shared by every binary.
package app

import (
	"context"
	"fmt"

	"copyfx/internal/application/usecases"
	"copyfx/internal/config"
	domainrepos "copyfx/internal/domain/repositories"
	domainservices "copyfx/internal/domain/services"
	"copyfx/internal/infrastructure/external"
	"copyfx/internal/infrastructure/repositories"
	"copyfx/internal/infrastructure/services"
)

type App struct {
	Config           *config.Config
	Effects          domainrepos.EffectRepository
	TransformUseCase *usecases.TransformUseCase
	BatchUseCase     *usecases.BatchUseCase

	clientPool domainrepos.GenAIClientPool
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	effects, err := repositories.NewEffectRepository(ctx, cfg.EffectsFile)
	if err != nil {
		return nil, err
	}

	// インフラ層を初期化
	clientPool := services.NewGenAIClientPool(cfg.AIClientConfig())
	genAIClient, err := clientPool.GetGenAIClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	imageEditService := external.NewGeminiImageEditService(genAIClient)

	// ドメイン層を初期化
	transformDomainService := domainservices.NewTransformDomainService(imageEditService)

	// アプリケーション層を初期化
	transformUseCase := usecases.NewTransformUseCase(transformDomainService, cfg.Model)

	return &App{
		Config:           cfg,
		Effects:          effects,
		TransformUseCase: transformUseCase,
		BatchUseCase:     usecases.NewBatchUseCase(transformUseCase),
		clientPool:       clientPool,
	}, nil
}

func (a *App) Close() error {
	return a.clientPool.Close()
}

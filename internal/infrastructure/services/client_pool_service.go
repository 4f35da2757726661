package services

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"copyfx/internal/domain/repositories"
)

// GenAI Client Pool実装
type genAIClientPool struct {
	config *repositories.AIClientConfig
	client *genai.Client
	mutex  sync.RWMutex
}

// 新しいGenAIクライアントプールを作成
func NewGenAIClientPool(config *repositories.AIClientConfig) repositories.GenAIClientPool {
	return &genAIClientPool{
		config: config,
	}
}

func (p *genAIClientPool) GetGenAIClient(ctx context.Context) (*genai.Client, error) {
	p.mutex.RLock()
	if p.client != nil {
		defer p.mutex.RUnlock()
		return p.client, nil
	}
	p.mutex.RUnlock()

	p.mutex.Lock()
	defer p.mutex.Unlock()

	// ダブルチェックロッキング
	if p.client != nil {
		return p.client, nil
	}

	clientConfig, err := p.clientConfig()
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	p.client = client

	return p.client, nil
}

func (p *genAIClientPool) clientConfig() (*genai.ClientConfig, error) {
	clientConfig := &genai.ClientConfig{}

	if p.config.UseVertexAI {
		if p.config.ProjectID == "" {
			return nil, fmt.Errorf("project ID is required for the Vertex AI backend")
		}
		clientConfig.Backend = genai.BackendVertexAI
		clientConfig.Project = p.config.ProjectID
		clientConfig.Location = p.config.Location
	} else {
		if p.config.APIKey == "" {
			return nil, fmt.Errorf("API key is required for the Gemini API backend")
		}
		clientConfig.Backend = genai.BackendGeminiAPI
		clientConfig.APIKey = p.config.APIKey
	}

	if p.config.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = p.config.BaseURL
	}

	return clientConfig, nil
}

func (p *genAIClientPool) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.client != nil {
		// GenAI Clientはリソースクリーンアップ不要
		p.client = nil
	}
	return nil
}

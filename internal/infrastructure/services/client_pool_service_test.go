package services

import (
	"context"
	"testing"

	"copyfx/internal/domain/repositories"
)

func TestGenAIClientPool_GetGenAIClient(t *testing.T) {
	pool := NewGenAIClientPool(&repositories.AIClientConfig{
		APIKey:  "test-key",
		BaseURL: "http://127.0.0.1:1",
	})
	defer pool.Close()

	first, err := pool.GetGenAIClient(context.Background())
	if err != nil {
		t.Fatalf("GetGenAIClient() error = %v", err)
	}
	second, err := pool.GetGenAIClient(context.Background())
	if err != nil {
		t.Fatalf("GetGenAIClient() error = %v", err)
	}
	if first != second {
		t.Errorf("Expected the pooled client to be reused")
	}

	if err := pool.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	third, err := pool.GetGenAIClient(context.Background())
	if err != nil {
		t.Fatalf("GetGenAIClient() after Close error = %v", err)
	}
	if third == first {
		t.Errorf("Expected a fresh client after Close")
	}
}

func TestGenAIClientPool_ConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		config *repositories.AIClientConfig
	}{
		{name: "missing API key", config: &repositories.AIClientConfig{}},
		{name: "vertex without project", config: &repositories.AIClientConfig{UseVertexAI: true, Location: "us-central1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenAIClientPool(tt.config).GetGenAIClient(context.Background())
			if err == nil {
				t.Errorf("Expected an error")
			}
		})
	}
}

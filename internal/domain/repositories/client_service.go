package repositories

import (
	"context"

	"google.golang.org/genai"
)

// AIクライアント共通設定
type AIClientConfig struct {
	APIKey string

	// Vertex AI backend, authenticated with application default credentials
	UseVertexAI bool
	ProjectID   string
	Location    string

	// overrides the service endpoint, empty for the SDK default
	BaseURL string
}

// GenAI Client Pool Service
// 画像編集で使用する標準GenAIクライアントを遅延生成して共有する
type GenAIClientPool interface {
	GetGenAIClient(ctx context.Context) (*genai.Client, error)

	// リソースのクリーンアップ
	Close() error
}

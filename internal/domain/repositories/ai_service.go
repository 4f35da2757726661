package repositories

import (
	"context"

	"copyfx/internal/domain/entities"
)

// 画像編集サービス (Gemini image models)
type ImageEditAIService interface {
	EditImage(ctx context.Context, request *entities.TransformRequest) (*entities.TransformResponse, error)
}

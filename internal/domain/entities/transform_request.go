package entities

import "copyfx/internal/domain/valueobjects"

const DefaultImageModel = "gemini-2.5-flash-image-preview"

// 画像加工リクエスト
type TransformRequest struct {
	model     string
	prompt    string
	imageData *valueobjects.ImageData
}

func NewTransformRequest(model string, prompt string, imageData *valueobjects.ImageData) *TransformRequest {
	if model == "" {
		// デフォルトモデル
		model = DefaultImageModel
	}

	return &TransformRequest{
		model:     model,
		prompt:    prompt,
		imageData: imageData,
	}
}

func (r *TransformRequest) Model() string {
	return r.model
}

func (r *TransformRequest) Prompt() string {
	return r.prompt
}

func (r *TransformRequest) ImageData() *valueobjects.ImageData {
	return r.imageData
}

package external

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"copyfx/internal/domain/entities"
	"copyfx/internal/domain/repositories"
)

type GeminiImageEditService struct {
	genAIClient *genai.Client
}

func NewGeminiImageEditService(genAIClient *genai.Client) repositories.ImageEditAIService {
	return &GeminiImageEditService{
		genAIClient: genAIClient,
	}
}

func (s *GeminiImageEditService) EditImage(ctx context.Context, request *entities.TransformRequest) (*entities.TransformResponse, error) {
	if request.ImageData() == nil {
		return nil, fmt.Errorf("image data is required")
	}

	slog.Info("EditImage", "model", request.Model(), "mimeType", request.ImageData().MimeType(), "imageSize", len(request.ImageData().Data()))

	parts := []*genai.Part{
		genai.NewPartFromBytes(request.ImageData().Data(), request.ImageData().MimeType()),
		genai.NewPartFromText(request.Prompt()),
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	// gemini-2.5-flash-image-preview は複数候補を返せない。候補数・MediaResolutionは指定しない
	resultGenerateContent, errGenerateContent := s.genAIClient.Models.GenerateContent(
		ctx,
		request.Model(),
		contents,
		&genai.GenerateContentConfig{},
	)
	if errGenerateContent != nil {
		return nil, fmt.Errorf("failed to generate content: %w", errGenerateContent)
	}

	if len(resultGenerateContent.Candidates) == 0 ||
		resultGenerateContent.Candidates[0].Content == nil {
		slog.Warn("No candidates or content parts in the response")
		return entities.NewTransformResponse(nil), nil
	}

	candidateParts := resultGenerateContent.Candidates[0].Content.Parts
	slog.Info("Gemini API response",
		"candidatesCount", len(resultGenerateContent.Candidates),
		"partsCount", len(candidateParts))

	return entities.NewTransformResponse(toResponseParts(candidateParts)), nil
}

// toResponseParts keeps text and inline data parts in order; other part types
// (function calls, code execution, ...) carry nothing we can use.
func toResponseParts(parts []*genai.Part) []entities.ResponsePart {
	result := make([]entities.ResponsePart, 0, len(parts))
	for i, part := range parts {
		if part == nil {
			continue
		}
		slog.Debug("Processing part", "index", i, "hasText", part.Text != "", "hasInlineData", part.InlineData != nil)

		switch {
		case part.InlineData != nil:
			result = append(result, entities.NewInlineDataPart(part.InlineData.Data, part.InlineData.MIMEType))
		case part.Text != "" && !part.Thought:
			result = append(result, entities.NewTextPart(part.Text))
		}
	}
	return result
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"copyfx/internal/domain/entities"
	"copyfx/internal/domain/repositories"
	"copyfx/internal/domain/valueobjects"
)

type TransformDomainService struct {
	imageEditService repositories.ImageEditAIService
}

func NewTransformDomainService(imageEditService repositories.ImageEditAIService) *TransformDomainService {
	return &TransformDomainService{
		imageEditService: imageEditService,
	}
}

// ProcessTransform sends the request exactly once and extracts the first image
// of the reply. Failures come back as *entities.TransformError.
func (s *TransformDomainService) ProcessTransform(
	ctx context.Context,
	request *entities.TransformRequest,
) (*entities.TransformResult, error) {
	if err := s.validateRequest(request); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	response, err := s.imageEditService.EditImage(ctx, request)
	if err != nil {
		if s.isQuotaError(err) {
			return nil, entities.NewTransformError(entities.FailureQuota, "", err)
		}
		return nil, entities.NewTransformError(entities.FailureTransport, "", err)
	}

	part, ok := response.FirstImage()
	if !ok {
		slog.Warn("No image found in the response parts", "partsCount", len(response.Parts()), "responseText", response.Text())
		return nil, entities.NewTransformError(entities.FailureNoImage, "", responseTextError(response))
	}

	imageData, err := valueobjects.NewImageData(part.Data)
	if err != nil {
		return nil, entities.NewTransformError(entities.FailureNoImage, "", fmt.Errorf("failed to create image data: %w", err))
	}

	return entities.NewTransformResult(response.Text(), imageData), nil
}

func (s *TransformDomainService) validateRequest(request *entities.TransformRequest) error {
	if request.Prompt() == "" {
		return fmt.Errorf("prompt is required")
	}

	if request.ImageData() == nil {
		return fmt.Errorf("image data is required")
	}

	return nil
}

// isQuotaError reports whether err is a rate limit or quota rejection. API
// errors are matched by code; other errors fall back to their message.
func (s *TransformDomainService) isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return isQuotaAPIError(apiErr)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return isQuotaAPIError(*apiErrPtr)
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "quota exceeded") ||
		strings.Contains(errStr, "resourceexhausted") ||
		strings.Contains(errStr, "resource_exhausted") ||
		strings.Contains(errStr, "error 429")
}

func isQuotaAPIError(apiErr genai.APIError) bool {
	return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"
}

func responseTextError(response *entities.TransformResponse) error {
	text := response.Text()
	if text == "" {
		return nil
	}
	return fmt.Errorf("response text: %q", text)
}

package entities

import "copyfx/internal/domain/valueobjects"

type TransformResult struct {
	response  string
	imageData *valueobjects.ImageData
}

func NewTransformResult(response string, imageData *valueobjects.ImageData) *TransformResult {
	return &TransformResult{
		response:  response,
		imageData: imageData,
	}
}

func (r *TransformResult) Response() string {
	return r.response
}

func (r *TransformResult) ImageData() *valueobjects.ImageData {
	return r.imageData
}

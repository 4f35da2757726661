package model

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// TransformResponse is the JSON body returned by POST /effects/{name}
type TransformResponse struct {
	Success bool   `json:"success"`
	Image   *Image `json:"image,omitempty"`
	// モデルが画像と一緒に返したテキスト
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Image is a generated image carried inline as base64
type Image struct {
	Name     string `json:"name"`
	Data     string `json:"data"`
	MimeType string `json:"type"`
}

// EffectsResponse is the JSON body returned by GET /effects
type EffectsResponse struct {
	Effects []EffectSummary `json:"effects"`
}

type EffectSummary struct {
	Name   string `json:"name"`
	Suffix string `json:"suffix"`
}

// DecodeImage returns the raw bytes of the generated image.
func (r *TransformResponse) DecodeImage() ([]byte, error) {
	if !r.Success {
		if r.Error != "" {
			return nil, fmt.Errorf("transform failed: %s", r.Error)
		}
		return nil, errors.New("transform failed")
	}
	if r.Image == nil || r.Image.Data == "" {
		return nil, errors.New("response carries no image")
	}

	data, err := base64.StdEncoding.DecodeString(r.Image.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}
	return data, nil
}

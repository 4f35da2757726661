package services

import (
	"net/http"
	"path/filepath"
	"strings"

	"copyfx/internal/domain/valueobjects"
)

type ParameterService struct{}

func NewParameterService() *ParameterService {
	return &ParameterService{}
}

type TransformParameters struct {
	// container of the returned image
	Format valueobjects.ImageFormat
	// suggested name for the returned image
	FileName string
}

// ParseFromRequest reads the optional "format" form value of a transform
// request. uploadName is the client-side name of the uploaded file.
func (s *ParameterService) ParseFromRequest(r *http.Request, effect *valueobjects.Effect, uploadName string) *TransformParameters {
	// 形式未指定ならアップロードされたファイルの拡張子に合わせる
	format := s.getFormat(r, "format", s.formatOf(uploadName, valueobjects.PNG))

	if uploadName == "" {
		uploadName = "image." + extensionFor(format)
	}

	name := effect.OutputName(uploadName)
	if ext := filepath.Ext(name); s.formatOf(name, "") != format {
		name = strings.TrimSuffix(name, ext) + "." + extensionFor(format)
	}

	return &TransformParameters{
		Format:   format,
		FileName: name,
	}
}

func (s *ParameterService) getFormat(r *http.Request, key string, defaultValue valueobjects.ImageFormat) valueobjects.ImageFormat {
	value := strings.TrimSpace(r.FormValue(key))
	if value == "" {
		return defaultValue
	}
	format, err := valueobjects.FormatFromExtension("." + strings.TrimPrefix(value, "."))
	if err != nil {
		return defaultValue
	}
	return format
}

func (s *ParameterService) formatOf(name string, defaultValue valueobjects.ImageFormat) valueobjects.ImageFormat {
	format, err := valueobjects.FormatFromExtension(filepath.Ext(name))
	if err != nil {
		return defaultValue
	}
	return format
}

func extensionFor(format valueobjects.ImageFormat) string {
	if format == valueobjects.JPEG {
		return "jpg"
	}
	return string(format)
}

package usecases

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"copyfx/internal/domain/entities"
	"copyfx/internal/domain/services"
	"copyfx/internal/domain/valueobjects"
)

type TransformUseCase struct {
	domainService *services.TransformDomainService
	model         string
}

func NewTransformUseCase(domainService *services.TransformDomainService, model string) *TransformUseCase {
	return &TransformUseCase{
		domainService: domainService,
		model:         model,
	}
}

type TransformInput struct {
	InputPath  string
	OutputPath string
	Effect     *valueobjects.Effect
}

type TransformOutput struct {
	OutputPath string
	Image      *valueobjects.ImageData
	Response   string
}

// Execute transforms one file. On success exactly one file is written to
// input.OutputPath; on any failure nothing is written and a
// *entities.TransformError is returned.
func (uc *TransformUseCase) Execute(ctx context.Context, input TransformInput) (*TransformOutput, error) {
	slog.Info("Loading image", "path", input.InputPath)

	raw, err := os.ReadFile(input.InputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, entities.NewTransformError(entities.FailureInputNotFound, input.InputPath, err)
		}
		return nil, entities.NewTransformError(entities.FailureDecode, input.InputPath, err)
	}

	// 出力形式は拡張子から決める。API呼び出し前に確認する
	format, err := valueobjects.FormatFromExtension(filepath.Ext(input.OutputPath))
	if err != nil {
		return nil, entities.NewTransformError(entities.FailureWrite, input.OutputPath, err)
	}

	output, err := uc.transform(ctx, raw, input.Effect, format)
	if err != nil {
		return nil, entities.WithPath(err, input.InputPath)
	}

	if err := writeFile(input.OutputPath, output.Image.Data()); err != nil {
		return nil, entities.NewTransformError(entities.FailureWrite, input.OutputPath, err)
	}
	output.OutputPath = input.OutputPath

	slog.Info("Updated image saved", "path", input.OutputPath, "format", output.Image.Format(), "size", len(output.Image.Data()))

	return output, nil
}

// TransformBytes runs the same pipeline on an in-memory image and returns the
// result encoded as format.
func (uc *TransformUseCase) TransformBytes(
	ctx context.Context,
	raw []byte,
	effect *valueobjects.Effect,
	format valueobjects.ImageFormat,
) (*TransformOutput, error) {
	return uc.transform(ctx, raw, effect, format)
}

func (uc *TransformUseCase) transform(
	ctx context.Context,
	raw []byte,
	effect *valueobjects.Effect,
	format valueobjects.ImageFormat,
) (*TransformOutput, error) {
	if effect == nil {
		return nil, fmt.Errorf("effect is required")
	}

	source, err := valueobjects.NewImageData(raw)
	if err != nil {
		return nil, entities.NewTransformError(entities.FailureDecode, "", err)
	}

	normalized, err := source.ToRGB()
	if err != nil {
		return nil, entities.NewTransformError(entities.FailureDecode, "", err)
	}
	slog.Info("Input image loaded successfully", "format", source.Format(), "sentAs", normalized.MimeType())

	request := entities.NewTransformRequest(uc.model, effect.Prompt(), normalized)

	slog.Info("Sending image and prompt", "model", request.Model(), "effect", effect.Name())
	result, err := uc.domainService.ProcessTransform(ctx, request)
	if err != nil {
		return nil, err
	}

	generated, err := result.ImageData().Decode()
	if err != nil {
		return nil, entities.NewTransformError(entities.FailureNoImage, "", err)
	}

	encoded := result.ImageData()
	if encoded.Format() != format {
		encoded, err = valueobjects.EncodeImage(generated, format)
		if err != nil {
			return nil, entities.NewTransformError(entities.FailureWrite, "", err)
		}
	}

	return &TransformOutput{
		Image:    encoded,
		Response: result.Response(),
	}, nil
}

// writeFile writes data to a temporary file next to path and renames it into
// place, so a failed write never leaves a partial image at path.
func writeFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"copyfx/internal/domain/entities"
	"copyfx/internal/domain/valueobjects"
)

// ImageTransformer is the single-file step a batch run drives.
type ImageTransformer interface {
	Execute(ctx context.Context, input TransformInput) (*TransformOutput, error)
}

type BatchUseCase struct {
	transformer ImageTransformer
}

func NewBatchUseCase(transformer ImageTransformer) *BatchUseCase {
	return &BatchUseCase{
		transformer: transformer,
	}
}

type BatchInput struct {
	InputDir  string
	OutputDir string
	Effect    *valueobjects.Effect
}

// Run transforms every recognized image directly inside InputDir, one at a
// time. Per-file failures are recorded in the report and never stop the run.
// An error is returned only when the run cannot start.
func (uc *BatchUseCase) Run(ctx context.Context, input BatchInput) (*entities.BatchReport, error) {
	if input.Effect == nil {
		return nil, fmt.Errorf("effect is required")
	}

	info, err := os.Stat(input.InputDir)
	if err != nil {
		slog.Error("Input folder does not exist", "path", input.InputDir, "error", err)
		return nil, entities.NewTransformError(entities.FailureInputNotFound, input.InputDir, err)
	}
	if !info.IsDir() {
		slog.Error("Input folder is not a directory", "path", input.InputDir)
		return nil, entities.NewTransformError(entities.FailureInputNotFound, input.InputDir, fmt.Errorf("not a directory"))
	}

	if err := os.MkdirAll(input.OutputDir, 0755); err != nil {
		slog.Error("Failed to create output folder", "path", input.OutputDir, "error", err)
		return nil, entities.NewTransformError(entities.FailureWrite, input.OutputDir, err)
	}

	files, err := listImageFiles(input.InputDir)
	if err != nil {
		return nil, entities.NewTransformError(entities.FailureInputNotFound, input.InputDir, err)
	}

	report := entities.NewBatchReport(uuid.NewString(), len(files))
	logger := slog.With("runID", report.RunID(), "effect", input.Effect.Name())

	if len(files) == 0 {
		logger.Warn("No image files found", "path", input.InputDir)
		return report, nil
	}

	logger.Info("Found image files to process", "count", len(files))

	for i, name := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		logger.Info("Processing", "index", i+1, "total", len(files), "file", name)

		transformInput := TransformInput{
			InputPath:  filepath.Join(input.InputDir, name),
			OutputPath: filepath.Join(input.OutputDir, input.Effect.OutputName(name)),
			Effect:     input.Effect,
		}

		if _, err := uc.transformer.Execute(ctx, transformInput); err != nil {
			logger.Error("Failed to process image", "file", name, "kind", entities.KindOf(err), "error", err)
			report.RecordFailure(transformInput.InputPath, err)
			continue
		}
		report.RecordSuccess()
	}

	logger.Info("Batch finished",
		"processed", report.Processed(),
		"succeeded", report.Succeeded(),
		"failed", len(report.Failures()),
		"elapsed", time.Since(report.StartedAt()).Round(time.Millisecond))

	return report, nil
}

// listImageFiles returns the regular files in dir with a recognized image
// extension, in the order the directory listing yields them.
func listImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if !valueobjects.IsImageFile(entry.Name()) {
			continue
		}

		regular := entry.Type().IsRegular()
		if entry.Type()&os.ModeSymlink != 0 {
			// リンク先が通常ファイルなら対象にする
			target, err := os.Stat(filepath.Join(dir, entry.Name()))
			regular = err == nil && target.Mode().IsRegular()
		}
		if regular {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}

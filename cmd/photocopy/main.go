// Command photocopy gives a single image the look of an old photocopy. The
// result is written next to the input as <name>_photocopy_effect<ext>.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"copyfx/internal/app"
	"copyfx/internal/application/usecases"
	"copyfx/internal/config"
	"copyfx/internal/domain/entities"
	"copyfx/internal/domain/valueobjects"
	"copyfx/pkg/logger"
)

const outputSuffix = "photocopy_effect"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: photocopy <input_image_file_path>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger.SetDefault(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	output, err := run(ctx, cfg, os.Args[1])
	if err != nil {
		if fatal(err) {
			log.Fatal(err)
		}
		// 画像ごとの失敗は報告のみ
		log.Printf("Error: %v", err)
		return
	}
	fmt.Printf("Updated image saved as: %s\n", output)
}

// fatal reports whether err ends the process with a non-zero status. A
// failed transform is reported and the process exits normally.
func fatal(err error) bool {
	return err != nil && entities.KindOf(err) == ""
}

func outputPath(effect *valueobjects.Effect, input string) string {
	return filepath.Join(filepath.Dir(input), effect.OutputName(input))
}

func run(ctx context.Context, cfg *config.Config, input string) (string, error) {
	application, err := app.New(ctx, cfg)
	if err != nil {
		return "", err
	}
	defer application.Close()

	effect, err := application.Effects.FindByName(ctx, valueobjects.PhotocopyEffectName)
	if err != nil {
		return "", err
	}
	effect = effect.WithSuffix(outputSuffix)

	output, err := application.TransformUseCase.Execute(ctx, usecases.TransformInput{
		InputPath:  input,
		OutputPath: outputPath(effect, input),
		Effect:     effect,
	})
	if err != nil {
		return "", err
	}
	return output.OutputPath, nil
}

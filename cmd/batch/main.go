// Command batch applies one effect to every image in a folder.
//
//	batch [-effect photocopy|fax|<name>] <input_dir> <output_dir>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"copyfx/internal/app"
	"copyfx/internal/application/usecases"
	"copyfx/internal/config"
	"copyfx/internal/domain/entities"
	"copyfx/internal/domain/valueobjects"
	"copyfx/pkg/logger"
)

const usage = "Usage: batch [-effect name] <input_folder> <output_folder>"

var errUsage = errors.New(usage)

type options struct {
	effect    string
	inputDir  string
	outputDir string
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.effect, "effect", valueobjects.PhotocopyEffectName, "effect to apply")
	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}

	if fs.NArg() < 2 {
		return nil, errUsage
	}
	opts.inputDir = fs.Arg(0)
	opts.outputDir = fs.Arg(1)

	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// 認証情報がなければ何もせずに終了する
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger.SetDefault(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := run(ctx, cfg, opts)
	if err != nil {
		if fatal(err) {
			log.Fatal(err)
		}
		// 入力フォルダの問題は報告のみで正常終了する
		log.Printf("Error: %v", err)
		return
	}

	printSummary(os.Stdout, report)
}

// fatal reports whether err ends the process with a non-zero status. Only
// setup problems are fatal; anything about the images themselves is reported
// and the process exits normally.
func fatal(err error) bool {
	return err != nil && entities.KindOf(err) == ""
}

func printSummary(w io.Writer, report *entities.BatchReport) {
	fmt.Fprintf(w, "Processed %d/%d images (%d failed)\n", report.Processed(), report.Found(), len(report.Failures()))
	for _, failure := range report.Failures() {
		line := fmt.Sprintf("  %s: %v", failure.InputPath, failure.Err)
		var te *entities.TransformError
		if errors.As(failure.Err, &te) && te.Retryable() {
			line += " (retryable)"
		}
		fmt.Fprintln(w, line)
	}
}

// run executes one batch. Per-file failures are reported, not returned.
func run(ctx context.Context, cfg *config.Config, opts *options) (*entities.BatchReport, error) {
	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer application.Close()

	effect, err := application.Effects.FindByName(ctx, opts.effect)
	if err != nil {
		return nil, err
	}

	slog.Info("Starting batch", "effect", effect.Name(), "input", opts.inputDir, "output", opts.outputDir, "model", cfg.Model)

	return application.BatchUseCase.Run(ctx, usecases.BatchInput{
		InputDir:  opts.inputDir,
		OutputDir: opts.outputDir,
		Effect:    effect,
	})
}

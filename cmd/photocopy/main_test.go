package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"copyfx/internal/config"
	"copyfx/internal/domain/entities"
	"copyfx/internal/domain/valueobjects"
	fixtures "copyfx/test/http"
)

func TestOutputPath(t *testing.T) {
	effect := valueobjects.BuiltinEffects()[0].WithSuffix(outputSuffix)

	tests := []struct {
		input string
		want  string
	}{
		{input: "cat.png", want: "cat_photocopy_effect.png"},
		{input: filepath.Join("scans", "Page.JPG"), want: filepath.Join("scans", "Page_photocopy_effect.JPG")},
		{input: filepath.Join("a.b", "c.d.tiff"), want: filepath.Join("a.b", "c.d_photocopy_effect.tiff")},
	}

	for _, tt := range tests {
		if got := outputPath(effect, tt.input); got != tt.want {
			t.Errorf("outputPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	server := fixtures.NewGeminiServer(http.StatusOK, fixtures.GenerateContentResponse("", fixtures.SamplePNG(), "image/png"))
	defer server.Close()

	cfg := &config.Config{APIKey: "test-key", BaseURL: server.URL, Model: entities.DefaultImageModel}

	dir := t.TempDir()
	input := filepath.Join(dir, "cat.png")
	os.WriteFile(input, fixtures.SamplePNG(), 0644)

	output, err := run(context.Background(), cfg, input)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if want := filepath.Join(dir, "cat_photocopy_effect.png"); output != want {
		t.Errorf("output = %q, want %q", output, want)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("Expected output file to exist: %v", err)
	}
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		input   func(dir string) string
		wantErr error
	}{
		{
			name:    "missing input",
			status:  http.StatusOK,
			body:    "{}",
			input:   func(dir string) string { return filepath.Join(dir, "missing.png") },
			wantErr: entities.ErrInputNotFound,
		},
		{
			name:   "no image in response",
			status: http.StatusOK,
			body:   fixtures.GenerateContentResponse("I cannot do that", nil, ""),
			input: func(dir string) string {
				path := filepath.Join(dir, "cat.png")
				os.WriteFile(path, fixtures.SamplePNG(), 0644)
				return path
			},
			wantErr: entities.ErrNoImage,
		},
		{
			name:   "undecodable input",
			status: http.StatusOK,
			body:   "{}",
			input: func(dir string) string {
				path := filepath.Join(dir, "cat.png")
				os.WriteFile(path, []byte("not an image"), 0644)
				return path
			},
			wantErr: entities.ErrDecode,
		},
		{
			name:   "quota exhausted",
			status: http.StatusTooManyRequests,
			body:   fixtures.ErrorResponse(429, "RESOURCE_EXHAUSTED", "Quota exceeded"),
			input: func(dir string) string {
				path := filepath.Join(dir, "cat.png")
				os.WriteFile(path, fixtures.SamplePNG(), 0644)
				return path
			},
			wantErr: entities.ErrQuota,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := fixtures.NewGeminiServer(tt.status, tt.body)
			defer server.Close()

			cfg := &config.Config{APIKey: "test-key", BaseURL: server.URL}
			dir := t.TempDir()

			_, err := run(context.Background(), cfg, tt.input(dir))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tt.wantErr)
			}
			if fatal(err) {
				t.Errorf("A failed transform should be reported without failing the process")
			}

			entries, _ := os.ReadDir(dir)
			for _, entry := range entries {
				if entry.Name() != "cat.png" {
					t.Errorf("Unexpected file %s", entry.Name())
				}
			}
		})
	}
}

func TestFatal(t *testing.T) {
	if fatal(nil) {
		t.Errorf("nil error should not be fatal")
	}
	if !fatal(config.ErrMissingAPIKey) {
		t.Errorf("configuration errors should be fatal")
	}
	if fatal(entities.NewTransformError(entities.FailureTransport, "cat.png", errors.New("connection reset"))) {
		t.Errorf("transform failures should not be fatal")
	}
}

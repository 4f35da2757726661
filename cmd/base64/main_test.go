package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"copyfx/model"
	"copyfx/test/http"
)

func writeResponse(t *testing.T, dir, name string, response model.TransformResponse) {
	t.Helper()
	b, err := json.Marshal(response)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), b, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRun(t *testing.T) {
	responsesDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	png := http.SamplePNG()

	writeResponse(t, responsesDir, "ok.json", model.TransformResponse{
		Success: true,
		Image:   &model.Image{Name: "cat_photocopy.png", Data: base64.StdEncoding.EncodeToString(png), MimeType: "image/png"},
	})
	writeResponse(t, responsesDir, "unnamed.json", model.TransformResponse{
		Success: true,
		Image:   &model.Image{Data: base64.StdEncoding.EncodeToString(png), MimeType: "image/png"},
	})
	writeResponse(t, responsesDir, "failed.json", model.TransformResponse{Success: false, Error: "no image"})
	os.WriteFile(filepath.Join(responsesDir, "notes.txt"), []byte("ignore me"), 0644)

	if err := run(responsesDir, outputDir); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, name := range []string{"cat_photocopy.png", "unnamed.png"} {
		data, err := os.ReadFile(filepath.Join(outputDir, name))
		if err != nil {
			t.Fatalf("Expected %s to be written: %v", name, err)
		}
		if !bytes.Equal(data, png) {
			t.Errorf("%s does not match the original image", name)
		}
	}

	entries, _ := os.ReadDir(outputDir)
	if len(entries) != 2 {
		t.Errorf("Expected 2 output files, got %d", len(entries))
	}
}

func TestRunMissingDir(t *testing.T) {
	if err := run(filepath.Join(t.TempDir(), "missing"), t.TempDir()); err == nil {
		t.Error("Expected an error for a missing responses directory")
	}
}

// Command base64 turns saved JSON responses from the effects server back into
// image files.
//
//	base64 <responses_dir> <output_dir>
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"copyfx/model"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: base64 <responses_dir> <output_dir>")
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2]); err != nil {
		log.Fatal(err)
	}
}

func run(responsesDir, outputDir string) error {
	files, err := os.ReadDir(responsesDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	for _, file := range files {
		if file.IsDir() || !strings.EqualFold(filepath.Ext(file.Name()), ".json") {
			continue
		}

		path := filepath.Join(responsesDir, file.Name())
		name, err := save(path, outputDir)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			continue
		}
		log.Printf("Saved %s", name)
	}

	return nil
}

// save decodes one response file and writes its image, returning the path
// written.
func save(path, outputDir string) (string, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var response model.TransformResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("invalid response JSON: %w", err)
	}

	data, err := response.DecodeImage()
	if err != nil {
		return "", err
	}

	// 名前がなければレスポンスファイル名を使う
	name := filepath.Base(response.Image.Name)
	if response.Image.Name == "" || name == "." || name == string(filepath.Separator) {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
	}

	out := filepath.Join(outputDir, name)
	if err := os.WriteFile(out, data, 0644); err != nil {
		return "", err
	}
	return out, nil
}

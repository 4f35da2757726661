// Package http holds canned Gemini API responses and a fake server for tests.
package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// GenerateContentResponse builds a generateContent reply with an optional
// text part followed by an optional inline image part.
func GenerateContentResponse(text string, imageData []byte, mimeType string) string {
	parts := []map[string]any{}
	if text != "" {
		parts = append(parts, map[string]any{"text": text})
	}
	if imageData != nil {
		parts = append(parts, map[string]any{
			"inlineData": map[string]any{
				"mimeType": mimeType,
				"data":     base64.StdEncoding.EncodeToString(imageData),
			},
		})
	}

	response := map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"role":  "model",
					"parts": parts,
				},
				"finishReason": "STOP",
			},
		},
	}

	b, _ := json.Marshal(response)
	return string(b)
}

// ErrorResponse builds a Google API error body.
func ErrorResponse(code int, status, message string) string {
	b, _ := json.Marshal(map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
			"status":  status,
		},
	})
	return string(b)
}

// SamplePNG returns a small opaque PNG with a diagonal line.
func SamplePNG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < 8; i++ {
		img.SetRGBA(i, i, color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff})
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// GeminiServer is a fake Gemini endpoint answering every request with the
// configured status and body and remembering what it received.
type GeminiServer struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	requests []Request
}

type Request struct {
	Path string
	Body string
}

func NewGeminiServer(status int, body string) *GeminiServer {
	s := &GeminiServer{status: status, body: body}
	s.Server = httptest.NewServer(nethttp.HandlerFunc(s.handle))
	return s
}

func (s *GeminiServer) Respond(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.body = body
}

func (s *GeminiServer) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *GeminiServer) handle(w nethttp.ResponseWriter, r *nethttp.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{Path: r.URL.Path, Body: string(body)})
	status, respBody := s.status, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.Copy(w, strings.NewReader(respBody))
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"copyfx/internal/application/services"
	"copyfx/internal/application/usecases"
	"copyfx/internal/domain/entities"
	"copyfx/internal/domain/repositories"
	"copyfx/model"
)

const maxFileSize = 10 * 1024 * 1024 // 10MB

type EffectHandler struct {
	transformUseCase *usecases.TransformUseCase
	effects          repositories.EffectRepository
	parameterService *services.ParameterService
}

func NewEffectHandler(
	transformUseCase *usecases.TransformUseCase,
	effects repositories.EffectRepository,
	parameterService *services.ParameterService,
) *EffectHandler {
	return &EffectHandler{
		transformUseCase: transformUseCase,
		effects:          effects,
		parameterService: parameterService,
	}
}

func (h *EffectHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *EffectHandler) HandleEffects(w http.ResponseWriter, r *http.Request) {
	effects, err := h.effects.List(r.Context())
	if err != nil {
		h.sendError(w, "failed to list effects", http.StatusInternalServerError)
		return
	}

	response := model.EffectsResponse{Effects: make([]model.EffectSummary, 0, len(effects))}
	for _, effect := range effects {
		response.Effects = append(response.Effects, model.EffectSummary{Name: effect.Name(), Suffix: effect.Suffix()})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *EffectHandler) HandleTransform(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	effect, err := h.effects.FindByName(r.Context(), name)
	if err != nil {
		h.sendError(w, fmt.Sprintf("unknown effect %q", name), http.StatusNotFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFileSize)
	if err := r.ParseMultipartForm(maxFileSize); err != nil {
		h.sendError(w, "image too large or malformed form (10MB max)", http.StatusRequestEntityTooLarge)
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		h.sendError(w, "an image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		h.sendError(w, "failed to read image file", http.StatusInternalServerError)
		return
	}

	params := h.parameterService.ParseFromRequest(r, effect, fileHeader.Filename)

	started := time.Now()
	output, err := h.transformUseCase.TransformBytes(r.Context(), imageData, effect, params.Format)
	transformDuration.WithLabelValues(effect.Name()).Observe(time.Since(started).Seconds())
	if err != nil {
		kind := entities.KindOf(err)
		transformsTotal.WithLabelValues(effect.Name(), outcomeLabel(kind)).Inc()
		log.Printf("Transform %s failed (request %s): %v", effect.Name(), w.Header().Get(requestIDHeader), err)
		h.sendError(w, err.Error(), statusFor(err))
		return
	}
	transformsTotal.WithLabelValues(effect.Name(), "success").Inc()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store, max-age=0")

	response := model.TransformResponse{
		Success: true,
		Image: &model.Image{
			Name:     params.FileName,
			Data:     output.Image.ToBase64(),
			MimeType: output.Image.MimeType(),
		},
		Response: output.Response,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

func (h *EffectHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(model.TransformResponse{Success: false, Error: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entities.ErrQuota):
		return http.StatusTooManyRequests
	case errors.Is(err, entities.ErrTransport):
		return http.StatusBadGateway
	case errors.Is(err, entities.ErrNoImage):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entities.ErrDecode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func outcomeLabel(kind entities.FailureKind) string {
	if kind == "" {
		return "error"
	}
	return string(kind)
}

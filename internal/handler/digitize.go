package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/scribemd/scribemd-go/internal/model"
	"github.com/scribemd/scribemd-go/internal/prompt"
	"github.com/scribemd/scribemd-go/internal/service"
)

// maxUploadSize caps image uploads before anything reaches the model.
const maxUploadSize = 5 << 20 // 5 MiB

// DigitizeHandler handles HTTP requests that call the vision model.
type DigitizeHandler struct {
	service *service.DigitizeService
}

// NewDigitizeHandler creates a new DigitizeHandler.
func NewDigitizeHandler(svc *service.DigitizeService) *DigitizeHandler {
	return &DigitizeHandler{service: svc}
}

// HandleDigitize handles POST /digitize requests. The multipart body must
// carry one "image" field of at most 5 MiB; an optional "prompt" field
// selects the template.
func (h *DigitizeHandler) HandleDigitize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+512*1024)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Imagem excede o limite de 5 MB ou o formulário é inválido."))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Image is required"))
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		writeJSON(w, http.StatusBadRequest, errorResponse("Arquivo inválido: envie uma imagem."))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Falha ao ler a imagem."))
		return
	}
	if len(data) > maxUploadSize {
		writeJSON(w, http.StatusBadRequest, errorResponse("Imagem excede o limite de 5 MB."))
		return
	}

	answer, err := h.service.Digitize(r.Context(), data, mimeType, r.FormValue("prompt"))
	if err != nil {
		slog.Error("digitize failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.AnswerResponse{Answer: answer})
}

// HandleChat handles POST /chat requests.
func (h *DigitizeHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Corpo da requisição inválido."))
		return
	}

	answer, err := h.service.Chat(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrMessageRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse("Message is required"))
			return
		}
		slog.Error("chat failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.AnswerResponse{Answer: answer})
}

// HandlePrompts handles GET /prompts requests, listing the available
// digitization templates.
func (h *DigitizeHandler) HandlePrompts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]prompt.Prompt{"prompts": prompt.List()})
}

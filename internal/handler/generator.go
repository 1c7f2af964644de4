package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vaultpass/passgen/internal/charset"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

const maxBodyBytes = 1 << 10

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
// An empty body generates with the defaults.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.Body != nil && r.ContentLength != 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleClasses handles GET /api/v1/classes requests, listing the characters
// of every class.
func (h *GeneratorHandler) HandleClasses(w http.ResponseWriter, r *http.Request) {
	table := h.service.Table()
	out := make(map[model.Class]string, len(model.Classes))
	for _, class := range model.Classes {
		out[class] = string(table.Chars(class))
	}
	writeJSON(w, http.StatusOK, out)
}

func isValidationError(err error) bool {
	return errors.Is(err, charset.ErrLengthTooShort) ||
		errors.Is(err, charset.ErrLengthTooLong) ||
		errors.Is(err, charset.ErrNoClassSelected) ||
		errors.Is(err, charset.ErrUnknownClass)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/erin-james/ai-query-interface/service/query"
)

type handler struct {
	svc    query.IService
	logger *zap.Logger
}

type answerResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Query handles GET /query?question=... and always answers 200 with an
// answer payload when a question is present; the service converts every
// failure into a sentence.
func (h *handler) Query(w http.ResponseWriter, r *http.Request) {
	question := r.URL.Query().Get("question")
	if question == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing question parameter"}, h.logger)
		return
	}

	answer := h.svc.ResolveQuestion(r.Context(), question)
	writeJSON(w, http.StatusOK, answerResponse{Answer: answer}, h.logger)
}

func (h *handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "query API is running"}, h.logger)
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

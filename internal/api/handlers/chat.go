package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ilomad/portfolio-assistant/internal/api"
	"github.com/ilomad/portfolio-assistant/internal/domain"
	"github.com/ilomad/portfolio-assistant/internal/service"
)

// AssistantService answers visitor questions.
type AssistantService interface {
	Answer(ctx context.Context, input service.AnswerInput) (*service.AnswerOutput, error)
}

type ChatHandler struct {
	svc AssistantService
}

func NewChatHandler(svc AssistantService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type ChatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// Chat answers one visitor message. An unknown language tag is not an error;
// the service falls back to detection.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lang, _ := domain.ParseLanguage(req.Language)
	input := service.AnswerInput{
		Message:  req.Message,
		Language: lang,
	}

	result, err := h.svc.Answer(r.Context(), input)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, ChatResponse{Response: result.Response})
}

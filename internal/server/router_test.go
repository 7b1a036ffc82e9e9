package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ilomad/portfolio-assistant/internal/api/handlers"
	"github.com/ilomad/portfolio-assistant/internal/domain"
	"github.com/ilomad/portfolio-assistant/internal/service"
)

type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) Answer(ctx context.Context, input service.AnswerInput) (*service.AnswerOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnswerOutput), args.Error(1)
}

func setupRouter() (http.Handler, *MockAssistantService) {
	assistantSvc := new(MockAssistantService)

	cfg := RouterConfig{
		ChatHandler: handlers.NewChatHandler(assistantSvc),
	}

	router := NewRouter(cfg)
	return router, assistantSvc
}

func TestRouter_HealthEndpoint(t *testing.T) {
	router, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
}

func TestRouter_Chat(t *testing.T) {
	router, assistantSvc := setupRouter()

	expected := service.AnswerInput{Message: "Bonjour", Language: domain.LanguageFrench}
	assistantSvc.On("Answer", mock.Anything, expected).Return(&service.AnswerOutput{
		Response: "Bonjour !",
		Language: domain.LanguageFrench,
		Intent:   domain.IntentGreeting,
	}, nil)

	body := bytes.NewBufferString(`{"message":"Bonjour","language":"fr"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handlers.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bonjour !", resp.Response)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assistantSvc.AssertExpectations(t)
}

func TestRouter_Chat_MethodNotAllowed(t *testing.T) {
	router, assistantSvc := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assistantSvc.AssertNotCalled(t, "Answer")
}

func TestRouter_Chat_BodyTooLarge(t *testing.T) {
	router, assistantSvc := setupRouter()

	huge := strings.Repeat("a", 128*1024)
	body := bytes.NewBufferString(`{"message":"` + huge + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assistantSvc.AssertNotCalled(t, "Answer")
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

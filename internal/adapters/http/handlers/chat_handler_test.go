package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/chatbot-service/internal/domain"
	"github.com/jsamuelsen11/chatbot-service/mocks"
)

func newChatHandler(t *testing.T) (*handlers.ChatHandler, *mocks.MockChatService, *mocks.MockTool) {
	t.Helper()
	chat := mocks.NewMockChatService(t)
	clock := mocks.NewMockTool(t)
	return handlers.NewChatHandler(chat, clock), chat, clock
}

// --- Chat ---

func TestChat_Success(t *testing.T) {
	t.Parallel()
	h, chat, _ := newChatHandler(t)

	sess := testSession()
	chat.EXPECT().Respond(mock.Anything, sess.ID, "Who wrote Dune?").Return("Frank Herbert.", nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", jsonBody(t, dto.ChatRequest{Input: "Who wrote Dune?"}))
	h.Chat(rec, withSession(req, sess))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ChatResponse](t, rec)
	if resp.Response != "Frank Herbert." {
		t.Errorf("Response = %q, want %q", resp.Response, "Frank Herbert.")
	}
}

func TestChat_NoSession(t *testing.T) {
	t.Parallel()
	h, _, _ := newChatHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", jsonBody(t, dto.ChatRequest{Input: "hi"}))
	h.Chat(rec, req)

	requireStatus(t, rec, http.StatusUnauthorized)
	resp := decodeJSON[dto.MessageError](t, rec)
	if resp.Error != "Unauthorized" {
		t.Errorf("Error = %q, want %q", resp.Error, "Unauthorized")
	}
}

func TestChat_BadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"input":`},
		{"missing field", `{}`},
		{"empty input", `{"input":""}`},
		{"whitespace input", `{"input":"   "}`},
		{"wrong type", `{"input":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, _ := newChatHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(tt.body))
			h.Chat(rec, withSession(req, testSession()))

			requireStatus(t, rec, http.StatusBadRequest)
			resp := decodeJSON[dto.MessageError](t, rec)
			if resp.Error != "No input provided" {
				t.Errorf("Error = %q, want %q", resp.Error, "No input provided")
			}
		})
	}
}

func TestChat_ServiceValidationError(t *testing.T) {
	t.Parallel()
	h, chat, _ := newChatHandler(t)

	chat.EXPECT().Respond(mock.Anything, mock.Anything, mock.Anything).
		Return("", &domain.ValidationError{Fields: map[string]string{"input": "No input provided"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", jsonBody(t, dto.ChatRequest{Input: "x"}))
	h.Chat(rec, withSession(req, testSession()))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestChat_UnexpectedError(t *testing.T) {
	t.Parallel()
	h, chat, _ := newChatHandler(t)

	chat.EXPECT().Respond(mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("boom"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", jsonBody(t, dto.ChatRequest{Input: "x"}))
	h.Chat(rec, withSession(req, testSession()))

	requireStatus(t, rec, http.StatusInternalServerError)
	resp := decodeJSON[dto.MessageError](t, rec)
	if resp.Error != "Internal server error: boom" {
		t.Errorf("Error = %q, want %q", resp.Error, "Internal server error: boom")
	}
}

// --- CurrentTime ---

func TestCurrentTime_Success(t *testing.T) {
	t.Parallel()
	h, _, clock := newChatHandler(t)

	clock.EXPECT().Run(mock.Anything, "").Return("2026-02-12 10:04 AM", nil)

	rec := httptest.NewRecorder()
	h.CurrentTime(rec, httptest.NewRequest(http.MethodGet, "/current_time", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.CurrentTimeResponse](t, rec)
	if resp.CurrentTime != "2026-02-12 10:04 AM" {
		t.Errorf("CurrentTime = %q, want %q", resp.CurrentTime, "2026-02-12 10:04 AM")
	}
}

func TestCurrentTime_Failure(t *testing.T) {
	t.Parallel()
	h, _, clock := newChatHandler(t)

	clock.EXPECT().Run(mock.Anything, "").Return("", errors.New("no clock"))

	rec := httptest.NewRecorder()
	h.CurrentTime(rec, httptest.NewRequest(http.MethodGet, "/current_time", nil))

	requireStatus(t, rec, http.StatusInternalServerError)
	resp := decodeJSON[dto.MessageError](t, rec)
	if resp.Error != "Unable to fetch the current time" {
		t.Errorf("Error = %q, want %q", resp.Error, "Unable to fetch the current time")
	}
}

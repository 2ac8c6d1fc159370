package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) ChatConfig {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.APIKey = "test-key"
	return cfg
}

func chatReply(content string) chatCompletionResponse {
	var resp chatCompletionResponse
	resp.Model = "gpt-4o-mini"
	resp.Choices = append(resp.Choices, struct {
		Message wireMessage `json:"message"`
	}{Message: wireMessage{Role: "assistant", Content: content}})
	return resp
}

func TestChatClient_Chat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatReply("the answer"))
	}))
	defer srv.Close()

	client := NewChatClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "system prompt"},
			{Role: RoleUser, Content: "user prompt"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "the answer", resp.Message.Content)
	assert.Equal(t, RoleAssistant, resp.Message.Role)
	assert.Empty(t, resp.Message.ToolCalls)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestChatClient_Chat_ToolCallRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		// First call declares the tool; the reply requests it.
		if len(req.Messages) == 2 {
			require.Len(t, req.Tools, 1)
			assert.Equal(t, "function", req.Tools[0].Type)
			assert.Equal(t, "web_search", req.Tools[0].Function.Name)

			var resp chatCompletionResponse
			var tc wireToolCall
			tc.ID = "call_1"
			tc.Type = "function"
			tc.Function.Name = "web_search"
			tc.Function.Arguments = `{"query":"probate fees singapore"}`
			resp.Choices = append(resp.Choices, struct {
				Message wireMessage `json:"message"`
			}{Message: wireMessage{Role: "assistant", ToolCalls: []wireToolCall{tc}}})
			json.NewEncoder(w).Encode(resp)
			return
		}

		// Second call carries the tool result back.
		last := req.Messages[len(req.Messages)-1]
		assert.Equal(t, "tool", last.Role)
		assert.Equal(t, "call_1", last.ToolCallID)
		json.NewEncoder(w).Encode(chatReply("fees are $250"))
	}))
	defer srv.Close()

	client := NewChatClient(testConfig(srv.URL), NoopObserver{})
	tool := Tool{
		Name:        "web_search",
		Description: "Search the web",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{"type": "string"},
			},
		},
	}

	msgs := []Message{
		{Role: RoleSystem, Content: "system"},
		{Role: RoleUser, Content: "how much are probate fees?"},
	}
	first, err := client.Chat(context.Background(), ChatRequest{Messages: msgs, Tools: []Tool{tool}})
	require.NoError(t, err)
	require.Len(t, first.Message.ToolCalls, 1)
	assert.Equal(t, "web_search", first.Message.ToolCalls[0].Name)
	assert.JSONEq(t, `{"query":"probate fees singapore"}`, first.Message.ToolCalls[0].Arguments)

	msgs = append(msgs, first.Message, Message{
		Role:       RoleTool,
		ToolCallID: first.Message.ToolCalls[0].ID,
		Content:    `{"results":[]}`,
	})
	second, err := client.Chat(context.Background(), ChatRequest{Messages: msgs, Tools: []Tool{tool}})
	require.NoError(t, err)
	assert.Equal(t, "fees are $250", second.Message.Content)
}

func TestChatClient_Chat_MissingAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	client := NewChatClient(cfg, NoopObserver{})

	_, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestChatClient_Chat_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	client := NewChatClient(cfg, NoopObserver{})
	_, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestChatClient_Chat_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	cfg.MaxRetries = 0

	client := NewChatClient(cfg, NoopObserver{})
	_, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestChatClient_Chat_RetryOnTransientError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("internal error"))
			return
		}
		json.NewEncoder(w).Encode(chatReply("ok"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewChatClient(cfg, NoopObserver{})
	resp, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message.Content)
	assert.Equal(t, 2, attempts)
}

func TestChatClient_Chat_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatCompletionResponse{Model: "gpt-4o-mini"})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0

	client := NewChatClient(cfg, NoopObserver{})
	_, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestChatClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewChatClient(testConfig(srv.URL), NoopObserver{})
	assert.True(t, client.Available(context.Background()))

	down := NewChatClient(testConfig("http://127.0.0.1:1"), NoopObserver{})
	assert.False(t, down.Available(context.Background()))

	unkeyed := DefaultConfig()
	unkeyed.Endpoint = srv.URL
	assert.False(t, NewChatClient(unkeyed, NoopObserver{}).Available(context.Background()))
}

func TestChatClient_ObserverCalled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatReply("ok"))
	}))
	defer srv.Close()

	var captured ChatCallEvent
	obs := &captureObserver{fn: func(e ChatCallEvent) { captured = e }}

	client := NewChatClient(testConfig(srv.URL), obs)
	_, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.True(t, captured.Success)
	assert.False(t, captured.ToolCall)
}

func TestChatClient_ObserverTimeoutErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0
	cfg.TimeoutMs = 50

	var captured ChatCallEvent
	obs := &captureObserver{fn: func(e ChatCallEvent) { captured = e }}
	client := NewChatClient(cfg, obs)

	_, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, captured.Success)
	assert.Equal(t, "TIMEOUT", captured.ErrorCode)
}

type captureObserver struct {
	fn func(ChatCallEvent)
}

func (o *captureObserver) OnCallComplete(e ChatCallEvent) { o.fn(e) }

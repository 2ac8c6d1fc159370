// Package agent implements the estate assistant: a chat service that
// answers administration questions, reaching for a web-search tool when
// the model asks for current information. The assistant degrades to a
// canned reply when the backend is unreachable; it never blocks the
// wizard.
package agent

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytlim/estatepath/internal/llm"
)

// maxToolRounds bounds the search detour so a misbehaving model cannot
// loop forever.
const maxToolRounds = 3

// Reply is the assistant's answer to one question.
type Reply struct {
	Response   string
	UsedSearch bool
	Query      string
}

// TranscriptEntry is one message in the session transcript.
type TranscriptEntry struct {
	ID      string
	Role    llm.Role
	Content string
	At      time.Time
}

var webSearchTool = llm.Tool{
	Name:        "web_search",
	Description: "Search the web for current information such as fees, processing times, and government office details.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The search query",
			},
		},
		"required": []string{"query"},
	},
}

// ChatService answers user questions, keeping a per-session transcript.
type ChatService struct {
	client llm.ChatClient
	search *SearchClient

	mu         sync.Mutex
	transcript []TranscriptEntry
}

// NewChatService creates a ChatService. client may be nil when the
// assistant is disabled; every query then returns the fallback reply.
func NewChatService(client llm.ChatClient, search *SearchClient) *ChatService {
	return &ChatService{client: client, search: search}
}

// Query answers one question. Transport and model failures are absorbed
// into a friendly fallback reply; Query never returns an error.
func (s *ChatService) Query(ctx context.Context, question string) Reply {
	s.record(llm.RoleUser, question)

	reply := s.ask(ctx, question)
	s.record(llm.RoleAssistant, reply.Response)
	return reply
}

func (s *ChatService) ask(ctx context.Context, question string) Reply {
	if s.client == nil {
		return Reply{Response: fallbackReply}
	}

	msgs := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: question},
	}

	var usedSearch bool
	var lastQuery string

	for round := 0; round < maxToolRounds; round++ {
		resp, err := s.client.Chat(ctx, llm.ChatRequest{
			Messages: msgs,
			Tools:    []llm.Tool{webSearchTool},
		})
		if err != nil {
			return Reply{Response: fallbackReply}
		}

		if len(resp.Message.ToolCalls) == 0 {
			return Reply{
				Response:   resp.Message.Content,
				UsedSearch: usedSearch,
				Query:      lastQuery,
			}
		}

		msgs = append(msgs, resp.Message)
		for _, tc := range resp.Message.ToolCalls {
			result := s.runTool(ctx, tc)
			if tc.Name == "web_search" {
				usedSearch = true
				lastQuery = toolQuery(tc.Arguments)
			}
			msgs = append(msgs, llm.Message{
				Role:       llm.RoleTool,
				ToolCallID: tc.ID,
				Content:    result,
			})
		}
	}

	return Reply{Response: fallbackReply, UsedSearch: usedSearch, Query: lastQuery}
}

// runTool executes one tool call and returns the JSON payload fed back
// to the model. Search failures become an error payload, not a user
// failure; the model is told and answers from its own knowledge.
func (s *ChatService) runTool(ctx context.Context, tc llm.ToolCall) string {
	if tc.Name != "web_search" || s.search == nil {
		return `{"error":"unknown tool"}`
	}

	results, err := s.search.Search(ctx, toolQuery(tc.Arguments))
	if err != nil {
		return `{"error":"search failed, answer from your own knowledge"}`
	}

	data, err := json.Marshal(map[string]any{"results": results})
	if err != nil {
		return `{"error":"search failed, answer from your own knowledge"}`
	}
	return string(data)
}

func toolQuery(arguments string) string {
	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return ""
	}
	return args.Query
}

func (s *ChatService) record(role llm.Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, TranscriptEntry{
		ID:      uuid.New().String(),
		Role:    role,
		Content: content,
		At:      time.Now(),
	})
}

// Transcript returns the session transcript in order.
func (s *ChatService) Transcript() []TranscriptEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TranscriptEntry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
)

func serve(t *testing.T, status int, body any) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func openAIBody(content, finish string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAIProvider(t *testing.T) {
	url := serve(t, http.StatusOK, openAIBody(`{"skill":"writing"}`, "stop"))
	p, err := NewOpenAIProvider(Config{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url + "/v1"})
	if err != nil {
		t.Fatal(err)
	}
	req := UserPrompt("coach", "advise")
	req.Schema = adviceSchema
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 || resp.StopReason != "end" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestOpenAIProviderTruncated(t *testing.T) {
	url := serve(t, http.StatusOK, openAIBody(`{"skill":`, "length"))
	p, _ := NewOpenAIProvider(Config{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url + "/v1"})
	req := UserPrompt("", "advise")
	req.Schema = adviceSchema
	_, err := p.Generate(context.Background(), req)
	var mt *ErrMaxTokensExceeded
	if !errors.As(err, &mt) {
		t.Fatalf("expected max tokens error, got %v", err)
	}
}

func TestOpenAIProviderRateLimit(t *testing.T) {
	url := serve(t, http.StatusTooManyRequests, map[string]any{
		"error": map[string]any{"message": "slow down", "type": "rate_limit_error"},
	})
	p, _ := NewOpenRouterProvider(Config{APIKey: "k", Model: "m", BaseURL: url + "/v1"})
	_, err := p.Generate(context.Background(), UserPrompt("", "hi"))
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected rate limit, got %v", err)
	}
}

func TestAnthropicProvider(t *testing.T) {
	url := serve(t, http.StatusOK, map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": `{"skill":"speaking"}`}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": "end_turn",
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	})
	p, err := NewAnthropicProvider(Config{APIKey: "k", Model: "claude-haiku"}, option.WithBaseURL(url), option.WithMaxRetries(0))
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "claude-haiku-4-5-20251001" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
	req := UserPrompt("coach", "advise")
	req.Schema = adviceSchema
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.TotalTokens != 80 {
		t.Errorf("total tokens = %d", resp.Usage.TotalTokens)
	}
}

func TestAnthropicProviderServerError(t *testing.T) {
	url := serve(t, http.StatusInternalServerError, map[string]any{
		"type":  "error",
		"error": map[string]any{"type": "api_error", "message": "down"},
	})
	p, _ := NewAnthropicProvider(Config{APIKey: "k", Model: "claude-haiku"}, option.WithBaseURL(url), option.WithMaxRetries(0))
	_, err := p.Generate(context.Background(), UserPrompt("", "hi"))
	var un *ErrProviderUnavailable
	if !errors.As(err, &un) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestModelAliases(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiAliases); got != "gemini-2.0-flash" {
		t.Errorf("gemini-flash -> %q", got)
	}
	if got := resolveModel("gemini-2.5-pro", geminiAliases); got != "gemini-2.5-pro" {
		t.Errorf("pass-through -> %q", got)
	}
}

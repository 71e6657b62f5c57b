package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func completionResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   "gpt-4o-mini",
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	}
}

func newTestBridge(t *testing.T, baseURL string) *Bridge {
	t.Helper()
	return New(Config{
		APIKey:    "test-key",
		Model:     "gpt-4o-mini",
		BaseURL:   baseURL,
		Timeout:   2 * time.Second,
		SchemaSDL: "type Query { orders: [Order] }",
	}, zap.NewNop())
}

func TestGenerateQuery_SanitizesCompletion(t *testing.T) {
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		raw := "```graphql\n{\n  orders(filter: { status: [shipped] }) {\n    id\n  }\n}\n```"
		require.NoError(t, json.NewEncoder(w).Encode(completionResponse(raw)))
	}))
	defer srv.Close()

	b := newTestBridge(t, srv.URL)
	got := b.GenerateQuery(context.Background(), "orders that are shipped")

	assert.Equal(t, "{ orders(filter: { status: [shipped] }) { id } }", got)

	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Contains(t, gotBody.Messages[0].Content, "type Query { orders: [Order] }")
	assert.Equal(t, "user", gotBody.Messages[1].Role)
	assert.Equal(t, "orders that are shipped", gotBody.Messages[1].Content)
}

func TestGenerateQuery_APIErrorReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"model overloaded"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	b := newTestBridge(t, srv.URL)
	assert.Equal(t, "", b.GenerateQuery(context.Background(), "anything"))
}

func TestGenerateQuery_TransportFailureReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	b := newTestBridge(t, srv.URL)
	assert.Equal(t, "", b.GenerateQuery(context.Background(), "anything"))
}

func TestGenerateQuery_NoChoicesReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		resp := completionResponse("")
		resp["choices"] = []interface{}{}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	b := newTestBridge(t, srv.URL)
	assert.Equal(t, "", b.GenerateQuery(context.Background(), "anything"))
}

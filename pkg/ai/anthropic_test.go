package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnthropicCompleterJoinsTextBlocks(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/v1/messages"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-5-haiku-latest",
			"content": [
				{"type": "text", "text": "{\"hasError\": "},
				{"type": "text", "text": "false}"}
			],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`))
	}))
	defer server.Close()

	completer, err := NewAnthropicCompleter(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)
	require.Equal(t, ProviderAnthropic, completer.Provider())

	text, err := completer.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	require.Equal(t, `{"hasError": false}`, text)
	require.Equal(t, float64(500), captured["max_tokens"])
	require.Equal(t, "claude-3-5-haiku-latest", captured["model"])
}

func TestAnthropicCompleterRequiresKey(t *testing.T) {
	_, err := NewAnthropicCompleter(Config{})
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestAnthropicCompleterSendsZeroTemperature(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_2","type":"message","role":"assistant","model":"m","content":[{"type":"text","text":"{}"}],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":1}}`))
	}))
	defer server.Close()

	zero := float32(0)
	completer, err := NewAnthropicCompleter(Config{APIKey: "test-key", BaseURL: server.URL, Temperature: &zero})
	require.NoError(t, err)

	_, err = completer.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	require.Contains(t, captured, "temperature")
	require.Equal(t, float64(0), captured["temperature"])
}

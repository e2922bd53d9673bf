package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/autota-go-api/internal/dto"
	"github.com/noah-isme/autota-go-api/internal/normalizer"
	"github.com/noah-isme/autota-go-api/pkg/ai"
)

func TestDetectionServiceRejectsBlankInput(t *testing.T) {
	cases := []dto.DetectErrorRequest{
		{Code: "", Language: "python"},
		{Code: " \n ", Language: "python"},
		{Code: "print(1)", Language: ""},
		{Code: "print(1)", Language: "   "},
	}

	for _, payload := range cases {
		completer := &stubCompleter{response: `{"hasError": false}`}
		svc := NewDetectionService(completer, newTestValidator(), zerolog.Nop())

		_, err := svc.Detect(context.Background(), payload)
		require.ErrorIs(t, err, ErrDetectionInputMissing)
		require.Empty(t, completer.prompts)
	}
}

func TestDetectionServiceRecursivePrompt(t *testing.T) {
	completer := &stubCompleter{response: `{"hasError": true, "errorMessage": "RecursionError: maximum recursion depth exceeded", "errorType": "logical"}`}
	svc := NewDetectionService(completer, newTestValidator(), zerolog.Nop())

	code := "def f(n):\n    if n == 0:\n        return 1\n    return f(n-1)"
	resp, err := svc.Detect(context.Background(), dto.DetectErrorRequest{Code: code, Language: "Python"})
	require.NoError(t, err)
	require.True(t, resp.HasError)
	require.Equal(t, normalizer.ErrorTypeLogical, resp.ErrorType)

	require.Len(t, completer.prompts, 1)
	sent := completer.prompts[0]
	require.Contains(t, sent, "```python\n"+code+"\n```")
	require.Contains(t, sent, "check whether the base case is reachable")
	require.Contains(t, sent, "length <= 1")
}

func TestDetectionServiceFallsBackToPlaintext(t *testing.T) {
	completer := &stubCompleter{response: `{"hasError": false, "errorMessage": "stale", "errorType": "none"}`}
	svc := NewDetectionService(completer, newTestValidator(), zerolog.Nop())

	resp, err := svc.Detect(context.Background(), dto.DetectErrorRequest{Code: "DISPLAY 'HI'.", Language: "cobol"})
	require.NoError(t, err)
	require.Equal(t, dto.DetectErrorResponse{HasError: false, ErrorMessage: "", ErrorType: "none"}, resp)
	require.Contains(t, completer.prompts[0], "```plaintext\n")
}

func TestDetectionServiceSurfacesEmptyCompletion(t *testing.T) {
	svc := NewDetectionService(&stubCompleter{err: ai.ErrEmptyCompletion}, newTestValidator(), zerolog.Nop())

	_, err := svc.Detect(context.Background(), dto.DetectErrorRequest{Code: "x", Language: "python"})
	require.ErrorIs(t, err, ai.ErrEmptyCompletion)
}

func TestDetectionServiceRejectsMalformedCompletion(t *testing.T) {
	svc := NewDetectionService(&stubCompleter{response: "Traceback (most recent call last): ..."}, newTestValidator(), zerolog.Nop())

	resp, err := svc.Detect(context.Background(), dto.DetectErrorRequest{Code: "x", Language: "python"})
	require.ErrorIs(t, err, normalizer.ErrMalformedModelOutput)
	require.Equal(t, dto.DetectErrorResponse{}, resp)
}

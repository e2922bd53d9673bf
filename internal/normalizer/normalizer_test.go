package normalizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHintStripsTaggedFence(t *testing.T) {
	raw := "```json\n{\"broke\":\"x\",\"concept\":\"y\",\"nudge\":\"z\"}\n```"

	result, err := Hint(raw)
	require.NoError(t, err)
	require.Equal(t, HintResult{Broke: "x", Concept: "y", Nudge: "z"}, result)
}

func TestHintStripsUntaggedFence(t *testing.T) {
	raw := "  ```\n{\"broke\":\"x\",\"concept\":\"y\",\"nudge\":\"z\"}\n```  "

	result, err := Hint(raw)
	require.NoError(t, err)
	require.Equal(t, "z", result.Nudge)
}

func TestHintExtractsObjectFromProse(t *testing.T) {
	raw := "Sure! {\"broke\":\"The loop runs past the end\",\"concept\":\"array indexing\",\"nudge\":\"Check line 3\"} Hope that helps."

	result, err := Hint(raw)
	require.NoError(t, err)
	require.Equal(t, "The loop runs past the end", result.Broke)
	require.Equal(t, "array indexing", result.Concept)
	require.Equal(t, "Check line 3", result.Nudge)
}

func TestHintDefaultsMissingFields(t *testing.T) {
	result, err := Hint(`{"broke": "x"}`)
	require.NoError(t, err)
	require.Equal(t, HintResult{Broke: "x"}, result)
}

func TestHintRejectsObjectWithoutHintFields(t *testing.T) {
	_, err := Hint(`{"answer": "use <= instead"}`)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedModelOutput))
}

func TestHintAcceptsCaseVariants(t *testing.T) {
	result, err := Hint(`{"Broke": "x", "CONCEPT": "y", "Nudge": ["Check line 2.", "Print i."]}`)
	require.NoError(t, err)
	require.Equal(t, HintResult{Broke: "x", Concept: "y", Nudge: "Check line 2. Print i."}, result)
}

func TestDetectionSnakeCaseKeys(t *testing.T) {
	raw := `{"has_error": true, "error_message": " IndexError: list index out of range ", "error_type":"runtime"}`

	result, err := Detection(raw)
	require.NoError(t, err)
	require.Equal(t, DetectionResult{
		HasError:     true,
		ErrorMessage: "IndexError: list index out of range",
		ErrorType:    ErrorTypeRuntime,
	}, result)
}

func TestDetectionClearsMessageWithoutError(t *testing.T) {
	result, err := Detection(`{"hasError": false, "errorMessage": "SomeError"}`)
	require.NoError(t, err)
	require.False(t, result.HasError)
	require.Empty(t, result.ErrorMessage)
	require.Equal(t, ErrorTypeNone, result.ErrorType)
}

func TestDetectionPassesUnknownErrorType(t *testing.T) {
	result, err := Detection(`{"hasError": true, "errorMessage": "Segmentation fault", "errorType": "memory"}`)
	require.NoError(t, err)
	require.Equal(t, "memory", result.ErrorType)
	require.False(t, KnownErrorType(result.ErrorType))
}

func TestDetectionCoercesStringBoolean(t *testing.T) {
	result, err := Detection(`{"hasError": "TRUE", "errorMessage": "NameError: name 'x' is not defined", "errorType": "runtime"}`)
	require.NoError(t, err)
	require.True(t, result.HasError)
	require.Equal(t, "NameError: name 'x' is not defined", result.ErrorMessage)
}

func TestDetectionMissingFieldsDefaultToNoError(t *testing.T) {
	result, err := Detection(`{}`)
	require.NoError(t, err)
	require.Equal(t, DetectionResult{ErrorType: ErrorTypeNone}, result)
}

func TestExtractFailures(t *testing.T) {
	cases := map[string]string{
		"no_object":   "I could not analyse this code.",
		"empty":       "",
		"reversed":    "} nothing {",
		"broken_json": "```json\n{\"broke\": \"x\",\n```",
		"only_fence":  "```",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Extract(raw)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrMalformedModelOutput))
		})
	}
}

func TestStripFences(t *testing.T) {
	require.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	require.Equal(t, `{"a":1}`, StripFences("```{\"a\":1}```"))
	require.Equal(t, `plain`, StripFences("  plain  "))
}

func TestKnownErrorType(t *testing.T) {
	for _, known := range []string{ErrorTypeSyntax, ErrorTypeRuntime, ErrorTypeLogical, ErrorTypeNone} {
		require.True(t, KnownErrorType(known))
	}
	require.False(t, KnownErrorType("Runtime"))
}

func TestHintCaseInsensitiveMatchIsStable(t *testing.T) {
	raw := `{"BROKE": "upper", "Broke": "title", "bRoKe": "mixed", "concept": "c", "nudge": "n"}`

	for i := 0; i < 50; i++ {
		result, err := Hint(raw)
		require.NoError(t, err)
		// "BROKE" sorts before "Broke" and "bRoKe"
		require.Equal(t, "upper", result.Broke)
	}
}

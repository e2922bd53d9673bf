package language

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"python": "python",
		"Python": "python",
		" JAVA ": "java",
		"cobol":  Plaintext,
		"":       Plaintext,
		"CSharp": "csharp",
		"R":      "r",
	}

	for input, expected := range cases {
		require.Equal(t, expected, Normalize(input), "input %q", input)
	}
}

func TestFromFilename(t *testing.T) {
	require.Equal(t, "python", FromFilename("main.py"))
	require.Equal(t, "typescript", FromFilename("App.TSX"))
	require.Equal(t, "cpp", FromFilename("vector.hpp"))
	require.Equal(t, "c", FromFilename("stdio.h"))
	require.Equal(t, "r", FromFilename("analysis.R"))
	require.Equal(t, Plaintext, FromFilename("README"))
	require.Equal(t, Plaintext, FromFilename("notes.txt"))
}

func TestSupportedIsSortedAndComplete(t *testing.T) {
	list := Supported()
	require.Len(t, list, 17)
	require.IsIncreasing(t, list)
	require.Contains(t, list, Plaintext)

	for _, lang := range Extensions() {
		require.True(t, IsSupported(lang), "extension maps to unsupported language %q", lang)
	}
}

func TestExtensionsReturnsCopy(t *testing.T) {
	table := Extensions()
	table[".py"] = "ruby"
	require.Equal(t, "python", FromFilename("x.py"))
}

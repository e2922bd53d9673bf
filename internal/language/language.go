// Package language holds the closed set of source languages the assistant
// understands and the file-extension table used when students import files.
package language

import (
	"path/filepath"
	"sort"
	"strings"
)

// Plaintext is the fallback identifier for unrecognized languages and files.
const Plaintext = "plaintext"

var supported = map[string]struct{}{
	"python":     {},
	"java":       {},
	"javascript": {},
	"typescript": {},
	"csharp":     {},
	"sql":        {},
	"cpp":        {},
	"c":          {},
	"ruby":       {},
	"go":         {},
	"rust":       {},
	"php":        {},
	"kotlin":     {},
	"swift":      {},
	"r":          {},
	"scala":      {},
	Plaintext:    {},
}

var extensions = map[string]string{
	".py":    "python",
	".java":  "java",
	".js":    "javascript",
	".jsx":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".cs":    "csharp",
	".cpp":   "cpp",
	".cc":    "cpp",
	".cxx":   "cpp",
	".c":     "c",
	".h":     "c",
	".hpp":   "cpp",
	".sql":   "sql",
	".rb":    "ruby",
	".go":    "go",
	".rs":    "rust",
	".kt":    "kotlin",
	".swift": "swift",
	".php":   "php",
	".r":     "r",
	".scala": "scala",
}

// Normalize lowercases the identifier and maps anything outside the supported
// set to Plaintext.
func Normalize(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if _, ok := supported[lower]; ok {
		return lower
	}
	return Plaintext
}

// IsSupported reports whether name (case-insensitive) is a known identifier.
func IsSupported(name string) bool {
	_, ok := supported[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// FromFilename derives the language from a file name, e.g. "main.py" -> "python".
func FromFilename(filename string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	if lang, ok := extensions[ext]; ok {
		return lang
	}
	return Plaintext
}

// Supported returns the sorted list of language identifiers.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for name := range supported {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Extensions returns a copy of the extension table.
func Extensions() map[string]string {
	out := make(map[string]string, len(extensions))
	for ext, lang := range extensions {
		out[ext] = lang
	}
	return out
}

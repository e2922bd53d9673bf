// Package prompt builds the instruction strings sent to the completion backend.
// Every builder is a pure function of its input.
package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// NoAssignment is substituted when the student did not provide an assignment.
const NoAssignment = "(none provided)"

// DetectionInput carries the code whose runtime behaviour the model should predict.
type DetectionInput struct {
	Code     string
	Language string
}

// HintInput carries the context for a teaching hint.
type HintInput struct {
	Assignment    string
	Code          string
	ObservedError string
}

// Detection renders the error detection prompt.
func Detection(input DetectionInput) string {
	builder := strings.Builder{}
	builder.WriteString("You are a ")
	builder.WriteString(input.Language)
	builder.WriteString(" interpreter and compiler. Analyze this ")
	builder.WriteString(input.Language)
	builder.WriteString(" code as if it were executed and detect any errors it would produce.\n\n")

	builder.WriteString("Code:\n```")
	builder.WriteString(input.Language)
	builder.WriteString("\n")
	builder.WriteString(input.Code)
	builder.WriteString("\n```\n\n")

	builder.WriteString("Consider every class of error:\n")
	builder.WriteString("1. Syntax errors: invalid tokens, missing brackets or colons, bad indentation.\n")
	builder.WriteString("2. Runtime errors: type errors, index or key out of bounds, undefined names or variables, division by zero, null dereferences.\n")
	builder.WriteString("3. Logical errors that crash the program through runaway recursion. For every recursive function, trace the calls step by step and check whether the base case is reachable. ")
	builder.WriteString("A base case that is off by one, for example recursing until length == 0 when it should stop at length <= 1, or checking n == 0 when n can skip past zero, ")
	builder.WriteString("never terminates and ends in a maximum recursion depth or stack overflow error. Report it as the error the runtime would print.\n\n")

	builder.WriteString("Respond with ONLY a JSON object (no markdown, no code blocks):\n")
	builder.WriteString("{\n")
	builder.WriteString("  \"hasError\": true or false,\n")
	builder.WriteString("  \"errorMessage\": \"The exact error text as it would appear in the terminal when running this code, or empty string if no errors\",\n")
	builder.WriteString("  \"errorType\": \"syntax\" | \"runtime\" | \"logical\" | \"none\"\n")
	builder.WriteString("}\n\n")

	builder.WriteString("If the code has errors, errorMessage must contain ONLY what the compiler or interpreter would print to the terminal ")
	builder.WriteString("(traceback, line numbers, exception type and message). Do NOT provide explanations, hints, or solutions. ")
	builder.WriteString("If no errors are detected, set hasError to false, errorMessage to an empty string and errorType to \"none\".")

	return builder.String()
}

// Hint renders the teaching assistant prompt. The code is shown with a 1-based
// "N|" prefix on every line so the model can cite real line numbers.
func Hint(input HintInput) string {
	assignment := strings.TrimSpace(input.Assignment)
	if assignment == "" {
		assignment = NoAssignment
	} else {
		assignment = "\"" + assignment + "\""
	}

	listing, lines := NumberLines(input.Code)

	builder := strings.Builder{}
	builder.WriteString("You are AutoTA, an ethical CS teaching assistant for first-year students.\n")
	builder.WriteString("Your role is to help students learn debugging skills, NOT to solve problems for them.\n\n")

	builder.WriteString("Input:\n")
	builder.WriteString("- Assignment: ")
	builder.WriteString(assignment)
	builder.WriteString("\n")
	fmt.Fprintf(&builder, "- Student Code (%d lines, each prefixed with its line number as \"N| \"):\n", lines)
	builder.WriteString(listing)
	builder.WriteString("\n")
	builder.WriteString("- Error Message: \"")
	builder.WriteString(input.ObservedError)
	builder.WriteString("\"\n\n")

	builder.WriteString("You MUST respond with ONLY valid JSON (no markdown, no code blocks, no explanations before or after):\n")
	builder.WriteString("{\n")
	builder.WriteString("  \"broke\": \"One sentence plain English explanation of what went wrong\",\n")
	builder.WriteString("  \"concept\": \"The CS concept name (e.g. 'array indexing', 'null pointer exception', 'syntax error')\",\n")
	builder.WriteString("  \"nudge\": \"1-2 debug steps or hints, NO CODE SOLUTIONS. MUST name the exact line number(s) to look at (e.g. 'Check line 5' or 'Look at lines 10-12').\"\n")
	builder.WriteString("}\n\n")

	builder.WriteString("Rules:\n")
	builder.WriteString("- Never write a corrected or complete solution, and never include fixed code.\n")
	builder.WriteString("- Explain WHY it broke, not just WHAT broke.\n")
	builder.WriteString("- Teach debugging methodology in simple, encouraging language for first-year students.\n")
	fmt.Fprintf(&builder, "- The nudge MUST cite only line numbers that appear in the numbered listing above (1 to %d). Never invent a line number outside that range.\n", lines)
	builder.WriteString("- Return ONLY the JSON object, nothing else.")

	return builder.String()
}

// NumberLines renders code with a "N| " prefix per line and returns the listing
// with its line count. Trailing whitespace of the whole submission is dropped so
// a final newline does not produce an extra empty line; leading lines are kept so
// numbers match the student's editor.
func NumberLines(code string) (string, int) {
	trimmed := strings.TrimRight(code, " \t\r\n")
	if trimmed == "" {
		return "", 0
	}

	lines := strings.Split(trimmed, "\n")
	builder := strings.Builder{}
	for i, line := range lines {
		if i > 0 {
			builder.WriteString("\n")
		}
		line = strings.TrimRight(line, "\r")
		builder.WriteString(strconv.Itoa(i + 1))
		builder.WriteString("|")
		if line != "" {
			builder.WriteString(" ")
			builder.WriteString(line)
		}
	}

	return builder.String(), len(lines)
}

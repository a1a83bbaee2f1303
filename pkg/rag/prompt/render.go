package prompt

import (
	"strings"

	"ai-answer-engine-be/pkg/llm"
)

// Render substitutes {placeholder} variables in a prompt template. Unknown
// placeholders are left untouched so a malformed template stays visible in
// model input rather than silently vanishing.
func Render(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// FormatHistory renders conversation turns the way the retriever prompts
// expect inside their <conversation> block.
func FormatHistory(history []llm.Message) string {
	var b strings.Builder
	for _, msg := range history {
		role := "Assistant"
		if msg.Role == "human" || msg.Role == "user" {
			role = "Human"
		}
		b.WriteString(role)
		b.WriteString(": ")
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

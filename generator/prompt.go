package generator

import (
	"fmt"
	"strings"
)

// Prompt is the single user message sent to the LLM.
type Prompt struct {
	User string
}

var postRequirements = []string{
	"Engaging hook in first line",
	"Better audience engagement",
	"Call to action at the end",
	"Use emojis sparingly but effectively",
	"Keep it under 300 words",
	"Make it relatable and shareable",
	"Include relevant hashtags at the end",
}

// BuildPostPrompt renders the single-turn request for a post about sel.Topic in sel.Tone.
func BuildPostPrompt(sel Selection) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Write a LinkedIn post about %s.\n", sel.Topic))
	sb.WriteString(fmt.Sprintf("Tone: %s\n", sel.Tone))
	sb.WriteString("Requirements:\n")
	for _, r := range postRequirements {
		sb.WriteString(fmt.Sprintf("- %s\n", r))
	}
	return Prompt{User: sb.String()}
}

package generator

import (
	"regexp"
	"strings"
)

var boldRe = regexp.MustCompile(`\*\*(.*?)\*\*`)

// CleanPost trims the model output and unwraps **bold** spans in one pass.
// Nothing else about the text is touched.
func CleanPost(raw string) string {
	return boldRe.ReplaceAllString(strings.TrimSpace(raw), "$1")
}

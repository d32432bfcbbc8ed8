package agent

import (
	"regexp"
	"strings"
)

var (
	ansiEscapePattern = regexp.MustCompile(`\x1B(?:[@-Z\\\-_]|\[[0-?]*[ -/]*[@-~])`)
	boxDrawingPattern = regexp.MustCompile(`[\x{2500}-\x{257F}]`)
	headingPattern    = regexp.MustCompile(`(?m)^#+\s+`)
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern     = regexp.MustCompile(`\*([^*]+)\*`)
	codePattern       = regexp.MustCompile("`([^`]+)`")
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	bulletPattern     = regexp.MustCompile(`(?m)^\s*[•*]\s+`)
	ruleLinePattern   = regexp.MustCompile(`(?m)^\s*[-•=]+\s*$`)
	blankLinesPattern = regexp.MustCompile(`\n{3,}`)
)

// CleanResponse strips terminal escape sequences, box-drawing characters and
// markdown formatting from model output, leaving plain readable text for the
// console and the HTML page.
func CleanResponse(text string) string {
	content := ansiEscapePattern.ReplaceAllString(text, "")
	content = boxDrawingPattern.ReplaceAllString(content, "")

	// Markdown markers: keep the content, drop the formatting
	content = headingPattern.ReplaceAllString(content, "")
	content = boldPattern.ReplaceAllString(content, "$1")
	content = italicPattern.ReplaceAllString(content, "$1")
	content = codePattern.ReplaceAllString(content, "$1")
	content = linkPattern.ReplaceAllString(content, "$1")

	content = ruleLinePattern.ReplaceAllString(content, "")
	content = bulletPattern.ReplaceAllString(content, "- ")
	content = strings.ReplaceAll(content, "•", "-")

	content = blankLinesPattern.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}

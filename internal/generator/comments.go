package generator

import (
	"strings"

	"github.com/canonical/go-wlscan/internal/protocol"
)

// Write a doc comment made of a heading line followed by the description
// text, if any. Each line of text is trimmed and blank lines are kept as
// empty comment lines, with leading and trailing ones dropped.
func (g *generator) comment(indent, heading string, text string) {
	g.printf("%s// %s\n", indent, heading)
	lines := textLines(text)
	if len(lines) == 0 {
		return
	}
	g.printf("%s//\n", indent)
	for _, line := range lines {
		if line == "" {
			g.printf("%s//\n", indent)
			continue
		}
		g.printf("%s// %s\n", indent, line)
	}
}

// Write the doc comment of a declaration, using its description when
// present and fallback otherwise.
func (g *generator) doc(indent, name string, desc *protocol.Description, fallback string) {
	if desc == nil || (desc.Summary == "" && strings.TrimSpace(desc.Text) == "") {
		g.printf("%s// %s %s\n", indent, name, fallback)
		return
	}
	summary := oneLine(desc.Summary)
	if summary == "" {
		summary = fallback
	}
	g.comment(indent, name+": "+summary, desc.Text)
}

func textLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	// Squash runs of blank lines.
	var out []string
	for i, line := range lines {
		if line == "" && i > 0 && lines[i-1] == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Collapse whitespace, so that a summary fits on a single comment line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// The copyright notice goes into a block comment, which must not be closed
// early by the notice itself.
func blockComment(text string) string {
	lines := textLines(text)
	for i, line := range lines {
		lines[i] = strings.ReplaceAll(line, "*/", "* /")
	}
	return "/*\n" + strings.Join(lines, "\n") + "\n*/\n"
}

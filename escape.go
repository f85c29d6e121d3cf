package www

import "strings"

// Marker is the comment that marks the template line replaced by the
// rendered input.
const Marker = "<!-- OUTPUT -->"

// escapeSteps run in this order, each on the result of the previous one.
// "&" goes first so entities added by later steps are not escaped again.
var escapeSteps = [...]struct{ old, new string }{
	{"&", "&amp;"},
	{"<", "&lt;"},
	{">", "&gt;"},
	{`"`, "&quot;"},
	{" ", "&nbsp;"},
	{"\t", "&nbsp;&nbsp;&nbsp;&nbsp;"},
}

// TextToHTML escapes one line of text for display inside a block element.
// Only the characters & < > " space and tab are replaced. The result is not
// safe inside attribute values or scripts.
func TextToHTML(s string) string {
	for _, step := range escapeSteps {
		s = strings.ReplaceAll(s, step.old, step.new)
	}
	return s
}

// RenderLine wraps an escaped line in a <div>. An empty line is rendered as a
// single space so the fragment keeps a visible height.
func RenderLine(line string) string {
	if line == "" {
		line = " "
	}
	return "<div>" + TextToHTML(line) + "</div>"
}

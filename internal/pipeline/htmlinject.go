package pipeline

import (
	"context"
	"errors"
	"html"
	"io"
	"strings"

	xhtml "golang.org/x/net/html"
)

// ErrMarkerOutsideBody indicates the insertion marker comment sits in <head>
// or outside the <body> element.
var ErrMarkerOutsideBody = errors.New("output marker is outside <body>")

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// The block always occupies whole lines so line-oriented templates keep
// their marker line intact.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>\n" + strings.TrimRight(sanitizeCSS(cssContent), "\n") + "\n</style>\n"
	lowerHTML := strings.ToLower(htmlContent)

	// Before </head>, at the start of its line
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		lineStart := strings.LastIndex(htmlContent[:idx], "\n") + 1
		if strings.TrimSpace(htmlContent[lineStart:idx]) == "" {
			return htmlContent[:lineStart] + styleBlock + htmlContent[lineStart:]
		}
		return htmlContent[:idx] + "\n" + styleBlock + htmlContent[idx:]
	}

	// After the line holding <body...>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			if nl := strings.Index(htmlContent[insertPos:], "\n"); nl != -1 {
				insertPos += nl + 1
				return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
			}
			return htmlContent[:insertPos] + "\n" + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// TitleInjector defines the contract for page title injection.
type TitleInjector interface {
	InjectTitle(ctx context.Context, htmlContent, title string) string
}

// TitleInjection replaces the text of the first <title> element.
type TitleInjection struct{}

// InjectTitle sets the text of the first <title> element to the escaped
// title. HTML without a complete <title> element is returned unchanged, as is
// an empty title.
func (t *TitleInjection) InjectTitle(ctx context.Context, htmlContent, title string) string {
	if title == "" || ctx.Err() != nil {
		return htmlContent
	}

	lowerHTML := strings.ToLower(htmlContent)
	open := strings.Index(lowerHTML, "<title")
	if open == -1 {
		return htmlContent
	}
	openEnd := strings.Index(htmlContent[open:], ">")
	if openEnd == -1 {
		return htmlContent
	}
	textStart := open + openEnd + 1
	closeIdx := strings.Index(lowerHTML[textStart:], "</title>")
	if closeIdx == -1 {
		return htmlContent
	}
	textEnd := textStart + closeIdx

	return htmlContent[:textStart] + html.EscapeString(title) + htmlContent[textEnd:]
}

// CheckMarkerPlacement tokenizes htmlContent and verifies that every comment
// matching marker lies inside <body>. Documents without a <body> tag only
// fail when the marker is inside <head>.
func CheckMarkerPlacement(htmlContent, marker string) error {
	want := markerText(marker)

	var (
		inHead, inBody, afterBody bool
		sawBody, beforeBody       bool
	)

	z := xhtml.NewTokenizer(strings.NewReader(htmlContent))
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return err
			}
			if beforeBody && sawBody {
				return ErrMarkerOutsideBody
			}
			return nil
		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "head":
				inHead = true
			case "body":
				inHead, inBody, sawBody = false, true, true
			}
		case xhtml.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "head":
				inHead = false
			case "body":
				inBody, afterBody = false, true
			}
		case xhtml.CommentToken:
			if strings.TrimSpace(string(z.Text())) != want {
				continue
			}
			if inHead || afterBody {
				return ErrMarkerOutsideBody
			}
			if !inBody {
				beforeBody = true
			}
		}
	}
}

// markerText returns the comment payload of a "<!-- X -->" marker.
func markerText(marker string) string {
	s := strings.TrimSpace(marker)
	s = strings.TrimPrefix(s, "<!--")
	s = strings.TrimSuffix(s, "-->")
	return strings.TrimSpace(s)
}

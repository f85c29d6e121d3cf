// Package pipeline implements the text injections applied to a page template
// before it is split into lines.
//
// Injections work on the raw template text:
//   - TitleInjection replaces the <title> text
//   - CSSInjection adds a <style> block on lines of its own
//
// CheckMarkerPlacement tokenizes the template with golang.org/x/net/html and
// rejects an insertion marker that would render outside <body>, where the
// page filter never looks.
package pipeline

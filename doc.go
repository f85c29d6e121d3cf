// Package www turns line-oriented text into a searchable HTML page.
//
// # Quick Start
//
// Create a converter and convert a reader:
//
//	conv, err := www.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, www.Input{
//	    Reader: os.Stdin,
//	    Title:  "build.log",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("build.html", result.HTML, 0644)
//
// Every input line becomes one <div> in the page body. The default template
// carries a small script that hides or highlights lines matching a regular
// expression, entirely in the browser.
//
// # Conversion Pipeline
//
//  1. Template selection (embedded, asset directory or file) and CSS injection
//  2. Title injection and template parsing (exactly one marker line)
//  3. Strict decoding of the input to UTF-8
//  4. Rendering: each line is escaped and wrapped, replacing the marker line
//
// # Escaping
//
// TextToHTML replaces & < > " space and tab, in that order. It is meant for
// block element text only and is not an HTML sanitizer.
//
// # Templates
//
// A template is any text with exactly one line containing "<!-- OUTPUT -->"
// inside <body>. That whole line is replaced by the rendered input; every
// other line is copied as is.
//
// # Statistics
//
// Result.Stats reports the lines fetched, the lines generated (template
// lines included) and the characters fetched. For any input:
//
//	LinesGenerated == (template lines - 1) + LinesFetched
package www

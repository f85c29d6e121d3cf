// Package assets holds the page templates and extra styles of www.
//
// Built-in assets are embedded; an asset directory given with --asset-path
// is searched first and uses the same layout:
//
//	templates/{name}.html   page with one <!-- OUTPUT --> line inside <body>
//	styles/{name}.css       CSS injected as a <style> block
//
// Names are bare ("dark", not "dark.css"); paths are handled by the caller.
package assets

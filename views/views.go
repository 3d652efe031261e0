// Package views embeds the HTML templates so the server and its tests can
// render pages regardless of the working directory.
package views

import "embed"

// FS holds every template, including layouts.
//
//go:embed layouts/*.html *.html
var FS embed.FS

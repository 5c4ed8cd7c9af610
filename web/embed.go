// Package web holds the dashboard templates and static assets.
package web

import "embed"

// Templates holds the layouts, partials and pages parsed by internal/view.
//
//go:embed templates
var Templates embed.FS

// Static holds the assets served under /static/.
//
//go:embed static
var Static embed.FS

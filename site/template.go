package site

import _ "embed"

// DefaultTemplate is the page template used when the build is not
// given one. It carries the toc and entries splice markers and renders
// usefully without any client-side code.
//
//go:embed template.html
var DefaultTemplate string

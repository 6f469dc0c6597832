package web

import "embed"

// staticFS embeds the stylesheet and other fixed assets served under
// /static/
//
//go:embed static
var staticFS embed.FS

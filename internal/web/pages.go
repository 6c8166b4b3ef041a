package web

import _ "embed"

// Pages are static shells; all state comes from the JSON API and the
// per-session SSE stream.

//go:embed pages/home.html
var homeHTML []byte

//go:embed pages/host.html
var hostHTML []byte

//go:embed pages/player.html
var playerHTML []byte

// Package web holds the static chat page served at GET /.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte

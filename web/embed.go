// Package web embebe los archivos estáticos servidos por la API.
package web

import _ "embed"

// IndexHTML página de inicio servida en "/".
//
//go:embed index.html
var IndexHTML []byte

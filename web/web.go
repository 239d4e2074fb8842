// Package web carries the HTML templates compiled into the binary.
package web

import "embed"

//go:embed templates/*.tmpl
var Templates embed.FS

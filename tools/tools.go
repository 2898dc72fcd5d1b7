//go:build tools

// Package tools pins the code generators and linters run by go:generate and
// CI, e.g. `go run -modfile=tools/go.mod github.com/matryer/moq`.
package tools

import (
	_ "github.com/matryer/moq"
	_ "honnef.co/go/tools/cmd/staticcheck"
)

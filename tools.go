//go:build tools
// +build tools

// Package tools tracks the code generators used via go generate.
package tools

import (
	_ "go.uber.org/mock/mockgen"
)

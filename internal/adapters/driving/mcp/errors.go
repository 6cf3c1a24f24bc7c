// Package mcp provides an MCP (Model Context Protocol) server adapter for radix.
// It lets AI assistants run base conversions and read conversion history.
package mcp

import "errors"

// ErrMissingConverterService is returned when the converter service is not provided.
var ErrMissingConverterService = errors.New("mcp: converter service is required")

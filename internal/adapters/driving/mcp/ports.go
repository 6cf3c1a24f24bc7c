package mcp

import (
	"github.com/custodia-labs/radix/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server uses.
type Ports struct {
	// Converter runs conversions.
	Converter driving.ConverterService

	// History exposes recorded conversions. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Converter == nil {
		return ErrMissingConverterService
	}
	return nil
}

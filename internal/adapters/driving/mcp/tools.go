package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/radix/internal/core/domain"
	"github.com/custodia-labs/radix/internal/core/ports/driving"
)

// ConvertInput is the input schema for the convert tool.
type ConvertInput struct {
	Input string `json:"input" jsonschema:"the digit string to convert, without any prefix"`
	From  string `json:"from" jsonschema:"source base: 2-16 or bin, oct, dec, hex"`
	To    string `json:"to" jsonschema:"target base: 2-16 or bin, oct, dec, hex"`
	Steps *bool  `json:"steps,omitempty" jsonschema:"include the step-by-step derivation (default from settings)"`
}

// ConvertOutput is the output schema for the convert tool.
type ConvertOutput struct {
	Source     string   `json:"source"`
	SourceBase int      `json:"source_base"`
	Target     string   `json:"target"`
	TargetBase int      `json:"target_base"`
	Magnitude  int64    `json:"magnitude"`
	Strategy   string   `json:"strategy,omitempty"`
	Title      string   `json:"title,omitempty"`
	Steps      []string `json:"steps,omitempty"`
}

// ValidateInput is the input schema for the validate tool.
type ValidateInput struct {
	Input string `json:"input" jsonschema:"the digit string to check"`
	Base  string `json:"base" jsonschema:"base to check against: 2-16 or bin, oct, dec, hex"`
}

// ValidateOutput is the output schema for the validate tool.
type ValidateOutput struct {
	Valid  bool   `json:"valid"`
	Digits string `json:"digits,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a non-negative integer between bases 2 to 16, optionally with a step-by-step derivation",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate",
		Description: "Check whether a digit string is valid in a base",
	}, s.handleValidate)
}

func (s *Server) handleConvert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	if err := domain.CheckInputLength(input.Input); err != nil {
		return nil, ConvertOutput{}, err
	}
	from, err := domain.ParseBase(input.From)
	if err != nil {
		return nil, ConvertOutput{}, fmt.Errorf("from: %w", err)
	}
	to, err := domain.ParseBase(input.To)
	if err != nil {
		return nil, ConvertOutput{}, fmt.Errorf("to: %w", err)
	}

	result, err := s.ports.Converter.Convert(ctx, driving.ConvertRequest{
		Input: input.Input,
		From:  from,
		To:    to,
		Steps: input.Steps,
	})
	if err != nil {
		return nil, ConvertOutput{}, err
	}

	output := ConvertOutput{
		Source:     result.Source.Digits,
		SourceBase: int(result.Source.Base),
		Target:     result.Target.Digits,
		TargetBase: int(result.Target.Base),
		Magnitude:  result.Magnitude,
	}
	if result.HasTrace() {
		output.Strategy = string(result.Strategy)
		output.Title = result.TraceTitle()
		output.Steps = make([]string, len(result.Steps))
		for i, step := range result.Steps {
			output.Steps[i] = step.String()
		}
	}

	return nil, output, nil
}

func (s *Server) handleValidate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ValidateInput,
) (*mcp.CallToolResult, ValidateOutput, error) {
	base, err := domain.ParseBase(input.Base)
	if err != nil {
		return nil, ValidateOutput{}, err
	}

	if err := domain.CheckInputLength(input.Input); err != nil {
		return nil, ValidateOutput{Valid: false, Reason: err.Error()}, nil
	}
	numeral, err := s.ports.Converter.Validate(input.Input, base)
	if err != nil {
		return nil, ValidateOutput{Valid: false, Reason: err.Error()}, nil
	}
	return nil, ValidateOutput{Valid: true, Digits: numeral.Digits}, nil
}

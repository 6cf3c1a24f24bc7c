package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/radix/internal/core/domain"
)

const uriScheme = "radix://"

const mimeJSON = "application/json"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "bases",
		Name:        "bases",
		Description: "Supported bases with their digit alphabets and literal prefixes",
		MIMEType:    mimeJSON,
	}, s.handleBasesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recorded conversions, newest first",
		MIMEType:    mimeJSON,
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{entryId}",
		Name:        "history-entry",
		Description: "A single recorded conversion",
		MIMEType:    mimeJSON,
	}, s.handleHistoryEntryResource)
}

type baseInfo struct {
	Base        int    `json:"base"`
	Name        string `json:"name"`
	Prefix      string `json:"prefix,omitempty"`
	Digits      string `json:"digits"`
	Description string `json:"description"`
}

func (s *Server) handleBasesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	infos := make([]baseInfo, 0, int(domain.MaxBase-domain.MinBase)+1)
	for b := domain.MinBase; b <= domain.MaxBase; b++ {
		infos = append(infos, baseInfo{
			Base:        int(b),
			Name:        b.Name(),
			Prefix:      b.Prefix(),
			Digits:      domain.Alphabet[:b],
			Description: b.Description(),
		})
	}
	return jsonResult(req.Params.URI, infos)
}

func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResult(req.Params.URI, []domain.HistoryEntry{})
	}

	entries, err := s.ports.History.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return jsonResult(req.Params.URI, entries)
}

func (s *Server) handleHistoryEntryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	id := extractEntryID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entry, err := s.ports.History.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting history entry: %w", err)
	}
	return jsonResult(req.Params.URI, entry)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractEntryID extracts the entry ID from a URI like radix://history/{entryId}.
func extractEntryID(uri string) string {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}

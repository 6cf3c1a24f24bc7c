package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix/internal/adapters/driving/mcp"
	"github.com/custodia-labs/radix/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can run
conversions and read the conversion history.

Tools:     convert, validate
Resources: radix://bases, radix://history, radix://history/{id}

By default the server communicates over stdio using JSON-RPC. Use --port
to serve streamable HTTP instead; HTTP requests are rate limited.

Examples:
  # Stdio mode (default)
  radix mcp serve

  # HTTP mode, 5 requests per second with bursts of 10
  radix mcp serve --port 8080 --rate 5 --burst 10`,
	RunE: runMCPServe,
}

func init() {
	defaults := mcp.DefaultHTTPOptions()
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64("rate", defaults.RequestsPerSecond, "HTTP requests per second (0 = unlimited)")
	mcpServeCmd.Flags().Int("burst", defaults.Burst, "HTTP request burst size")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	rps, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return fmt.Errorf("getting rate flag: %w", err)
	}
	burst, err := cmd.Flags().GetInt("burst")
	if err != nil {
		return fmt.Errorf("getting burst flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Converter: converterService,
		History:   historyService,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if configWatcher != nil {
		go func() {
			if err := configWatcher.Watch(ctx, nil); err != nil {
				logger.Warn("config watcher stopped: %v", err)
			}
		}()
	}

	addr := ""
	if port > 0 {
		addr = fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
	}
	return serveMCP(ctx, server, addr, mcp.HTTPOptions{RequestsPerSecond: rps, Burst: burst})
}

// serveMCP runs the server over HTTP when addr is set, stdio otherwise.
var serveMCP = func(ctx context.Context, server *mcp.Server, addr string, opts mcp.HTTPOptions) error {
	if addr != "" {
		return server.RunHTTP(ctx, addr, opts)
	}
	return server.Run(ctx)
}

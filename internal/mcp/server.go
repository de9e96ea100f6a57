// ABOUTME: MCP server exposing the gymtrack stores to assistants.
// ABOUTME: Tool calls are serialized so the stores keep a single writer.
package mcp

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/harperreed/gymtrack/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Server wraps the MCP server with tracker access.
type Server struct {
	mcpServer *mcp.Server
	tracker   *tracker.Tracker
	logger    *log.Logger

	// mu serializes every handler; the stores are not safe for concurrent use.
	mu sync.Mutex
}

// NewServer creates a new MCP server over an opened tracker.
func NewServer(t *tracker.Tracker, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "gymtrack",
			Version: Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		tracker:   t,
		logger:    logger,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("serving MCP over stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// Package server assembles the MCP stdio server that exposes the share
// API as tools.
//
// Handlers never return an error to the MCP runtime: every failure is
// rendered as a plain "Error: ..." string and returned as the tool
// result, because the host surfaces that string directly to the user.
package server

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/shareapi/share-api-mcp/internal/api"
	"github.com/shareapi/share-api-mcp/internal/config"
	"github.com/shareapi/share-api-mcp/internal/logging"
)

// Server wires the share API client into an MCP server.
type Server struct {
	mcp    *mcpserver.MCPServer
	logger *slog.Logger

	// newClient is swapped by tests to inject transports.
	newClient func(config.Settings) *api.Client
}

// New creates the server and registers all tools.
func New(version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		mcp:    mcpserver.NewMCPServer("share-api", version),
		logger: logger,
		newClient: func(st config.Settings) *api.Client {
			return api.New(st, logger)
		},
	}
	s.registerTools()
	return s
}

// ServeStdio runs the MCP protocol over stdin/stdout until the host
// disconnects.
func (s *Server) ServeStdio() error {
	return mcpserver.ServeStdio(s.mcp)
}

// HandleMessage processes a single raw JSON-RPC message. It exists so
// tests can drive the server through the real protocol layer without a
// stdio transport.
func (s *Server) HandleMessage(ctx context.Context, message json.RawMessage) mcp.JSONRPCMessage {
	return s.mcp.HandleMessage(ctx, message)
}

// errString converts any failure into the single-channel error form
// the MCP host expects.
func errString(err error) string {
	return "Error: " + err.Error()
}

// resolveBaseURL applies the precedence explicit argument > environment.
// No network call can happen without a base URL.
func resolveBaseURL(arg string, st config.Settings) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if st.BaseURL != "" {
		return st.BaseURL, nil
	}
	return "", api.ErrNoBaseURL
}

// resolveDownloadDir applies the precedence explicit argument >
// environment > ./downloads default (already folded into Settings).
func resolveDownloadDir(arg string, st config.Settings) string {
	if arg != "" {
		return arg
	}
	return st.DownloadDir
}

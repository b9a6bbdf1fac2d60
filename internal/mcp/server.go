// ABOUTME: MCP server for bench integration with AI agents.
// ABOUTME: Exposes board, calendar, and bench tools over stdio.

package mcp

import (
	"context"

	"github.com/harper/bench/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	server *mcp.Server
	store  *store.Store
}

func NewServer(st *store.Store) *Server {
	s := &Server{store: st}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "bench",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			HasTools: true,
		},
	)

	s.registerTools()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Package mcpserver exposes the fraud scoring engine as MCP tools so LLM
// agents can score transactions and inspect the accepted field values.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/novapay/fraudscore/internal/features"
	"github.com/novapay/fraudscore/internal/model"
)

// Config for the MCP server.
type Config struct {
	// Strict surfaces unknown categorical tokens as tool errors instead of
	// the code-0 fallback.
	Strict bool
}

// NewMCPServer creates a configured MCP server with the scoring tools
// registered against an already loaded model package.
func NewMCPServer(pkg *model.Package, cfg Config) *server.MCPServer {
	s := server.NewMCPServer("fraudscore", "0.1.0")
	h := NewHandlers(&features.Encoder{Strict: cfg.Strict}, pkg)

	s.AddTool(ToolScoreTransaction, h.HandleScoreTransaction)
	s.AddTool(ToolListFieldOptions, h.HandleListFieldOptions)

	return s
}

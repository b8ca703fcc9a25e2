// fraudscore MCP server - exposes the scoring engine as MCP tools for LLMs
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/novapay/fraudscore/internal/config"
	"github.com/novapay/fraudscore/internal/mcpserver"
	"github.com/novapay/fraudscore/internal/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Unlike the HTTP service, a missing artifact here is fatal: an MCP
	// server with no classifier has nothing to offer.
	pkg, err := model.Load(cfg.ModelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load model from %s: %v\n", cfg.ModelPath, err)
		os.Exit(1)
	}

	s := mcpserver.NewMCPServer(pkg, mcpserver.Config{Strict: cfg.StrictCategorical})
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "versus/internal/adapters/mcp"
	"versus/internal/adapters/sqlite"
	"versus/internal/config"
	"versus/internal/logging"
)

func main() {
	configFlag := flag.String("config", config.DefaultPath(), "config file")
	rootFlag := flag.String("root", "", "entries directory (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("versus-mcp: %v", err)
	}
	if *rootFlag != "" {
		cfg.Root = *rootFlag
	}
	logger := logging.New(cfg.Logging.Level)

	store, err := sqlite.Open(cfg.ExpandedDatabasePath())
	if err != nil {
		log.Fatalf("versus-mcp: %v", err)
	}
	defer store.Close()

	mcpServer := server.NewMCPServer(
		"versus-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store, cfg.ExpandedRoot(), logger)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("versus-mcp: %v", err)
	}
}

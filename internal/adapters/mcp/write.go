package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"versus/internal/application/commands"
	"versus/internal/ports"
)

// RegisterWriteTools adds the mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.EntryStore, root string, logger *slog.Logger) {
	s.AddTool(recordTool(), recordHandler(store))
	s.AddTool(syncTool(), syncHandler(store, root, logger))
}

// --- record_comparison ---

func recordTool() mcp.Tool {
	return mcp.NewTool("record_comparison",
		mcp.WithDescription("Record that one entry beats another. Both paths are relative to the entries root and must differ."),
		mcp.WithString("winner",
			mcp.Description("Path of the winning entry"),
			mcp.Required(),
		),
		mcp.WithString("loser",
			mcp.Description("Path of the losing entry"),
			mcp.Required(),
		),
	)
}

func recordHandler(store ports.EntryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		winner := req.GetString("winner", "")
		loser := req.GetString("loser", "")

		if err := commands.NewRecordCommand(store, winner, loser).Execute(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Recorded %s over %s.", winner, loser)), nil
	}
}

// --- sync ---

func syncTool() mcp.Tool {
	return mcp.NewTool("sync",
		mcp.WithDescription("Reconcile the entries directory against the store: new files become entries, changed files append versions, vanished files are tombstoned."),
		mcp.WithBoolean("prune",
			mcp.Description("Physically delete files whose entry is already tombstoned instead of failing. Defaults to false."),
		),
	)
}

func syncHandler(store ports.EntryStore, root string, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		policy := commands.SyncFailOnTombstoned
		if req.GetBool("prune", false) {
			policy = commands.SyncPruneTombstoned
		}

		stats, err := commands.NewSyncCommand(store, root, policy, logger).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"Scanned %d files: %d created, %d updated, %d tombstoned, %d pruned.",
			stats.Scanned, stats.Created, stats.Updated, stats.Tombstoned, stats.Pruned,
		)), nil
	}
}

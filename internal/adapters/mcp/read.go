package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"versus/internal/application/commands"
	"versus/internal/domain"
	"versus/internal/ports"
)

// RegisterReadTools adds all read-only ranking tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.EntryStore) {
	s.AddTool(rankTool(), rankHandler(store))
	s.AddTool(showEntryTool(), showEntryHandler(store))
	s.AddTool(historyTool(), historyHandler(store))
}

// --- rank ---

func rankTool() mcp.Tool {
	return mcp.NewTool("rank",
		mcp.WithDescription("List the current standings, best entry first. Ratings are replayed from the comparison log."),
		mcp.WithBoolean("include_deleted",
			mcp.Description("Include tombstoned entries, flagged deleted. Defaults to false."),
		),
	)
}

func rankHandler(store ports.EntryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		includeDeleted := req.GetBool("include_deleted", false)

		ranked, err := commands.NewRankCommand(store, includeDeleted).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(ranked) == 0 {
			return mcp.NewToolResultText("No entries."), nil
		}

		var sb strings.Builder
		for i := len(ranked) - 1; i >= 0; i-- {
			sb.WriteString(formatStanding(commands.DisplayIndex(len(ranked), i), ranked[i]))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- show_entry ---

func showEntryTool() mcp.Tool {
	return mcp.NewTool("show_entry",
		mcp.WithDescription("Show one ranked entry with its full content. Index 1 is the current best."),
		mcp.WithNumber("index",
			mcp.Description("1-based rank index"),
			mcp.Required(),
		),
	)
}

func showEntryHandler(store ports.EntryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		index := req.GetInt("index", 0)
		if index < 1 {
			return toolError(fmt.Errorf("index must be at least 1"))
		}

		entry, err := commands.NewShowCommand(store, index).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		head := entry.Head()
		var sb strings.Builder
		sb.WriteString(formatStanding(index, entry))
		sb.WriteString("\n\n")
		fmt.Fprintf(&sb, "@ %s\n", head.ObservedAt.Format("2006-01-02 15:04:05"))
		sb.WriteString(strings.TrimSpace(string(head.Content)))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("List the version history of an entry by its path relative to the entries root."),
		mcp.WithString("path",
			mcp.Description("Entry path, e.g. ideas/travel.txt"),
			mcp.Required(),
		),
	)
}

func historyHandler(store ports.EntryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		entries, err := store.ListEntries(ctx)
		if err != nil {
			return toolError(err)
		}

		for _, entry := range entries {
			if entry.Path != path {
				continue
			}
			var sb strings.Builder
			for i, v := range entry.Versions {
				if v.Tombstone() {
					fmt.Fprintf(&sb, "%d. %s  deleted\n", i+1, v.ObservedAt.Format("2006-01-02 15:04:05"))
				} else {
					fmt.Fprintf(&sb, "%d. %s  %d bytes\n", i+1, v.ObservedAt.Format("2006-01-02 15:04:05"), len(v.Content))
				}
			}
			return mcp.NewToolResultText(sb.String()), nil
		}
		return toolError(fmt.Errorf("no entry at %s", path))
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatStanding(index int, entry domain.RankedEntry) string {
	return fmt.Sprintf("%d. %s (score: %d, deviation: %d)",
		index, entry.Title(), int64(entry.Rating.Value), int64(entry.Rating.Deviation))
}

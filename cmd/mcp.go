package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"docnav/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as MCP server over stdio",
	Run:   runMCP,
}

func runMCP(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	srv := mcp.NewServer(newFetcher(cfg))
	if err := srv.Run(); err != nil {
		log.Fatalf("mcp server failed: %v", err)
	}
}

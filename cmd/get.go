package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"docnav/internal/docs"
	"docnav/internal/render"
)

var getCmd = &cobra.Command{
	Use:   "get <docview://version/id | id>",
	Short: "Read one documentation item as markdown",
	Example: `  docnav get docview://v2/getting-started
  docnav get getting-started
  docnav get getting-started --docs-version v2`,
	Args: cobra.ExactArgs(1),
	Run:  runGet,
}

var getVersion string

func init() {
	getCmd.Flags().StringVar(&getVersion, "docs-version", "", "documentation version (default: catalog first entry)")
}

func runGet(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	version := getVersion
	id := args[0]
	if trimmed, ok := strings.CutPrefix(id, "docview://"); ok {
		parts := strings.SplitN(trimmed, "/", 2)
		if len(parts) < 2 {
			log.Fatalf("invalid URI: need docview://version/id")
		}
		version, id = parts[0], parts[1]
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}
	fetcher := newFetcher(cfg)

	version, err = defaultVersion(ctx, fetcher, version)
	if err != nil {
		log.Fatalf("%v", err)
	}

	// A single item read does not need the whole dataset resolved.
	var item docs.Item
	path := fmt.Sprintf("data/%s/items/%s.json", version, id)
	if err := fetcher.JSON(ctx, path, &item); err != nil {
		log.Fatalf("fetching item: %v", err)
	}

	fmt.Print(render.ItemMarkdown(&item))
}

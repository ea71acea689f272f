package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"docnav/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search a version's documentation by substring",
	Example: `  docnav search "getting started"
  docnav search install --limit 5
  docnav search install --docs-version v2`,
	Args: cobra.ExactArgs(1),
	Run:  runSearch,
}

var (
	searchVersion string
	searchLimit   int
)

func init() {
	searchCmd.Flags().StringVar(&searchVersion, "docs-version", "", "documentation version (default: catalog first entry)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "max results")
}

func runSearch(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}
	fetcher := newFetcher(cfg)

	version, err := defaultVersion(ctx, fetcher, searchVersion)
	if err != nil {
		log.Fatalf("%v", err)
	}

	data, err := resolveVersionData(ctx, cfg, fetcher, version)
	if err != nil {
		log.Fatalf("%v", err)
	}

	matches := search.Search(data.Items, args[0])
	if len(matches) == 0 {
		fmt.Println("no results")
		return
	}
	if searchLimit > 0 && len(matches) > searchLimit {
		matches = matches[:searchLimit]
	}

	for i, m := range matches {
		fmt.Printf("%d. %s  (docview://%s/%s)\n", i+1, m.Item.Title, version, m.Item.ID)
		if m.Snippet != "" {
			fmt.Printf("   %s\n", m.Snippet)
		}
		if len(m.Item.Tags) > 0 {
			fmt.Printf("   tags: %s\n", strings.Join(m.Item.Tags, ", "))
		}
	}
}

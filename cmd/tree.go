package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"docnav/internal/nav"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the navigation view of a version's category tree",
	Example: `  docnav tree
  docnav tree --expand-all
  docnav tree --filter install --expand-all
  docnav tree --docs-version v2`,
	Run: runTree,
}

var (
	treeVersion   string
	treeFilter    string
	treeExpandAll bool
)

func init() {
	treeCmd.Flags().StringVar(&treeVersion, "docs-version", "", "documentation version (default: catalog first entry)")
	treeCmd.Flags().StringVar(&treeFilter, "filter", "", "filter rows by case-insensitive substring")
	treeCmd.Flags().BoolVar(&treeExpandAll, "expand-all", false, "expand every category")
}

func runTree(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}
	fetcher := newFetcher(cfg)

	version, err := defaultVersion(ctx, fetcher, treeVersion)
	if err != nil {
		log.Fatalf("%v", err)
	}

	data, err := resolveVersionData(ctx, cfg, fetcher, version)
	if err != nil {
		log.Fatalf("%v", err)
	}

	index := nav.New(data)
	if treeExpandAll {
		index.ExpandAll()
	}
	if treeFilter != "" {
		index.SetFilter(treeFilter)
	}

	rows := index.Rows()
	if len(rows) == 0 {
		fmt.Println("no matching entries")
		return
	}

	for _, row := range rows {
		indent := strings.Repeat("  ", row.Depth)
		if row.Kind == nav.RowCategory {
			marker := "+"
			if row.Expanded {
				marker = "-"
			}
			fmt.Printf("%s%s %s\n", indent, marker, row.Category.Title)
			continue
		}
		fmt.Printf("%s  %s  (%s)\n", indent, row.Doc.Title, row.Doc.ID)
	}
}

package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"docnav/internal/docs"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List available documentation versions",
	Run:   runVersions,
}

func runVersions(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	versions, err := docs.LoadVersions(context.Background(), newFetcher(cfg))
	if err != nil {
		log.Fatalf("loading versions: %v", err)
	}

	for i, v := range versions {
		marker := " "
		if i == 0 {
			marker = "*" // default selection
		}
		fmt.Printf("%s %s  %s\n", marker, v.Version, v.Label)
	}
}

package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"docnav/internal/config"
	"docnav/internal/docs"
	"docnav/internal/fetch"
)

var baseOverride string

var rootCmd = &cobra.Command{
	Use:   "docnav",
	Short: "Browse versioned documentation datasets",
	Long: `docnav loads versioned, JSON-described documentation content over the
network, resolves it into a navigable category tree, and exposes it through
a CLI, a local HTTP server, and an MCP server.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseOverride, "base", "", "base URL of the documentation dataset (overrides config)")

	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(cacheCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if baseOverride != "" {
		cfg.BaseURL = baseOverride
	}
	return cfg, nil
}

func newFetcher(cfg *config.Config) fetch.Fetcher {
	return fetch.NewHTTP(cfg.BaseURL, time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second)
}

// defaultVersion resolves an empty version to the catalog's first entry.
func defaultVersion(ctx context.Context, f fetch.Fetcher, version string) (string, error) {
	if version != "" {
		return version, nil
	}
	versions, err := docs.LoadVersions(ctx, f)
	if err != nil {
		return "", err
	}
	return versions[0].Version, nil
}

// resolveVersionData loads and resolves one version's dataset, going through
// the on-disk snapshot when caching is enabled.
func resolveVersionData(ctx context.Context, cfg *config.Config, f fetch.Fetcher, version string) (*docs.VersionData, error) {
	loader := docs.NewLoader(f)

	if cfg.Cache.Enabled && docs.HasSnapshot(version) {
		raw, err := docs.LoadSnapshot(version)
		if err == nil {
			return loader.Resolve(raw), nil
		}
		log.Printf("snapshot for %s unreadable, refetching: %v", version, err)
	}

	raw, err := loader.FetchRaw(ctx, version)
	if err != nil {
		return nil, err
	}
	if cfg.Cache.Enabled {
		if err := docs.SaveSnapshot(raw); err != nil {
			log.Printf("failed to save snapshot for %s: %v", version, err)
		}
	}
	return loader.Resolve(raw), nil
}

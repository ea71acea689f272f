package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"docnav/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage on-disk dataset snapshots",
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List cached dataset snapshots",
	Run:   runCacheStatus,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached dataset snapshots",
	Run:   runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

func runCacheStatus(cmd *cobra.Command, args []string) {
	dir := config.SnapshotDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("no snapshots")
			return
		}
		log.Fatalf("reading snapshot dir: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("no snapshots")
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".json.zst") {
			continue
		}
		version := strings.TrimSuffix(name, ".json.zst")
		size := int64(0)
		if info, err := entry.Info(); err == nil {
			size = info.Size()
		}
		fmt.Printf("  %s  %d bytes\n", version, size)
	}
}

func runCacheClear(cmd *cobra.Command, args []string) {
	dir := config.SnapshotDir()
	if err := os.RemoveAll(dir); err != nil {
		log.Fatalf("clearing snapshots: %v", err)
	}
	fmt.Printf("cleared %s\n", filepath.Clean(dir))
}

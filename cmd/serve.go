package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"docnav/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host a dataset directory over HTTP with a resolved read API",
	Long: `Serve a documentation dataset directory: the raw JSON resources under
/data/ and a resolved API under /api/ (versions, tree, search, items).`,
	Example: `  docnav serve --dir ./site
  docnav serve --dir ./site --port 9090 --allow-all-origins`,
	Run: runServe,
}

var (
	serveDir      string
	servePort     int
	serveAllowAll bool
)

func init() {
	serveCmd.Flags().StringVar(&serveDir, "dir", ".", "site root containing the data/ subdirectory")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow all CORS origins")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	port := servePort
	if port == 0 {
		port = cfg.Serve.Port
	}

	srv := server.New(server.Config{
		Port:     port,
		DataDir:  serveDir,
		AllowAll: serveAllowAll || cfg.Serve.AllowAllOrigins,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server failed: %v", err)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("shutdown failed: %v", err)
		}
	}
}

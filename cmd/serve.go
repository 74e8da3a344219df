package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/gizmo-platform/gizmoget/internal/server"
)

var (
	serveListen string
	servePage   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the download page",
	Long: `Serve runs an HTTP server for the download page. Each request plays one
page load: the client's platform is detected from its headers, exactly one
download button is revealed, and the download links are rewritten against the
resolved release prefix. When no prefix resolves, the page is served with its
links unrewritten.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "bind address (default from config, :8080)")
	serveCmd.Flags().StringVar(&servePage, "page", "", "download page HTML file (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if serveListen != "" {
		cfg.Listen = serveListen
	}

	if servePage != "" {
		cfg.Page = servePage
	}

	logger := slog.Default()
	handler := server.New(cfg.Page, cfg.Supported, newClient(cfg), logger)

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("serving download page", "addr", cfg.Listen, "page", cfg.Page, "repo", cfg.Owner+"/"+cfg.Repo)

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("serving on %s: %w", cfg.Listen, err)
	}

	return nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/vellobench/internal/refstore"
	"github.com/cwbudde/vellobench/internal/server"
)

var (
	serveAddr string
	refDir    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServer,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&refDir, "ref-dir", "", "Reference set directory (default: per-user config dir)")
	rootCmd.AddCommand(serveCmd)
}

func openStore() (*refstore.FSStore, error) {
	dir := refDir
	if dir == "" {
		var err error
		dir, err = refstore.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	return refstore.NewFSStore(dir)
}

func runServer(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open reference store: %w", err)
	}

	s := server.NewServer(serveAddr, store)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		slog.Info("Received signal, shutting down", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/papers-skill/internal/server"
	"github.com/pdiddy/papers-skill/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the voice webhook over HTTP",
	Long: `Serve listens for turns on POST /v1/turns and answers each with the
text to speak. Conversation state is kept in the configured session store
(memory, sqlite or redis) and expires after session.ttl of inactivity.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := skillConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}
	if !cfg.Server.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host, store, err := buildHost(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := server.New(host, cfg.Server, logger.Named("server"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	if purger, ok := store.(*session.SQLiteStore); ok {
		g.Go(func() error {
			purgeLoop(gctx, purger, cfg.Session.TTL)
			return nil
		})
	}
	return g.Wait()
}

// purgeLoop removes expired SQLite sessions until ctx is done.
func purgeLoop(ctx context.Context, store *session.SQLiteStore, ttl time.Duration) {
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PurgeExpired(ctx)
			if err != nil {
				logger.Warn("purging sessions failed", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Debug("purged expired sessions", zap.Int("count", n))
			}
		}
	}
}

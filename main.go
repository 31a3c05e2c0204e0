package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Drogon4231/portfolio/internal/analytics"
	"github.com/Drogon4231/portfolio/internal/config"
	"github.com/Drogon4231/portfolio/internal/export"
	"github.com/Drogon4231/portfolio/internal/logging"
	"github.com/Drogon4231/portfolio/internal/mailer"
	"github.com/Drogon4231/portfolio/internal/web"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Serve or export the portfolio site",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	})

	var outDir string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Render the site to static files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), outDir)
		},
	}
	exportCmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	root.AddCommand(exportCmd)

	return root
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	logger, err := logging.New(cfg.App.LogLevel, gin.Mode() == gin.ReleaseMode)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func runExport(ctx context.Context, outDir string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	e, err := export.New(cfg.Site, web.SiteContent(cfg.Site), logger)
	if err != nil {
		return err
	}
	_, err = e.Export(ctx, outDir)
	return err
}

func runServe(ctx context.Context) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := web.Deps{
		Mailer: &mailer.SMTPMailer{
			Host:    cfg.SMTP.Host,
			Port:    cfg.SMTP.Port,
			User:    cfg.SMTP.User,
			Pass:    cfg.SMTP.Pass,
			ToEmail: cfg.SMTP.ToEmail,
		},
	}

	if cfg.Analytics.Enabled {
		store, err := analytics.Open(ctx, cfg.Analytics.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		tracker, err := analytics.NewTracker(store, cfg.Site.BasePath, cfg.Site.DefaultTrack, logger)
		if err != nil {
			return err
		}
		defer tracker.Wait()

		retention := time.Duration(cfg.Analytics.RetentionDays) * 24 * time.Hour
		tracker.StartCleanup(ctx, retention)

		deps.Store = store
		deps.Tracker = tracker
		logger.Info("visitor tracking enabled with hashed IP addresses", zap.String("db", cfg.Analytics.DBPath))
	}

	srv, err := web.NewServer(cfg, web.SiteContent(cfg.Site), logger, deps)
	if err != nil {
		return err
	}
	engine, err := srv.Engine()
	if err != nil {
		return err
	}
	if cfg.AdminEnabled() {
		logger.Info("admin access available", zap.String("path", cfg.Site.BasePath+"admin/login"))
	}

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", httpSrv.Addr), zap.String("base_path", cfg.Site.BasePath))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

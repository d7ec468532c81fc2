package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/config"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/handlers"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/internal/metrics"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/internal/store"
)

const shutdownTimeout = 10 * time.Second

func newRootCommand(v *viper.Viper) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "species-catalog",
		Short:         "Serve the species catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "path to a config file (yaml, json or toml)")
	cmd.Flags().Int("port", 0, "port to listen on (overrides PORT)")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn or error")
	_ = v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = v.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))

	return cmd
}

func serve(cfg *config.Config) error {
	log := config.NewLogger(cfg.Log, os.Stdout)

	client, err := config.NewSupabaseClient(cfg.Supabase, log)
	if err != nil {
		return fmt.Errorf("initializing Supabase: %w", err)
	}

	m, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	speciesStore := store.NewSpeciesStore(client, cfg.Supabase.Table, log).WithObserver(m)
	h := handlers.NewApplicationHandler(speciesStore, log, m)
	app := handlers.NewApp(h, handlers.AppOptions{UserHeader: cfg.Auth.UserHeader})

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting species catalog on %s...", cfg.Addr())
		errCh <- app.Listen(cfg.Addr())
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigChan:
		log.WithField("signal", sig.String()).Info("Shutting down species catalog...")
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	log.Info("Species catalog shut down gracefully.")
	return nil
}

func main() {
	if err := newRootCommand(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fuelmate/internal/common/logger"
	"fuelmate/internal/config"
	"fuelmate/internal/dispatch"
	"fuelmate/internal/notifier"
	"fuelmate/internal/orderapi"
)

var cfgPath string

func main() {
	root := &cobra.Command{
		Use:   "fuelmate",
		Short: "Fuel-delivery ordering system",
		Long:  "fuelmate runs the fuel-delivery services: the REST backend (api), the in-memory dispatch core with its customer and station surfaces (dispatch), and the order-update consumer (notifier).",
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "path to YAML config")

	root.AddCommand(
		serviceCmd("api", "Run the auth and persisted order REST backend", orderapi.Run),
		serviceCmd("dispatch", "Run the order dispatch core and dashboard APIs", dispatch.Run),
		serviceCmd("notifier", "Consume and log order update events", notifier.Run),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type runFunc func(context.Context, *config.Config, *logger.Logger) error

func serviceCmd(name, short string, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load() // .env is optional; plain env vars still apply
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			lg := logger.New(name)
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			lg.Info("service_started", map[string]any{"service": name})
			if err := run(ctx, cfg, lg); err != nil {
				lg.Error("fatal", err, nil)
				return err
			}
			lg.Info("service_stopped", nil)
			return nil
		},
	}
}

// Package dispatch wires the in-memory order core (store, bus, lifecycle
// engine) to its two HTTP surfaces and the AMQP relay.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"fuelmate/internal/common/httpx"
	"fuelmate/internal/common/logger"
	"fuelmate/internal/common/mq"
	"fuelmate/internal/config"
	"fuelmate/internal/dispatch/bus"
	"fuelmate/internal/dispatch/handler"
	"fuelmate/internal/dispatch/lifecycle"
	"fuelmate/internal/dispatch/relay"
	"fuelmate/internal/dispatch/store"
	"fuelmate/internal/dispatch/view"
)

// Run starts the dispatch service and blocks until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, lg *logger.Logger) error {
	nb := bus.New(lg)
	st := store.New(nb, store.WithHistoryLimit(cfg.Dispatch.HistoryLimit))
	engine := lifecycle.New(st, lifecycle.RequireDriverOnConfirm(cfg.Dispatch.RequireDriverOnConfirm))

	feed := view.NewFeed()
	nb.Subscribe(func() { feed.Refresh(st.List()) })

	if cfg.Dispatch.RelayEnabled {
		if err := cfg.ValidateMQ(); err != nil {
			return err
		}
		mqc, err := mq.Dial(cfg.RabbitMQ)
		if err != nil {
			return fmt.Errorf("rabbitmq connect: %w", err)
		}
		defer mqc.Close()
		if err := mqc.DeclareTopology(); err != nil {
			return fmt.Errorf("rabbitmq topology: %w", err)
		}
		rl := relay.New(st, mqc, lg)
		nb.Subscribe(rl.Flush)
		lg.Info("relay_attached", map[string]any{"exchange": mq.UpdatesExchange})
	}

	window := time.Duration(cfg.Dispatch.DisplayWindowHours) * time.Hour
	clock := func() time.Time { return time.Now().UTC() }

	customer := &handler.CustomerHandler{Store: st, Feed: feed, Window: window, Clock: clock, Log: lg}
	station := &handler.StationHandler{Store: st, Engine: engine, Window: window, Clock: clock, Log: lg}

	mux := handler.NewRouter(customer, station)

	addr := fmt.Sprintf(":%d", cfg.HTTP.DispatchPort)
	lg.Info("listening", map[string]any{"addr": addr})
	srv := httpx.New(addr, httpx.RequestLogger(lg, mux))
	return srv.Run(ctx)
}

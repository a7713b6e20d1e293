// Package orderapi is the REST backend: authentication and persisted
// order CRUD over Postgres.
package orderapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fuelmate/internal/common/db"
	"fuelmate/internal/common/httpx"
	"fuelmate/internal/common/logger"
	"fuelmate/internal/config"
	"fuelmate/internal/orderapi/auth"
	"fuelmate/internal/orderapi/handlers"
	"fuelmate/internal/orderapi/repository"
	"fuelmate/internal/orderapi/service"
)

// Run starts the api service and blocks until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, lg *logger.Logger) error {
	if err := cfg.ValidateAPI(); err != nil {
		return err
	}

	conn, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer conn.Close()
	if err := repository.InitSchema(ctx, conn); err != nil {
		return err
	}
	lg.Info("db_connected", map[string]any{"host": cfg.Database.Host, "database": cfg.Database.Name})

	ttl := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	authSvc := service.NewAuthService(repository.NewUserRepo(conn), cfg.Auth.JWTSecret, ttl)
	ordersSvc := service.NewOrdersService(repository.NewOrderRepo(conn))

	authH := &handlers.AuthHandler{Service: authSvc, Log: lg}
	ordersH := &handlers.OrdersHandler{Service: ordersSvc, Log: lg}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", authH.Register)
	mux.HandleFunc("POST /api/auth/login", authH.Login)

	guard := func(h http.HandlerFunc) http.Handler {
		return auth.Middleware(cfg.Auth.JWTSecret, h)
	}
	mux.Handle("GET /api/auth/profile", guard(authH.Profile))
	mux.Handle("PUT /api/users/profile", guard(authH.UpdateProfile))
	mux.Handle("GET /api/orders", guard(ordersH.List))
	mux.Handle("POST /api/orders", guard(ordersH.Create))

	addr := fmt.Sprintf(":%d", cfg.HTTP.APIPort)
	lg.Info("listening", map[string]any{"addr": addr})
	srv := httpx.New(addr, httpx.RequestLogger(lg, mux))
	return srv.Run(ctx)
}

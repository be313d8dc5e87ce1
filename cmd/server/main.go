// cmd/server/main.go
package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	g "github.com/mahabubulhasibshawon/foodadmin/internal/adapters/grpc"
	"github.com/mahabubulhasibshawon/foodadmin/internal/adapters/redis"
	"github.com/mahabubulhasibshawon/foodadmin/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/foodadmin/internal/adapters/restapi"
	"github.com/mahabubulhasibshawon/foodadmin/internal/adapters/tokenfile"
	"github.com/mahabubulhasibshawon/foodadmin/internal/adapters/web"
	"github.com/mahabubulhasibshawon/foodadmin/internal/application"
	"github.com/mahabubulhasibshawon/foodadmin/internal/config"
	"github.com/mahabubulhasibshawon/foodadmin/internal/ports"
	"github.com/mahabubulhasibshawon/foodadmin/pkg/seal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config_invalid", "error", err.Error())
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rdb *redis.Client
	if cfg.Token.Store == "redis" {
		rdb = redis.NewClient(cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err := rdb.Ping(ctx); err != nil {
			logger.Error("redis_unreachable", "addr", cfg.Redis.Addr, "error", err.Error())
			os.Exit(1)
		}
		defer rdb.Close()
	}

	var db *sql.DB
	if cfg.Token.Store == "postgres" {
		db, err = repository.Open(ctx, repository.DSN(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name))
		if err != nil {
			logger.Error("postgres_unreachable", "error", err.Error())
			os.Exit(1)
		}
		defer db.Close()
		if err := repository.InitDB(ctx, db); err != nil {
			logger.Error("postgres_init_failed", "error", err.Error())
			os.Exit(1)
		}
	}

	store, err := tokenStore(cfg, rdb, db)
	if err != nil {
		logger.Error("token_store_invalid", "error", err.Error())
		os.Exit(1)
	}

	backend, err := restapi.New(cfg.Backend.URL, cfg.Backend.Timeout, logger)
	if err != nil {
		logger.Error("backend_url_invalid", "error", err.Error())
		os.Exit(1)
	}

	session := application.NewSessionService(backend, store, logger)
	session.ForceLogoutOnUnauthorized = cfg.ForceLogoutOnUnauthorized
	if err := session.Init(ctx); err != nil {
		logger.Warn("session_starts_anonymous", "error", err.Error())
	}

	notices := application.NewNotices()
	foods := application.NewFoodService(backend, session, logger)
	orders := application.NewOrderService(backend, session, notices, logger)

	csrfKey := cfg.Web.CSRFKey
	if csrfKey == nil {
		csrfKey = make([]byte, 32)
		if _, err := rand.Read(csrfKey); err != nil {
			logger.Error("csrf_key_failed", "error", err.Error())
			os.Exit(1)
		}
	}
	if cfg.Web.SessionKey == nil {
		logger.Warn("session_key_random", "hint", "set SESSION_KEY to keep browsers logged in across restarts")
	}
	handler := web.NewHandler(session, foods, orders, notices, application.NewRouteGuard(), logger, web.Options{
		CSRFKey:       csrfKey,
		SessionKey:    cfg.Web.SessionKey,
		SecureCookies: cfg.Web.SecureCookies,
	})
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           web.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var grpcServer *g.Server
	if cfg.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			logger.Error("grpc_listen_failed", "addr", cfg.GRPCAddr, "error", err.Error())
			os.Exit(1)
		}
		grpcServer = g.NewServer(session, logger)
		go func() {
			logger.Info("grpc_listening", "addr", cfg.GRPCAddr)
			if err := grpcServer.Serve(lis); err != nil {
				logger.Error("grpc_serve_failed", "error", err.Error())
			}
		}()
	}

	go func() {
		logger.Info("http_listening", "addr", cfg.HTTPAddr, "backend", cfg.Backend.URL, "token_store", cfg.Token.Store)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_serve_failed", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http_shutdown_failed", "error", err.Error())
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	orders.Wait()
	logger.Info("stopped")
}

func tokenStore(cfg *config.Config, rdb *redis.Client, db *sql.DB) (ports.TokenStorePort, error) {
	var store ports.TokenStorePort
	switch cfg.Token.Store {
	case "redis":
		store = redis.NewTokenStore(rdb, cfg.Token.Key)
	case "postgres":
		store = repository.NewTokenRepository(db, cfg.Token.Key)
	default:
		store = tokenfile.New(cfg.Token.File, cfg.Token.Key)
	}
	if cfg.Token.SealSecret == "" {
		return store, nil
	}
	box, err := seal.New(cfg.Token.SealSecret)
	if err != nil {
		return nil, err
	}
	return seal.Wrap(store, box), nil
}

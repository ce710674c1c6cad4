package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/hongminglow/all-in-forms/internal/auth"
	"github.com/hongminglow/all-in-forms/internal/config"
	"github.com/hongminglow/all-in-forms/internal/forms"
	"github.com/hongminglow/all-in-forms/internal/logger"
	"github.com/hongminglow/all-in-forms/internal/server"
	"github.com/hongminglow/all-in-forms/internal/storage/backend"
)

func main() {
	loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.RequireTokens(); err != nil {
		log.Fatalf("load config: %v", err)
	}

	l, err := logger.New(cfg.LogEnv)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = l.Sync() }()
	zap.ReplaceGlobals(l)

	ctx := context.Background()
	store, closeStore, err := backend.Open(ctx, cfg, l)
	if err != nil {
		l.Fatal("init storage", zap.String("type", cfg.StorageType), zap.Error(err))
	}
	defer closeStore()

	codec, err := auth.CodecFor(cfg.PasswordStorage)
	if err != nil {
		l.Fatal("init password codec", zap.Error(err))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := server.New(cfg, server.Deps{
		Validator: forms.New(store, forms.WithPasswordCodec(codec), forms.WithLogger(l)),
		Tokens:    auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL, cfg.JWTPersistTTL),
		Registry:  registry,
		Logger:    l,
	})

	go func() {
		l.Info("forms backend listening", zap.String("address", cfg.HTTPAddress()), zap.String("storage", cfg.StorageType))
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			l.Fatal("http server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		l.Error("graceful shutdown error", zap.Error(err))
	}
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
}

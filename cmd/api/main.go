package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"life-dashboard/internal/infrastructure/config"
	"life-dashboard/internal/infrastructure/db"
	"life-dashboard/internal/infrastructure/logger"
	httpapi "life-dashboard/internal/interface/http"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	issueToken := flag.String("issue-token", "", "print an access token for the given user id and exit")
	flag.Parse()

	cfg, err := config.LoadFromFile(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: load config failed: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)
	log.Info("configuration loaded", "http_addr", cfg.HTTP.Addr, "timezone", cfg.Dashboard.Timezone)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		log.Warn("database connection failed, falling back to in-memory store", "error", err)
		pool = nil
	} else if pool == nil {
		log.Info("no DB_DSN provided; database disabled")
	} else {
		defer pool.Close()
		log.Info("database connected successfully")
	}

	apiServer := httpapi.NewServer(cfg, pool, httpapi.WithLogger(log))
	defer apiServer.Close()

	if *issueToken != "" {
		token, exp, err := apiServer.Tokens().Issue(*issueToken)
		if err != nil {
			log.Error("issue token failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("%s\n# expires %s\n", token, exp.Format(time.RFC3339))
		return
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("starting HTTP server", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	log.Info("server stopped")
}

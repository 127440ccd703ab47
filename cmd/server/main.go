// Command server exposes the AccessAI pipeline as a JSON REST API.
//
// Endpoints:
//
//	GET  /                               service index
//	GET  /api/health
//	POST /api/process-input              body: {"text":"...", "user_type":"deaf", ...}
//	POST /api/text-to-speech
//	POST /api/translate
//	GET  /api/sample-queries
//	GET  /api/sign-language/vocabulary   ?variant=&category=&search=&limit=&offset=
//	POST /api/dyslexia/format
//	GET  /api/languages
//	GET  /api/accessibility-statement
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	accessai "github.com/accessai/accessai"
)

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", "", "listen address (overrides PORT)")
	flag.Parse()

	cfg := loadConfig(*addr)

	logger, err := newLogger(cfg.Production)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	srv := newServer(accessai.New(), cfg, logger)
	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening",
			zap.String("addr", cfg.Addr),
			zap.Bool("production", cfg.Production),
			zap.Duration("cache_ttl", cfg.CacheTTL),
			zap.Int("rate_limit_max", cfg.RateLimitMax),
			zap.Duration("rate_limit_window", cfg.RateLimitWindow))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("signal received, closing HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("HTTP server closed")
}

// newLogger builds a production JSON logger, or a development logger
// outside production mode.
func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

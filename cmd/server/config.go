package main

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// config holds the server's environment-driven settings.
type config struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string
	// AllowedOrigins are the CORS origins.
	AllowedOrigins []string
	// Production suppresses internal error details and switches the
	// logger to JSON output.
	Production bool
	// CacheTTL bounds the response-cache entry lifetime.
	CacheTTL time.Duration
	// RateLimitWindow and RateLimitMax define the per-client request
	// budget: RateLimitMax requests per RateLimitWindow.
	RateLimitWindow time.Duration
	RateLimitMax    int
}

// loadConfig reads settings from the environment. addrFlag, when
// non-empty, overrides the PORT variable.
func loadConfig(addrFlag string) config {
	cfg := config{
		Addr:            ":" + envString("PORT", "3000"),
		AllowedOrigins:  []string{"http://localhost:3000", "http://localhost:5173"},
		Production:      envString("APP_ENV", "") == "production",
		CacheTTL:        time.Duration(envInt("CACHE_TTL_SECONDS", 7200)) * time.Second,
		RateLimitWindow: time.Duration(envInt("RATE_LIMIT_WINDOW_MS", 60000)) * time.Millisecond,
		RateLimitMax:    envInt("RATE_LIMIT_MAX_REQUESTS", 100),
	}
	if addrFlag != "" {
		cfg.Addr = addrFlag
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}
	return cfg
}

func envString(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

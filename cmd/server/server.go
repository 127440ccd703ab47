package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	accessai "github.com/accessai/accessai"
)

// server wires the pipeline service to the HTTP surface.
type server struct {
	svc     *accessai.Service
	cache   *accessai.Cache
	cfg     config
	log     *zap.Logger
	limiter *ipLimiter
	started time.Time
}

func newServer(svc *accessai.Service, cfg config, log *zap.Logger) *server {
	return &server{
		svc:     svc,
		cache:   accessai.NewCache(cfg.CacheTTL),
		cfg:     cfg,
		log:     log,
		limiter: newIPLimiter(cfg.RateLimitMax, cfg.RateLimitWindow),
		started: time.Now(),
	}
}

// routes builds the full handler chain: CORS, request logging, rate
// limiting, panic recovery, then the route mux.
func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/process-input", s.handleProcessInput)
	mux.HandleFunc("/api/text-to-speech", s.handleTextToSpeech)
	mux.HandleFunc("/api/translate", s.handleTranslate)
	mux.HandleFunc("/api/sample-queries", s.handleSampleQueries)
	mux.HandleFunc("/api/sign-language/vocabulary", s.handleVocabulary)
	mux.HandleFunc("/api/dyslexia/format", s.handleDyslexiaFormat)
	mux.HandleFunc("/api/languages", s.handleLanguages)
	mux.HandleFunc("/api/accessibility-statement", s.handleAccessibilityStatement)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowCredentials: true,
	})
	return c.Handler(s.logRequests(s.rateLimit(s.recoverPanics(mux))))
}

// handleIndex serves the service index on "/" and the 404 envelope for
// every unknown path.
func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.notFound(w, r)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "AccessAI API - accessibility communication platform",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":                 "GET /api/health",
			"processInput":           "POST /api/process-input",
			"textToSpeech":           "POST /api/text-to-speech",
			"translate":              "POST /api/translate",
			"sampleQueries":          "GET /api/sample-queries",
			"vocabulary":             "GET /api/sign-language/vocabulary",
			"dyslexiaFormat":         "POST /api/dyslexia/format",
			"languages":              "GET /api/languages",
			"accessibilityStatement": "GET /api/accessibility-statement",
		},
	})
}

func (s *server) notFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusNotFound, accessai.CodeNotFound, "Route not found",
		fmt.Sprintf("The requested endpoint %s %s does not exist", r.Method, r.URL.Path))
}

// requireMethod answers 405 unless the request uses the given method.
func (s *server) requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		s.writeError(w, http.StatusMethodNotAllowed, accessai.CodeInvalidRequest,
			method+" required", fmt.Sprintf("%s does not accept %s", r.URL.Path, r.Method))
		return false
	}
	return true
}

package http

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliveryService "github.com/reshetovitsme/channel-mirror/internal/modules/delivery/service"
	feedService "github.com/reshetovitsme/channel-mirror/internal/modules/feed/service"
	identity "github.com/reshetovitsme/channel-mirror/internal/modules/identity/domain"
	message "github.com/reshetovitsme/channel-mirror/internal/modules/message/domain"
	pipelineService "github.com/reshetovitsme/channel-mirror/internal/modules/pipeline/service"
	"github.com/reshetovitsme/channel-mirror/internal/shared/config"
	sloghttp "github.com/samber/slog-http"
)

const maxEventBytes = 1 << 20

// Pipeline handles one inbound event
type Pipeline interface {
	Handle(ctx context.Context, ev *message.Event) (*pipelineService.Result, error)
}

// Server exposes health, delivery stats, RSS feeds and the event ingest endpoint
type Server struct {
	cfg         *config.Config
	feedService *feedService.Service
	stats       *deliveryService.Stats
	pipeline    Pipeline
	logger      *slog.Logger
	server      *http.Server
}

// New creates a new HTTP server; pipeline may be nil when this process runs no worker.
// POST /events is only served when an ingest token is configured.
func New(cfg *config.Config, feedService *feedService.Service, stats *deliveryService.Stats, pipeline Pipeline) *Server {
	return &Server{
		cfg:         cfg,
		feedService: feedService,
		stats:       stats,
		pipeline:    pipeline,
		logger:      slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler builds the routed handler with logging and recovery middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /rss/{target}", s.handleRSSFeed)
	mux.HandleFunc("GET /stats", s.handleStats)
	mux.HandleFunc("GET /health", s.handleHealth)
	switch {
	case s.pipeline == nil:
	case s.cfg.IngestToken == "":
		s.logger.Warn("Event ingest disabled, set ingest_token to enable POST /events")
	default:
		mux.HandleFunc("POST /events", s.handleEvent)
	}
	mux.HandleFunc("GET /{$}", s.handleRoot)

	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("HTTP server starting", "addr", addr)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleRSSFeed(w http.ResponseWriter, r *http.Request) {
	target := identity.Normalize(r.PathValue("target"))
	if target == "" {
		http.Error(w, "Target is required", http.StatusBadRequest)
		return
	}

	// Get base URL from request
	baseURL := fmt.Sprintf("%s://%s", getScheme(r), r.Host)

	feed, err := s.feedService.GenerateFeed(target, baseURL)
	if err != nil {
		s.logger.Error("Error generating feed", "target", target, "error", err)
		http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
		return
	}

	rss, err := feed.ToRss()
	if err != nil {
		s.logger.Error("Error converting feed to RSS", "error", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300") // Cache for 5 minutes
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"targets": s.stats.Snapshot()})
}

// eventRequest is the wire form of an inbound platform event
type eventRequest struct {
	Kind      message.EventKind `json:"kind"`
	Origin    identity.Origin   `json:"origin"`
	MessageID int               `json:"message_id"`
	Text      string            `json:"text"`
	Media     *message.Media    `json:"media,omitempty"`
	Links     []string          `json:"links,omitempty"`
}

func (req eventRequest) validate() error {
	if !req.Kind.IsValid() {
		return fmt.Errorf("unknown event kind %q", req.Kind)
	}
	if req.Origin.ChatID == 0 && req.Origin.Username == "" && strings.TrimSpace(req.Origin.InviteToken) == "" {
		return fmt.Errorf("origin needs chat_id, username or invite_token")
	}
	if req.MessageID <= 0 {
		return fmt.Errorf("message_id must be positive")
	}
	if req.Media != nil && (!req.Media.Kind.IsValid() || req.Media.Kind == message.ContentKindText || req.Media.FileID == "") {
		return fmt.Errorf("media needs a non-text kind and a file_id")
	}
	return nil
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	var req eventRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	ev := &message.Event{
		Kind:      req.Kind,
		Origin:    req.Origin,
		MessageID: req.MessageID,
		Text:      req.Text,
		Media:     req.Media,
		Links:     req.Links,
	}
	// sends run to completion even if the client goes away
	res, err := s.pipeline.Handle(context.WithoutCancel(r.Context()), ev)
	if err != nil {
		s.logger.Error("Error processing event", "error", err, "kind", ev.Kind, "source", ev.Key())
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to process event"})
		return
	}

	writeJSON(w, http.StatusAccepted, res)
}

// authorized checks the bearer token
func (s *Server) authorized(r *http.Request) bool {
	if s.cfg.IngestToken == "" {
		return false
	}
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return ok && subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.IngestToken)) == 1
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Channel Mirror</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .info { background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0; }
        code { background: #e8e8e8; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>Channel Mirror</h1>
    <div class="info">
        <p>Posts mirrored to a target are available as RSS: <code>/rss/{target}</code></p>
        <p>Example: <code>/rss/@mirror</code></p>
        <p>Delivery counters: <code>/stats</code></p>
    </div>
    <p><a href="/health">Health Check</a></p>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}

package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"wasteless/internal/handlers"
	applog "wasteless/internal/log"
	"wasteless/internal/recommend"
)

const (
	defaultSessionLifetime   = 12 * time.Hour
	defaultSessionCookieName = "wasteless_session"
)

// Config captures the runtime configuration for the HTTP server.
type Config struct {
	Addr               string
	Session            SessionConfig
	Database           *gorm.DB
	Engine             *recommend.Engine
	Bounds             recommend.Bounds
	AllowedOrigins     []string
	RateLimitPerMinute int
}

// SessionConfig controls session behavior for the HTTP server.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// Server wraps an http.Server wired with sessions, routing and the
// recommendation handlers.
type Server struct {
	config     Config
	httpServer *http.Server
}

// New builds a new Server using the provided configuration.
func New(cfg Config) (*Server, error) {
	ctx := context.Background()
	applog.Debug(ctx, "initializing server",
		"addr", cfg.Addr,
		"sessionLifetime", cfg.Session.Lifetime.String(),
		"sessionCookie", cfg.Session.CookieName,
	)

	sessionManager := newSessionManager(cfg.Session)

	handlers.Configure(handlers.Dependencies{
		Sessions: sessionManager,
		Database: cfg.Database,
		Engine:   cfg.Engine,
		Bounds:   cfg.Bounds,
	})
	applog.Debug(ctx, "handler dependencies configured", "hasDatabase", cfg.Database != nil, "hasEngine", cfg.Engine != nil)

	handler := sessionManager.LoadAndSave(newRouter(routerConfig{
		AllowedOrigins:     cfg.AllowedOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	}))

	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

func newSessionManager(cfg SessionConfig) *scs.SessionManager {
	if cfg.Lifetime <= 0 {
		cfg.Lifetime = defaultSessionLifetime
	}
	if strings.TrimSpace(cfg.CookieName) == "" {
		cfg.CookieName = defaultSessionCookieName
	}

	sessionManager := scs.New()
	sessionManager.Lifetime = cfg.Lifetime
	sessionManager.Cookie.Name = cfg.CookieName
	sessionManager.Cookie.Domain = cfg.CookieDomain
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.CookieSecure

	applog.Debug(context.Background(), "session manager configured",
		"cookieName", cfg.CookieName,
		"cookieDomain", cfg.CookieDomain,
		"cookieSecure", cfg.CookieSecure,
	)
	return sessionManager
}

// Start begins serving HTTP traffic using the underlying http.Server.
func (s *Server) Start() error {
	applog.Info(context.Background(), "http server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the HTTP server with a timeout.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	applog.Debug(ctx, "server initiating graceful shutdown")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the configured HTTP handler for integration tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

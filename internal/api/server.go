package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/legalmindpro/legalmind/internal/analysis"
	"github.com/legalmindpro/legalmind/internal/common"
	"github.com/legalmindpro/legalmind/internal/config"
	"github.com/legalmindpro/legalmind/internal/export"
	"github.com/legalmindpro/legalmind/internal/llm"
	"github.com/legalmindpro/legalmind/internal/session"
)

const sessionCookie = "legalmind_session"

type Server struct {
	router   chi.Router
	sessions *session.Registry
	provider llm.Provider
	analyzer *analysis.Analyzer
	sheets   *export.SheetWriter
	mailer   *export.Mailer
}

func NewServer(cfg config.Config, provider llm.Provider) *Server {
	logger := common.Logger()
	srv := &Server{
		router:   chi.NewRouter(),
		sessions: session.NewRegistry(),
		provider: provider,
		analyzer: analysis.New(provider),
		sheets:   export.NewSheetWriter(cfg),
		mailer:   export.NewMailer(cfg),
	}
	srv.routes()
	providerName := "unknown"
	if provider != nil {
		providerName = provider.Name()
	}
	logger.Info("api: server ready", "provider", providerName)
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	uiPath := filepath.Join("web", "ui")
	if _, err := os.Stat(filepath.Join(uiPath, "index.html")); err != nil {
		logger.Warn("api: ui index missing", "path", filepath.Join(uiPath, "index.html"), "error", err)
	}
	fileServer := http.FileServer(http.Dir(uiPath))
	s.router.Get("/ui", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui/", http.StatusMovedPermanently)
	})
	s.router.Get("/ui/*", func(w http.ResponseWriter, r *http.Request) {
		trimmed := strings.TrimPrefix(r.URL.Path, "/ui/")
		if trimmed == "" || trimmed == "/" {
			http.ServeFile(w, r, filepath.Join(uiPath, "index.html"))
			return
		}
		http.StripPrefix("/ui/", fileServer).ServeHTTP(w, r)
	})
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui/", http.StatusFound)
	})

	s.router.Post("/v1/documents", s.handleUpload)
	s.router.Get("/v1/documents", s.handleListDocuments)
	s.router.Get("/v1/documents/{docID}", s.handleGetDocument)
	s.router.Post("/v1/documents/{docID}/select", s.handleSelectDocument)
	s.router.Get("/v1/documents/{docID}/report", s.handleReport)
	s.router.Post("/v1/documents/{docID}/export/sheet", s.handleSheetExport)
	s.router.Post("/v1/documents/{docID}/export/email", s.handleEmailExport)
	s.router.Post("/v1/chat", s.handleChat)
	s.router.Get("/v1/history", s.handleHistory)
	s.router.Post("/v1/view", s.handleViewMode)
	s.router.Get("/v1/logs", s.handleLogs)
}

// session returns the caller's session, creating one and setting the
// cookie on first contact.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Session {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := s.sessions.Get(cookie.Value); ok {
			return sess
		}
	}
	sess := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"logs": common.LogEntries()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

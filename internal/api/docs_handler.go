package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/legalmindpro/legalmind/internal/common"
	"github.com/legalmindpro/legalmind/internal/docs"
	"github.com/legalmindpro/legalmind/internal/session"
)

// Content previews are capped to keep the document view responsive.
const previewLimit = 10000

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	summaries := make([]documentSummary, 0)
	for _, doc := range sess.Documents() {
		summaries = append(summaries, s.summarize(sess, doc))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"documents": summaries,
		"view_mode": sess.ViewMode(),
	})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	doc, ok := s.sessionDocument(sess, r)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("document not found"))
		return
	}
	preview := doc.Content
	truncated := false
	if len(preview) > previewLimit {
		preview = preview[:previewLimit] + "..."
		truncated = true
	}
	writeJSON(w, http.StatusOK, documentDetail{
		documentSummary: s.summarize(sess, doc),
		Preview:         preview,
		Truncated:       truncated,
	})
}

func (s *Server) handleSelectDocument(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	sess := s.session(w, r)
	docID := chi.URLParam(r, "docID")
	if err := sess.Select(docID); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	logger.Info("api: document selected", "doc", docID)
	writeJSON(w, http.StatusOK, statusResponse{Status: "selected"})
}

func (s *Server) handleViewMode(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	var req viewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := sess.SetViewMode(req.Mode); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: req.Mode})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	history := sess.History()
	if history == nil {
		history = []docs.ConversationTurn{}
	}
	writeJSON(w, http.StatusOK, historyResponse{History: history})
}

func (s *Server) sessionDocument(sess *session.Session, r *http.Request) (*docs.Document, bool) {
	return sess.Document(chi.URLParam(r, "docID"))
}

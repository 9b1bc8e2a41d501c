package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/legalmindpro/legalmind/internal/common"
	"github.com/legalmindpro/legalmind/internal/export"
	"github.com/legalmindpro/legalmind/internal/report"
)

func (s *Server) handleSheetExport(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	ctx := r.Context()
	sess := s.session(w, r)
	doc, ok := s.sessionDocument(sess, r)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("document not found"))
		return
	}
	logger.Info("api: sheet export requested", "doc", doc.ID)
	results := s.analyzer.ChunkReport(ctx, doc.Content)
	if err := s.sheets.Write(ctx, results); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, sheetExportResponse{Rows: len(results) + 1})
}

func (s *Server) handleEmailExport(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	sess := s.session(w, r)
	doc, ok := s.sessionDocument(sess, r)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("document not found"))
		return
	}
	var req emailExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	recipient, err := export.ValidateAddress(req.Recipient)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rendered, err := report.Render(doc, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := s.mailer.SendReport(recipient, doc, rendered); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	logger.Info("api: report emailed", "doc", doc.ID)
	writeJSON(w, http.StatusOK, statusResponse{Status: "sent"})
}

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/legalmindpro/legalmind/internal/common"
	"github.com/legalmindpro/legalmind/internal/report"
)

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	sess := s.session(w, r)
	doc, ok := s.sessionDocument(sess, r)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("document not found"))
		return
	}
	rendered, err := report.Render(doc, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: report generated", "doc", doc.ID, "bytes", len(rendered))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(doc.Name)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rendered)
}

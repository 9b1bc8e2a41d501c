package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/legalmindpro/legalmind/internal/common"
	"github.com/legalmindpro/legalmind/internal/docs"
	"github.com/legalmindpro/legalmind/internal/session"
)

const maxUploadMemory = 64 << 20 // 64 MiB of in-memory file parts

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	sess := s.session(w, r)
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		logger.Warn("api: upload form parse failed", "error", err)
		writeError(w, http.StatusBadRequest, fmt.Errorf("failed to parse upload form: %w", err))
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}
	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("no files provided"))
		return
	}
	resp := uploadResponse{}
	for _, fileHeader := range files {
		name := strings.TrimSpace(fileHeader.Filename)
		if name == "" {
			writeError(w, http.StatusBadRequest, fmt.Errorf("file name required"))
			return
		}
		added, err := s.processUpload(r, sess, fileHeader, name)
		if err != nil {
			logger.Warn("api: document processing failed", "file", name, "error", err)
			resp.Errors = append(resp.Errors, uploadError{Name: name, Error: err.Error()})
			continue
		}
		if !added {
			resp.Skipped++
		}
	}
	for _, doc := range sess.Documents() {
		resp.Documents = append(resp.Documents, s.summarize(sess, doc))
	}
	logger.Info("api: upload processed", "documents", len(resp.Documents), "skipped", resp.Skipped, "failed", len(resp.Errors))
	writeJSON(w, http.StatusOK, resp)
}

// processUpload extracts, analyzes, and stores one uploaded file. Returns
// false when the document identifier is already present, in which case the
// stored document is left untouched and no analysis runs.
func (s *Server) processUpload(r *http.Request, sess *session.Session, fileHeader *multipart.FileHeader, name string) (bool, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return false, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return false, fmt.Errorf("read upload: %w", err)
	}
	docID := docs.Fingerprint(name, data)
	if sess.Has(docID) {
		return false, nil
	}
	now := time.Now()
	extracted, err := docs.Extract(name, data, now)
	if err != nil {
		return false, err
	}
	doc := &docs.Document{
		ID:         docID,
		Name:       name,
		Content:    extracted.Content,
		Metadata:   extracted.Metadata,
		UploadedAt: now,
	}
	doc.Analysis = s.analyzer.AnalyzeDocument(r.Context(), doc.Content)
	sess.AddDocument(doc)
	return true, nil
}

func (s *Server) summarize(sess *session.Session, doc *docs.Document) documentSummary {
	selected, _ := sess.Selected()
	return documentSummary{
		ID:         doc.ID,
		Name:       doc.Name,
		Selected:   selected != nil && selected.ID == doc.ID,
		Metadata:   doc.Metadata,
		Analysis:   doc.Analysis,
		UploadedAt: doc.UploadedAt.Format(time.RFC3339),
	}
}

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/legalmindpro/legalmind/internal/common"
	"github.com/legalmindpro/legalmind/internal/docs"
)

const greetingReply = "Hello! I'm your legal AI assistant. How can I help you today?"

var greetingWords = []string{"hi", "hello", "hey"}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	ctx := r.Context()
	sess := s.session(w, r)
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: chat decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("prompt required"))
		return
	}
	sess.AppendTurn(docs.RoleUser, req.Prompt)

	selected, hasDoc := sess.Selected()
	if !hasDoc && isGreeting(req.Prompt) {
		sess.AppendTurn(docs.RoleAssistant, greetingReply)
		writeJSON(w, http.StatusOK, chatResponse{Answer: greetingReply, Provider: s.provider.Name()})
		return
	}
	excerpt := ""
	if hasDoc {
		excerpt = selected.Content
	}
	logger.Info("api: chat request received", "prompt_length", len(req.Prompt), "has_document", hasDoc)
	answer, err := s.analyzer.Answer(ctx, excerpt, req.Prompt)
	if err != nil {
		// Completion failures stay inside the conversation; the error is
		// rendered distinctly rather than standing in for an answer.
		logger.Error("api: chat completion failed", "error", err)
		message := fmt.Sprintf("Error processing request: %s", err)
		sess.AppendTurn(docs.RoleAssistant, message)
		writeJSON(w, http.StatusOK, chatResponse{Error: message, Provider: s.provider.Name()})
		return
	}
	sess.AppendTurn(docs.RoleAssistant, answer)
	writeJSON(w, http.StatusOK, chatResponse{Answer: answer, Provider: s.provider.Name()})
}

func isGreeting(prompt string) bool {
	for _, field := range strings.Fields(strings.ToLower(prompt)) {
		trimmed := strings.Trim(field, ".,!?")
		for _, word := range greetingWords {
			if trimmed == word {
				return true
			}
		}
	}
	return false
}

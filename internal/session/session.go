package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/legalmindpro/legalmind/internal/docs"
)

// View modes the UI can switch between.
const (
	ViewInsights = "insights"
	ViewDocument = "document"
)

// Session holds the per-user state for one browser session: uploaded
// documents in upload order, the selected document, the conversation
// history, and the view mode. Everything lives in process memory and is
// discarded when the session is dropped.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.RWMutex
	documents map[string]*docs.Document
	order     []string
	selected  string
	history   []docs.ConversationTurn
	viewMode  string
}

func newSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		documents: make(map[string]*docs.Document),
		viewMode:  ViewInsights,
	}
}

// AddDocument stores a document under its identifier and selects it.
// Re-submitting an identifier already present is a no-op and returns false,
// leaving the stored document untouched.
func (s *Session) AddDocument(doc *docs.Document) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.documents[doc.ID]; exists {
		return false
	}
	s.documents[doc.ID] = doc
	s.order = append(s.order, doc.ID)
	s.selected = doc.ID
	return true
}

// Has reports whether a document identifier is already stored.
func (s *Session) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.documents[id]
	return exists
}

// Document returns the stored document for an identifier.
func (s *Session) Document(id string) (*docs.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	return doc, ok
}

// Documents returns the stored documents in upload order.
func (s *Session) Documents() []*docs.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*docs.Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.documents[id])
	}
	return out
}

// Select marks a stored document as the active one.
func (s *Session) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[id]; !ok {
		return fmt.Errorf("unknown document: %s", id)
	}
	s.selected = id
	return nil
}

// Selected returns the active document, if any.
func (s *Session) Selected() (*docs.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == "" {
		return nil, false
	}
	doc, ok := s.documents[s.selected]
	return doc, ok
}

// SetViewMode switches between the insights and document views.
func (s *Session) SetViewMode(mode string) error {
	if mode != ViewInsights && mode != ViewDocument {
		return fmt.Errorf("unknown view mode: %s", mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = mode
	return nil
}

// ViewMode returns the current view mode.
func (s *Session) ViewMode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewMode
}

// AppendTurn records one conversation message. The history is append-only.
func (s *Session) AppendTurn(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, docs.ConversationTurn{Role: role, Content: content})
}

// History returns a copy of the conversation history in order.
func (s *Session) History() []docs.ConversationTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.history) == 0 {
		return nil
	}
	out := make([]docs.ConversationTurn, len(s.history))
	copy(out, s.history)
	return out
}

// Registry tracks live sessions by identifier.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Get returns the session for an identifier.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[id]
	return sess, ok
}

// Create registers and returns a fresh session.
func (r *Registry) Create() *Session {
	sess := newSession()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sess.ID] = sess
	return sess
}

// Drop discards a session and all of its state.
func (r *Registry) Drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

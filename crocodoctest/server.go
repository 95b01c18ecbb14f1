// Package crocodoctest provides an in-process Crocodoc API for tests.
package crocodoctest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const apiPrefix = "/api/v2"

// DefaultText is served by download/text for documents added without text.
const DefaultText = "The quick brown fox jumps over the lazy dog."

var userPattern = regexp.MustCompile(`^\d+,.+$`)

// Request is a recorded API call.
type Request struct {
	Method      string
	Path        string
	ContentType string
	Query       url.Values // parsed from the URL only
	PostForm    url.Values // parsed from a form-encoded body only
	Params      url.Values // Query and PostForm merged, as handlers see them
}

// Document is the fake server's view of an uploaded document.
type Document struct {
	UUID      string
	SourceURL string
	Status    string
	Viewable  bool
	Text      string
	Content   []byte
}

// Server is a fake Crocodoc API backed by httptest.
type Server struct {
	*httptest.Server

	token string

	mu        sync.Mutex
	documents map[string]*Document
	sessions  map[string]string
	requests  []Request
}

// NewServer starts a server that accepts token as the only valid credential
// under the "token" parameter.
func NewServer(token string) *Server {
	return NewServerWithParam(token, "token")
}

// NewServerWithParam is NewServer with a custom token parameter name.
func NewServerWithParam(token, paramName string) *Server {
	s := &Server{
		token:     token,
		documents: make(map[string]*Document),
		sessions:  make(map[string]string),
	}

	// Routes live on the root router: a PathPrefix subrouter answers a
	// wrong verb with 404 instead of 405.
	r := mux.NewRouter()
	r.Use(s.record, s.authenticate(paramName))
	r.HandleFunc(apiPrefix+"/document/upload", s.upload).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/document/status", s.status).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/document/delete", s.deleteDocument).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/session/create", s.createSession).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/download/document", s.download).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/download/thumbnail", s.thumbnail).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/download/text", s.text).Methods(http.MethodGet)

	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL returns the API base, e.g. http://127.0.0.1:1234/api/v2.
func (s *Server) BaseURL() string {
	return s.URL + apiPrefix
}

// AddDocument seeds a converted document and returns its uuid.
func (s *Server) AddDocument(text string) string {
	id := uuid.NewString()
	if text == "" {
		text = DefaultText
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[id] = &Document{
		UUID:     id,
		Status:   "DONE",
		Viewable: true,
		Text:     text,
		Content:  []byte("%PDF-1.4 " + id),
	}
	return id
}

// SetStatus overrides the state reported for a document.
func (s *Server) SetStatus(id, status string, viewable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc, ok := s.documents[id]; ok {
		doc.Status = status
		doc.Viewable = viewable
	}
}

// Document returns a copy of the stored document.
func (s *Server) Document(id string) (Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.documents[id]
	if !ok {
		return Document{}, false
	}
	return *doc, true
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "malformed parameters")
			return
		}
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Query:       cloneValues(r.URL.Query()),
			PostForm:    cloneValues(r.PostForm),
			Params:      cloneValues(r.Form),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(paramName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Form.Get(paramName) != s.token {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	source := r.Form.Get("url")
	if source == "" {
		writeError(w, http.StatusBadRequest, "missing url")
		return
	}

	id := s.AddDocument("")
	s.mu.Lock()
	s.documents[id].SourceURL = source
	s.mu.Unlock()

	writeJSON(w, map[string]string{"uuid": id})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	raw := r.Form.Get("uuids")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing uuids")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]map[string]any, 0)
	for _, id := range strings.Split(raw, ",") {
		doc, ok := s.documents[id]
		if !ok {
			result = append(result, map[string]any{"uuid": id, "error": "invalid uuid"})
			continue
		}
		result = append(result, map[string]any{
			"uuid":     doc.UUID,
			"status":   doc.Status,
			"viewable": doc.Viewable,
		})
	}
	writeJSON(w, result)
}

func (s *Server) deleteDocument(w http.ResponseWriter, r *http.Request) {
	id := r.Form.Get("uuid")

	s.mu.Lock()
	_, ok := s.documents[id]
	delete(s.documents, id)
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusBadRequest, "invalid uuid")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte("true"))
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	id := r.Form.Get("uuid")
	if _, ok := s.Document(id); !ok {
		writeError(w, http.StatusBadRequest, "invalid uuid")
		return
	}
	if user, set := r.Form["user"]; set && !userPattern.MatchString(user[0]) {
		writeError(w, http.StatusBadRequest, "invalid user")
		return
	}

	session := strings.ReplaceAll(uuid.NewString(), "-", "")
	s.mu.Lock()
	s.sessions[session] = id
	s.mu.Unlock()

	writeJSON(w, map[string]string{"session": session})
}

func (s *Server) download(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.Document(r.Form.Get("uuid"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid uuid")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	_, _ = w.Write(doc.Content)
}

func (s *Server) thumbnail(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.Document(r.Form.Get("uuid"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid uuid")
		return
	}
	size := r.Form.Get("size")
	if size == "" {
		size = "100x100"
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write([]byte("PNG " + size + " " + doc.UUID))
}

func (s *Server) text(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.Document(r.Form.Get("uuid"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid uuid")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(doc.Text))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}

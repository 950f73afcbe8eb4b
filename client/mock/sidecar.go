package mock

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/viant/prettier/codec"
)

// Request is a request recorded by the sidecar.
type Request struct {
	URI    string
	Header http.Header
	Body   string
}

// Properties decodes the recorded request body.
func (r *Request) Properties() (*codec.Properties, error) {
	return codec.Decode([]byte(r.Body))
}

// Sidecar serves the prettier sidecar endpoints. Nil handlers fall back to defaults:
// config-options responds with ConfigOptions (or "{}"), format echoes file_content.
type Sidecar struct {
	ConfigOptionsHandler http.HandlerFunc
	FormatHandler        http.HandlerFunc
	ConfigOptions        string

	mux      sync.Mutex
	requests []*Request
}

// ServeHTTP dispatches incoming HTTP requests based on URL path.
func (s *Sidecar) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(data))
	s.mux.Lock()
	s.requests = append(s.requests, &Request{URI: r.URL.Path, Header: r.Header.Clone(), Body: string(data)})
	s.mux.Unlock()

	switch r.URL.Path {
	case "/prettier/config-options":
		if s.ConfigOptionsHandler != nil {
			s.ConfigOptionsHandler(w, r)
		} else {
			s.defaultConfigOptionsHandler(w, r)
		}
	case "/prettier/format":
		if s.FormatHandler != nil {
			s.FormatHandler(w, r)
		} else {
			s.defaultFormatHandler(w, r)
		}
	default:
		http.NotFound(w, r)
	}
}

// Requests returns recorded requests in arrival order.
func (s *Sidecar) Requests() []*Request {
	s.mux.Lock()
	defer s.mux.Unlock()
	return append([]*Request(nil), s.requests...)
}

// LastRequest returns the most recent request or nil.
func (s *Sidecar) LastRequest() *Request {
	s.mux.Lock()
	defer s.mux.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}

func (s *Sidecar) defaultConfigOptionsHandler(w http.ResponseWriter, r *http.Request) {
	options := s.ConfigOptions
	if options == "" {
		options = "{}"
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, options)
}

func (s *Sidecar) defaultFormatHandler(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	properties, err := codec.Decode(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	content, ok := properties.Get("file_content")
	if !ok || content.Kind() != codec.KindString {
		http.Error(w, "missing file_content", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, string(content.(codec.String)))
}

// Respond returns a handler writing a fixed status and body.
func Respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

// NewServer starts an httptest server backed by sidecar; callers must Close it.
func NewServer(sidecar *Sidecar) *httptest.Server {
	return httptest.NewServer(sidecar)
}

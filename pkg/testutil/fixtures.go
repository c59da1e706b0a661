package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTempFile writes data to name inside a fresh temp directory and returns
// the full path. Nested names create their parent directories.
func WriteTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// Route is a canned response served by a StaticServer.
type Route struct {
	Status  int
	Body    []byte
	Headers map[string]string
}

// StaticServer is an httptest server answering fixed routes.
type StaticServer struct {
	*httptest.Server
	hits atomic.Int64
}

// NewStaticServer starts a plain HTTP server for routes. Unknown paths get
// 404. The server is closed when the test finishes.
func NewStaticServer(t *testing.T, routes map[string]Route) *StaticServer {
	t.Helper()
	s := &StaticServer{}
	s.Server = httptest.NewServer(s.handler(routes))
	t.Cleanup(s.Close)
	return s
}

// NewStaticTLSServer is NewStaticServer over TLS with a self-signed certificate.
func NewStaticTLSServer(t *testing.T, routes map[string]Route) *StaticServer {
	t.Helper()
	s := &StaticServer{}
	s.Server = httptest.NewTLSServer(s.handler(routes))
	t.Cleanup(s.Close)
	return s
}

// Hits returns how many requests the server has received.
func (s *StaticServer) Hits() int64 {
	return s.hits.Load()
}

// URLFor returns the absolute URL of path on the server.
func (s *StaticServer) URLFor(path string) string {
	return s.URL + path
}

func (s *StaticServer) handler(routes map[string]Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		route, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		for k, v := range route.Headers {
			w.Header().Set(k, v)
		}
		status := route.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, _ = w.Write(route.Body)
	})
}

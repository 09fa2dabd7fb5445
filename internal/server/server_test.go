package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/catalog"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/player"
	"github.com/osse101/itemforge/internal/testing/leaktest"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T, port int) *Server {
	t.Helper()
	svc, err := catalog.NewService(item.NewLoader(), "", player.NewOfflineDirectory())
	require.NoError(t, err)
	return NewServer(Options{
		Port:            port,
		APIKey:          testAPIKey,
		MaxRequestBytes: 1 << 20,
		Version:         "test",
	}, svc)
}

func TestServer_Routes(t *testing.T) {
	h := newTestServer(t, 0).Handler()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		key    string
		want   int
	}{
		{"healthz", http.MethodGet, "/healthz", "", "", http.StatusOK},
		{"readyz", http.MethodGet, "/readyz", "", "", http.StatusOK},
		{"version", http.MethodGet, "/version", "", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", "", http.StatusOK},
		{"items without key", http.MethodGet, "/api/v1/items", "", "", http.StatusUnauthorized},
		{"items", http.MethodGet, "/api/v1/items", "", testAPIKey, http.StatusOK},
		{"item", http.MethodGet, "/api/v1/items/rock", "", testAPIKey, http.StatusOK},
		{"unknown item", http.MethodGet, "/api/v1/items/boulder", "", testAPIKey, http.StatusNotFound},
		{"build", http.MethodPost, "/api/v1/items/build", `{"name":"trophy_head"}`, testAPIKey, http.StatusCreated},
		{"edit", http.MethodPost, "/api/v1/items/edit", `{"stack":{"type":"STONE"},"edit":{"amount":9}}`, testAPIKey, http.StatusOK},
		{"fields", http.MethodGet, "/api/v1/fields", "", testAPIKey, http.StatusOK},
		{"reload", http.MethodPost, "/api/v1/admin/reload", "", testAPIKey, http.StatusOK},
		{"reload without key", http.MethodPost, "/api/v1/admin/reload", "", "", http.StatusUnauthorized},
		{"wrong method", http.MethodGet, "/api/v1/items/build", "", testAPIKey, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}

func TestServer_StartStop(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	// Reserve a free port, then release it for the server
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	srv := newTestServer(t, port)
	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	assert.True(t, errors.Is(<-done, http.ErrServerClosed))
	http.DefaultClient.CloseIdleConnections()
	checker.Check(2)
}

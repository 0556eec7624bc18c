package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestClient_Hit_SendsToServer(t *testing.T) {
	var received Hit
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/hit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, newTestLogger(t))

	err := client.Hit(context.Background(), "e1", "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, appName, received.App)
	assert.Equal(t, "/events/e1", received.URI)
	assert.Equal(t, "1.2.3.4", received.IP)
	assert.NotEmpty(t, received.Timestamp)
}

func TestClient_Hit_SpoolsOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, newTestLogger(t))

	err := client.Hit(context.Background(), "e1", "1.2.3.4")

	require.Error(t, err)
	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Len(t, client.spooled, 1)
}

func TestClient_Hit_DisabledWithoutURL(t *testing.T) {
	client := NewClient("", newTestLogger(t))

	err := client.Hit(context.Background(), "e1", "1.2.3.4")

	require.NoError(t, err)
	assert.Empty(t, client.spooled)
}

func TestClient_Views_ParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stats", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("unique"))
		assert.Equal(t, "/events/e1", r.URL.Query().Get("uris"))

		stats := []viewStat{{App: appName, URI: "/events/e1", Hits: 17}}
		require.NoError(t, json.NewEncoder(w).Encode(stats))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, newTestLogger(t))

	views, err := client.Views(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, int64(17), views)
}

func TestClient_Views_EmptyStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode([]viewStat{}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, newTestLogger(t))

	views, err := client.Views(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, int64(0), views)
}

func TestClient_Views_RetriesOnFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode([]viewStat{{Hits: 5}}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, newTestLogger(t))

	views, err := client.Views(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, int64(5), views)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_FlushPending_ResendsSpooled(t *testing.T) {
	var delivered atomic.Int32
	var broken atomic.Bool
	broken.Store(true)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if broken.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		delivered.Add(1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, newTestLogger(t))

	require.Error(t, client.Hit(context.Background(), "e1", "1.2.3.4"))
	require.Error(t, client.Hit(context.Background(), "e2", "1.2.3.4"))

	// сервис восстановился
	broken.Store(false)

	sent, err := client.FlushPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, int32(2), delivered.Load())

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Empty(t, client.spooled)
}

func TestClient_FlushPending_KeepsRemainderOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, newTestLogger(t))
	client.spool(Hit{App: appName, URI: "/events/e1"})
	client.spool(Hit{App: appName, URI: "/events/e2"})

	sent, err := client.FlushPending(context.Background())

	require.Error(t, err)
	assert.Equal(t, 0, sent)

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Len(t, client.spooled, 2)
}

func TestClient_FlushPending_NothingToSend(t *testing.T) {
	client := NewClient("http://stats.local", newTestLogger(t))

	sent, err := client.FlushPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestClient_Spool_CapsSize(t *testing.T) {
	client := NewClient("http://stats.local", newTestLogger(t))

	for i := 0; i < maxSpooled+10; i++ {
		client.spool(Hit{URI: "/events/e1"})
	}

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Len(t, client.spooled, maxSpooled)
}

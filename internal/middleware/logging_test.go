package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Дымовой тест: проверяем, что мидлварь логирования не паникует и корректно проксирует ответ
func TestWithLogging_Smoke(t *testing.T) {
	SetLogger(zap.NewNop().Sugar())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot) // 418
		_, _ = w.Write([]byte("hello"))
	})

	h := WithLogging(next)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("status passthrough failed: got %d", rr.Code)
	}
	if rr.Body.String() != "hello" {
		t.Fatalf("body passthrough failed: %q", rr.Body.String())
	}
	if rr.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("request id header must be generated")
	}
}

// Тест: входящий X-Request-ID сохраняется и попадает в лог
func TestWithLogging_PropagatesRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core).Sugar())
	t.Cleanup(func() { SetLogger(zap.NewNop().Sugar()) })

	h := WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/y", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Header().Get(RequestIDHeader) != "rid-1" {
		t.Fatalf("request id must be echoed, got %q", rr.Header().Get(RequestIDHeader))
	}
	entries := logs.FilterField(zap.String("request_id", "rid-1")).All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry with request id, got %d", len(entries))
	}
	if entries[0].ContextMap()["size"] != int64(2) {
		t.Fatalf("unexpected logged size: %#v", entries[0].ContextMap()["size"])
	}
}

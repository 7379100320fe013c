package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestRequestLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	h := chiMiddleware.RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/contests/1", nil))

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("no log entry written")
	}
	if entry.Level != logrus.ErrorLevel {
		t.Errorf("level = %v, want error", entry.Level)
	}
	if entry.Data["path"] != "/contests/1" || entry.Data["status"] != http.StatusInternalServerError || entry.Data["bytes"] != 4 {
		t.Errorf("unexpected fields: %v", entry.Data)
	}
	if entry.Data["request_id"] == "" {
		t.Error("request_id missing")
	}
}

func TestRequestLoggerDefaultsStatusToOK(t *testing.T) {
	log, hook := test.NewNullLogger()
	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := hook.LastEntry().Data["status"]; got != http.StatusOK {
		t.Errorf("status = %v, want 200", got)
	}
	if hook.LastEntry().Level != logrus.InfoLevel {
		t.Errorf("level = %v, want info", hook.LastEntry().Level)
	}
}

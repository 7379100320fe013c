package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInstrumentUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Instrument)
	r.Get("/problems/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/problems/{id}", "GET", "418"))
	for _, path := range []string{"/problems/1", "/problems/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/problems/{id}", "GET", "418"))
	if after-before != 2 {
		t.Fatalf("expected 2 requests on one series, got %v", after-before)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	SubmissionsTotal.WithLabelValues("go").Inc()
	res := httptest.NewRecorder()
	Handler().ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if res.Code != http.StatusOK {
		t.Fatalf("GET /metrics returned %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), "judge_api_submission_created_total") {
		t.Fatal("submission counter missing from exposition")
	}
}

func TestLanguageLabelIsBounded(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"cpp", "cpp"},
		{" C++ ", "cpp"},
		{"Python3", "python"},
		{"lang-1", "other"},
		{"lang-2", "other"},
		{"", "other"},
	}
	for _, tt := range tests {
		if got := LanguageLabel(tt.in); got != tt.want {
			t.Errorf("LanguageLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	before := testutil.CollectAndCount(SubmissionsTotal)
	SubmissionsTotal.WithLabelValues(LanguageLabel("brainfuck-9000")).Inc()
	SubmissionsTotal.WithLabelValues(LanguageLabel("whitespace-v2")).Inc()
	SubmissionsTotal.WithLabelValues(LanguageLabel("lang-3")).Inc()
	if grown := testutil.CollectAndCount(SubmissionsTotal) - before; grown > 1 {
		t.Fatalf("unknown languages created %d series, want them to share one", grown)
	}
}

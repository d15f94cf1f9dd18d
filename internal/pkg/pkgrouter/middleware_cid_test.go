package pkgrouter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/govis/internal/pkg/pkglog"
)

type countingGenerator struct {
	value string
	calls int
}

func (g *countingGenerator) Generate() string {
	g.calls++
	return g.value
}

func TestMiddlewareCorrelationID(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
		calls   int
	}{
		{name: "correlation header", headers: map[string]string{HeaderCorrelationID: "header-cid"}, want: "header-cid"},
		{name: "request id fallback", headers: map[string]string{HeaderRequestID: "req-1"}, want: "req-1"},
		{name: "missing", want: "generated", calls: 1},
		{name: "unprintable", headers: map[string]string{HeaderCorrelationID: "bad id\x7f"}, want: "generated", calls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &countingGenerator{value: "generated"}

			var gotCID string
			wrapped := middlewareCorrelationID(gen)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotCID, _ = pkglog.CorrelationID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPost, "/charts", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			wrapped.ServeHTTP(rec, req)

			if got := rec.Header().Get(HeaderCorrelationID); got != tt.want {
				t.Fatalf("response header = %q, want %q", got, tt.want)
			}
			if gotCID != tt.want {
				t.Fatalf("context cid = %q, want %q", gotCID, tt.want)
			}
			if gen.calls != tt.calls {
				t.Fatalf("generator calls = %d, want %d", gen.calls, tt.calls)
			}
		})
	}
}

func TestNormalizeCIDTruncates(t *testing.T) {
	if got := normalizeCID(strings.Repeat("a", 200)); len(got) != maxCIDLen {
		t.Fatalf("expected %d chars, got %d", maxCIDLen, len(got))
	}
}

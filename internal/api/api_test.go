package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/grfixtures/grgen/pkg/gr"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewServer(nil).Router())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if strings.TrimSpace(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
}

func TestGraphPreset(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/api/v1/graph?preset=small")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}

	g, err := gr.Read(strings.NewReader(body))
	if err != nil {
		t.Fatalf("response is not a valid .gr file: %v\n%s", err, body)
	}
	if g.NumNodes != 4 {
		t.Errorf("NumNodes = %d, want 4", g.NumNodes)
	}
	if len(g.Edges) != 5 {
		t.Errorf("len(Edges) = %d, want 5", len(g.Edges))
	}
}

func TestGraphCustom(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/api/v1/graph?nodes=20&edges_per_node=2&max_weight=9")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}

	g, err := gr.Read(strings.NewReader(body))
	if err != nil {
		t.Fatalf("response is not a valid .gr file: %v", err)
	}
	if g.NumNodes != 20 || len(g.Edges) != 40 {
		t.Errorf("got %d nodes, %d edges; want 20, 40", g.NumNodes, len(g.Edges))
	}
	for _, e := range g.Edges {
		if e.Weight < 1 || e.Weight > 9 {
			t.Fatalf("weight %d out of range [1, 9]", e.Weight)
		}
	}
}

func TestGraphSeededDeterminism(t *testing.T) {
	ts := newTestServer(t)
	url := ts.URL + "/api/v1/graph?nodes=50&edges_per_node=3&seed=7"

	_, first := get(t, url)
	_, second := get(t, url)
	if first != second {
		t.Error("identical seeded requests should return identical bodies")
	}
}

func TestGraphBadRequests(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		name  string
		query string
	}{
		{"unknown preset", "?preset=gigantic"},
		{"missing nodes", "?edges_per_node=5"},
		{"non-numeric nodes", "?nodes=many"},
		{"nodes over limit", "?nodes=2000000"},
		{"invalid ratio", "?nodes=10&edges_per_node=-1"},
		{"nan ratio", "?nodes=10&edges_per_node=NaN"},
		{"overflowing ratio", "?nodes=1000&edges_per_node=1e16"},
		{"invalid seed", "?nodes=10&seed=abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := get(t, ts.URL+"/api/v1/graph"+tt.query)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := get(t, ts.URL+"/healthz")
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID should be set on responses")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set("X-Request-ID", "caller-id")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp2.Body.Close()
	if got := resp2.Header.Get("X-Request-ID"); got != "caller-id" {
		t.Errorf("X-Request-ID = %q, want caller-id", got)
	}
}

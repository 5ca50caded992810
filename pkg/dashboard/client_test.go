package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/soundforge-hq/soundforge-console/pkg/httpclient"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, httpclient.NewRestyClient(2*time.Second))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c, srv
}

func TestNewClientRejectsEmptyBaseURL(t *testing.T) {
	if _, err := NewClient("   ", nil); err == nil {
		t.Fatal("expected error for empty base url")
	}
}

func TestStatsDecodesResponse(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stats" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("expected json content type, got %q", got)
		}
		_, _ = w.Write([]byte(`{"total_artists":42,"active_artists":7,"tracks_generated":1300}`))
	}))

	stats, err := c.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalArtists != 42 || stats.ActiveArtists != 7 || stats.TracksGenerated != 1300 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestStatsPropagatesServerError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	if _, err := c.Stats(context.Background()); err == nil {
		t.Fatal("expected error on HTTP 500")
	}
}

func TestArtistsOmitsAbsentFilters(t *testing.T) {
	var gotQuery url.Values
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[{"id":"a1"},{"id":"a2"}]`))
	}))

	artists, err := c.Artists(context.Background(), ArtistFilters{Genre: "pop"})
	if err != nil {
		t.Fatalf("Artists: %v", err)
	}
	if len(artists) != 2 {
		t.Fatalf("expected 2 artists, got %d", len(artists))
	}
	if got := gotQuery.Get("genre"); got != "pop" {
		t.Fatalf("expected genre=pop, got %q", got)
	}
	for _, key := range []string{"status", "search"} {
		if _, present := gotQuery[key]; present {
			t.Fatalf("absent filter %q must not be sent at all", key)
		}
	}
}

func TestArtistsWithoutFiltersSendsNoQuery(t *testing.T) {
	var rawQuery string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))

	if _, err := c.Artists(context.Background(), ArtistFilters{}); err != nil {
		t.Fatalf("Artists: %v", err)
	}
	if rawQuery != "" {
		t.Fatalf("expected empty query string, got %q", rawQuery)
	}
}

func TestArtistByIDBuildsPath(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/api/artists/abc-123" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"abc-123","name":"Nova"}`))
	}))

	artist, err := c.ArtistByID(context.Background(), "abc-123")
	if err != nil {
		t.Fatalf("ArtistByID: %v", err)
	}
	if artist.ID != "abc-123" || artist.Name != "Nova" {
		t.Fatalf("unexpected artist: %+v", artist)
	}
}

func TestArtistByIDNotFoundIsTransportError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no such artist", http.StatusNotFound)
	}))

	if _, err := c.ArtistByID(context.Background(), "missing"); err == nil {
		t.Fatal("expected error on 404")
	}
}

func TestArtistLogsFilters(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[{"level":"error","msg":"render failed"},{"level":"info","msg":"ok"}]`))
	}))

	entries, err := c.ArtistLogs(context.Background(), "a1", LogFilters{Level: "error", Limit: 50})
	if err != nil {
		t.Fatalf("ArtistLogs: %v", err)
	}
	if gotPath != "/api/artists/a1/logs" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotQuery.Get("level") != "error" || gotQuery.Get("limit") != "50" {
		t.Fatalf("unexpected query %v", gotQuery)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 opaque entries, got %d", len(entries))
	}
}

func TestArtistLogsOmitsUnsetLimit(t *testing.T) {
	var gotQuery url.Values
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	}))

	if _, err := c.ArtistLogs(context.Background(), "a1", LogFilters{}); err != nil {
		t.Fatalf("ArtistLogs: %v", err)
	}
	if len(gotQuery) != 0 {
		t.Fatalf("expected no query params, got %v", gotQuery)
	}
}

func TestGenerateContentPostsExactBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/artists/id1/generate" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		var body map[string]string
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		want := map[string]string{"genre": "pop", "style": "upbeat", "length": "3:00"}
		if len(body) != len(want) {
			t.Fatalf("unexpected body %v", body)
		}
		for k, v := range want {
			if body[k] != v {
				t.Fatalf("body[%s] = %q, want %q", k, body[k], v)
			}
		}
		_, _ = w.Write([]byte(`{"id":"gen-1","status":"queued","payload":{"eta_seconds":90}}`))
	}))

	result, err := c.GenerateContent(context.Background(), "id1", GenerateParams{
		Genre:  "pop",
		Style:  "upbeat",
		Length: "3:00",
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if result.ID != "gen-1" || result.Status != "queued" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.Payload) == 0 {
		t.Fatal("expected opaque payload to be preserved")
	}
}

func TestGenerateContentRejectsOnBackendFailure(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "generation backend unavailable", http.StatusBadGateway)
	}))

	if _, err := c.GenerateContent(context.Background(), "id1", GenerateParams{Genre: "pop", Style: "upbeat", Length: "3:00"}); err == nil {
		t.Fatal("expected error on 502")
	}
}

func TestDecodeFailureSurfacesAsError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))

	if _, err := c.Stats(context.Background()); err == nil {
		t.Fatal("expected decode failure to surface as error")
	}
}

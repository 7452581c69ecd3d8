package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifegrid/pkg/sims/life"
	"lifegrid/pkg/zoo"
)

func newTestServer(t *testing.T) (*Server, *Board) {
	t.Helper()
	w := life.FromGrid(zoo.Block())
	board := &Board{}
	board.Publish(w, life.Bounded)
	return New("127.0.0.1:0", board, nil), board
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s.Handler(), "/health")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("health %d %s", rec.Code, rec.Body)
	}
}

func TestStateReflectsPublish(t *testing.T) {
	s, board := newTestServer(t)
	rec := get(t, s.Handler(), "/state")
	var snap Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Width != 2 || snap.Height != 2 || snap.Alive != 4 || snap.Edge != "bounded" {
		t.Fatalf("snapshot %+v", snap)
	}

	w := life.FromGrid(zoo.Blinker())
	w.Step(life.Toroidal)
	board.Publish(w, life.Toroidal)
	rec = get(t, s.Handler(), "/state.txt")
	if rec.Body.String() != w.State().String() {
		t.Fatalf("text state:\n%s", rec.Body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	get(t, s.Handler(), "/health")
	rec := get(t, s.Handler(), "/metrics")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "lifegrid_http_requests_total") {
		t.Fatalf("metrics %d missing request counter", rec.Code)
	}
}

package monitor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danmuck/umpwire/codec"
	"github.com/danmuck/umpwire/internal/testutil/testlog"
)

func newTestMonitor(t *testing.T, mode codec.Mode) *Monitor {
	t.Helper()
	testlog.Start(t)
	m := New("umpmon_test", ":0", mode)
	m.RegisterRoutes()
	return m
}

func TestHealthAndReady(t *testing.T) {
	m := newTestMonitor(t, codec.Strict)

	for _, path := range []string{"/health", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		m.HTTPRouter().ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d body=%s", path, rr.Code, rr.Body.String())
		}
	}
}

func TestDecodeEndpoint(t *testing.T) {
	m := newTestMonitor(t, codec.Strict)

	body := `{"words":["21903C64","41903C00","C8000000"]}`
	req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	m.HTTPRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Packets []struct {
			Type  string   `json:"type"`
			Group uint8    `json:"group"`
			Words []string `json:"words"`
		} `json:"packets"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Packets) != 2 {
		t.Fatalf("expected 2 packets, got %d", len(resp.Packets))
	}
	if resp.Packets[0].Group != 1 {
		t.Fatalf("unexpected group: %d", resp.Packets[0].Group)
	}
	if len(resp.Packets[1].Words) != 2 {
		t.Fatalf("expected 2 words in second packet, got %d", len(resp.Packets[1].Words))
	}
}

func TestDecodeEndpointTruncated(t *testing.T) {
	m := newTestMonitor(t, codec.Strict)

	body := `{"words":["41903C64"]}`
	req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	m.HTTPRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDecodeEndpointBadWord(t *testing.T) {
	m := newTestMonitor(t, codec.Strict)

	body := `{"words":["zz"]}`
	req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	m.HTTPRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

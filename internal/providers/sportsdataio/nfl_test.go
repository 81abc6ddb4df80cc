package sportsdataio

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/ratelimit"
)

// spyTransport records outbound requests; no key means none should happen.
type spyTransport struct {
	calls  int
	status int
	body   string
}

func (s *spyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.calls++
	status := s.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Request:    req,
	}, nil
}

func newNFL(spy *spyTransport, sportsDataKey, sportradarKey string) *NFLHandler {
	return NewNFLHandler(NFLConfig{
		SportsDataKey: sportsDataKey,
		SportradarKey: sportradarKey,
		HTTPClient:    &http.Client{Transport: spy},
		Limiter:       ratelimit.New(ratelimit.NewMemoryStore(), 60, zap.NewNop()),
		Logger:        zap.NewNop(),
	})
}

func errorCode(t *testing.T, body string) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		t.Fatalf("error body %q: %v", body, err)
	}
	return envelope.Error.Code
}

func TestNFLWithoutAnyKeyIs501BeforeNetwork(t *testing.T) {
	spy := &spyTransport{}
	handler := newNFL(spy, "", "")

	rec := httptest.NewRecorder()
	handler.GetStandings(rec, httptest.NewRequest(http.MethodGet, "/v1/football/standings", nil))

	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", rec.Code)
	}
	if code := errorCode(t, rec.Body.String()); code != "NOT_CONFIGURED" {
		t.Fatalf("unexpected code %s", code)
	}
	if spy.calls != 0 {
		t.Fatalf("no upstream call expected, got %d", spy.calls)
	}
}

func TestNFLWithOnlySportradarKeyIs501(t *testing.T) {
	spy := &spyTransport{}
	handler := newNFL(spy, "", "sr-key")

	rec := httptest.NewRecorder()
	handler.GetStandings(rec, httptest.NewRequest(http.MethodGet, "/v1/football/standings", nil))

	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", rec.Code)
	}
	if spy.calls != 0 {
		t.Fatalf("no upstream call expected, got %d", spy.calls)
	}
}

func TestNFLScheduleRejectsNonNumericWeek(t *testing.T) {
	spy := &spyTransport{}
	handler := newNFL(spy, "sd-key", "")

	rec := httptest.NewRecorder()
	handler.GetSchedule(rec, httptest.NewRequest(http.MethodGet, "/v1/football/schedule?season=2024&week=abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if code := errorCode(t, rec.Body.String()); code != "BAD_REQUEST" {
		t.Fatalf("unexpected code %s", code)
	}
	if spy.calls != 0 {
		t.Fatalf("no upstream call expected, got %d", spy.calls)
	}
}

func TestNFLStandingsPassesUpstreamJSONThrough(t *testing.T) {
	spy := &spyTransport{body: `[{"Team":"BUF","Wins":11}]`}
	handler := newNFL(spy, "sd-key", "")

	rec := httptest.NewRecorder()
	handler.GetStandings(rec, httptest.NewRequest(http.MethodGet, "/v1/football/standings?season=2024", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `[{"Team":"BUF","Wins":11}]` {
		t.Fatalf("body not passed through: %q", got)
	}
	if spy.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", spy.calls)
	}
}

func TestNFLUpstreamStatusPropagates(t *testing.T) {
	spy := &spyTransport{status: http.StatusForbidden, body: "denied"}
	handler := newNFL(spy, "sd-key", "")

	rec := httptest.NewRecorder()
	handler.GetStandings(rec, httptest.NewRequest(http.MethodGet, "/v1/football/standings", nil))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected upstream 403 to propagate, got %d", rec.Code)
	}
	if code := errorCode(t, rec.Body.String()); code != "UPSTREAM_ERROR" {
		t.Fatalf("unexpected code %s", code)
	}
}

func TestNFLScheduleDefaultsWeek(t *testing.T) {
	var seenURL string
	spy := &spyTransport{body: `[]`}
	handler := NewNFLHandler(NFLConfig{
		SportsDataKey: "sd-key",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			seenURL = req.URL.String()
			return spy.RoundTrip(req)
		})},
		Limiter: ratelimit.New(ratelimit.NewMemoryStore(), 60, zap.NewNop()),
		Logger:  zap.NewNop(),
	})

	rec := httptest.NewRecorder()
	handler.GetSchedule(rec, httptest.NewRequest(http.MethodGet, "/v1/football/schedule?season=2024", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(seenURL, "/ScoresByWeek/2024/1") {
		t.Fatalf("missing week should default to 1, got %s", seenURL)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, BadRequest("date is required"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var envelope struct {
		Error struct {
			Status  int    `json:"status"`
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if envelope.Error.Status != 400 || envelope.Error.Code != CodeBadRequest {
		t.Fatalf("unexpected envelope %+v", envelope.Error)
	}
	if envelope.Error.Message != "date is required" {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}

func TestUpstreamStatusFallback(t *testing.T) {
	cases := []struct {
		status int
		want   int
	}{
		{503, 503},
		{404, 404},
		{0, http.StatusBadGateway},
		{999, http.StatusBadGateway},
	}
	for _, tc := range cases {
		if got := Upstream(tc.status, "x").Status; got != tc.want {
			t.Errorf("Upstream(%d).Status = %d, want %d", tc.status, got, tc.want)
		}
	}
}

func TestErrorConstructorsMapCodes(t *testing.T) {
	cases := []struct {
		err    *APIError
		status int
		code   string
	}{
		{NotConfigured("x"), 501, CodeNotConfigured},
		{RateLimited(), 429, CodeRateLimited},
		{BadRequest("x"), 400, CodeBadRequest},
		{Internal("x"), 500, CodeInternalError},
		{NotFound("x"), 404, CodeNotFound},
	}
	for _, tc := range cases {
		if tc.err.Status != tc.status || tc.err.Code != tc.code {
			t.Errorf("%s: got status=%d code=%s", tc.code, tc.err.Status, tc.err.Code)
		}
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.9:54321"
	if got := ClientIP(r); got != "203.0.113.9" {
		t.Errorf("ClientIP = %q", got)
	}

	r.RemoteAddr = "203.0.113.9"
	if got := ClientIP(r); got != "203.0.113.9" {
		t.Errorf("ClientIP without port = %q", got)
	}

	r.RemoteAddr = ""
	if got := ClientIP(r); got != "anonymous" {
		t.Errorf("ClientIP empty = %q", got)
	}
}

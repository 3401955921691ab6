package handler

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, 201, map[string]string{"hello": "world"})

	if rec.Code != 201 {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
	if !strings.Contains(rec.Body.String(), `"hello":"world"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, 404, "not found")

	if rec.Code != 404 {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"not found"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"strategy":"lowest","games":10}`))
	var body createSimulationRequest
	if err := decodeJSON(req, &body); err != nil {
		t.Fatal(err)
	}
	if body.Strategy != "lowest" || body.Games != 10 {
		t.Errorf("unexpected decode: %+v", body)
	}
}

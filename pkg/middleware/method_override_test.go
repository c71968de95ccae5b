package middleware

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var echoMethod = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(r.Method))
})

func TestMethodOverride(t *testing.T) {
	handler := MethodOverride(1 << 20)(echoMethod)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("_method", "put")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/hotels/1", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Body.String() != http.MethodPut {
		t.Fatalf("expected form override to PUT, got %q", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/trips/1", nil)
	req.Header.Set("X-HTTP-Method-Override", "DELETE")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Body.String() != http.MethodDelete {
		t.Fatalf("expected header override to DELETE, got %q", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("X-HTTP-Method-Override", "DELETE")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Body.String() != http.MethodGet {
		t.Fatalf("only POST may be overridden, got %q", rec.Body.String())
	}
}

func TestMethodOverrideRejectsBrokenMultipartWithEnvelope(t *testing.T) {
	handler := MethodOverride(1 << 20)(echoMethod)

	req := httptest.NewRequest(http.MethodPost, "/api/hotels", strings.NewReader("--missing\r\nnot a part"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=other")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected a JSON envelope, got content type %q", ct)
	}

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Success || envelope.Message != "Invalid multipart form" {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
}

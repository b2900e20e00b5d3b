package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/scribemd/scribemd-go/internal/gemini"
	"github.com/scribemd/scribemd-go/internal/service"
)

// The 400 paths below must reject the request before any model call, so the
// handler is wired to a client pointing at an unreachable endpoint.
func newTestDigitizeHandler(t *testing.T) *DigitizeHandler {
	t.Helper()
	client := gemini.NewClient("unused-key", "gemini-2.5-flash")
	return NewDigitizeHandler(service.NewDigitizeService(client))
}

func multipartBody(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart() unexpected error: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}

	return &buf, w.FormDataContentType()
}

func TestHandleDigitizeMissingImage(t *testing.T) {
	h := newTestDigitizeHandler(t)

	body, contentType := multipartBody(t, "other", "x.png", "image/png", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/digitize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.HandleDigitize(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when image field is absent", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Image is required") {
		t.Errorf("body = %s, want missing-image message", rec.Body.String())
	}
}

func TestHandleDigitizeNonImage(t *testing.T) {
	h := newTestDigitizeHandler(t)

	body, contentType := multipartBody(t, "image", "notes.pdf", "application/pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/digitize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.HandleDigitize(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for non-image payload", rec.Code)
	}
}

func TestHandleDigitizeOversized(t *testing.T) {
	h := newTestDigitizeHandler(t)

	big := bytes.Repeat([]byte("a"), maxUploadSize+1024)
	body, contentType := multipartBody(t, "image", "big.png", "image/png", big)
	req := httptest.NewRequest(http.MethodPost, "/digitize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.HandleDigitize(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for oversized upload", rec.Code)
	}
}

func TestHandleChatMissingMessage(t *testing.T) {
	h := newTestDigitizeHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.HandleChat(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when message is absent", rec.Code)
	}
}

func TestHandlePrompts(t *testing.T) {
	h := newTestDigitizeHandler(t)

	rec := httptest.NewRecorder()
	h.HandlePrompts(rec, httptest.NewRequest(http.MethodGet, "/prompts", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "transcrever") || !strings.Contains(body, "expandir") {
		t.Errorf("body = %s, want both registered prompts", body)
	}
	if strings.Contains(body, "Regras de Transformação") {
		t.Error("prompt text must not be exposed over the API")
	}
}

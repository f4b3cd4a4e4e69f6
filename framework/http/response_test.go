package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gohttp "github.com/km-arc/go-laravel/framework/http"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newResponse(t *testing.T) (*gohttp.Response, *httptest.ResponseRecorder) {
	t.Helper()
	rr := httptest.NewRecorder()
	return gohttp.NewResponse(rr), rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&m))
	return m
}

// ── JSON ──────────────────────────────────────────────────────────────────────

func TestResponse_JSON(t *testing.T) {
	res, rr := newResponse(t)
	res.JSON(http.StatusAccepted, map[string]any{"key": "val"})

	require.Equal(t, http.StatusAccepted, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.Equal(t, "val", decodeJSON(t, rr)["key"])
}

func TestResponse_Success(t *testing.T) {
	res, rr := newResponse(t)
	res.Success([]string{"a", "b"})

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, []any{"a", "b"}, decodeJSON(t, rr)["data"])
}

func TestResponse_Errors(t *testing.T) {
	tests := []struct {
		name string
		send func(*gohttp.Response)
		code int
		msg  string
	}{
		{"error", func(r *gohttp.Response) { r.Error(http.StatusBadRequest, "bad input") }, http.StatusBadRequest, "bad input"},
		{"not found default", func(r *gohttp.Response) { r.NotFound() }, http.StatusNotFound, "Not found."},
		{"not found custom", func(r *gohttp.Response) { r.NotFound("No such provider.") }, http.StatusNotFound, "No such provider."},
		{"server error", func(r *gohttp.Response) { r.ServerError() }, http.StatusInternalServerError, "Server Error."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, rr := newResponse(t)
			tt.send(res)

			require.Equal(t, tt.code, rr.Code)
			require.Equal(t, tt.msg, decodeJSON(t, rr)["message"])
		})
	}
}

// ── Views ────────────────────────────────────────────────────────────────────

func writeView(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestViewEngine_Render(t *testing.T) {
	dir := t.TempDir()
	writeView(t, dir, "home.html", "<h1>{{.Title}}</h1>")
	ve := gohttp.NewViewEngine(dir, ".html")

	var buf bytes.Buffer
	require.NoError(t, ve.Render(&buf, "home", map[string]string{"Title": "Hi"}))
	require.Equal(t, "<h1>Hi</h1>", buf.String())
}

func TestViewEngine_RenderMissing(t *testing.T) {
	ve := gohttp.NewViewEngine(t.TempDir(), ".html")

	var buf bytes.Buffer
	require.Error(t, ve.Render(&buf, "missing", nil))
}

func TestViewEngine_ViewResponses(t *testing.T) {
	dir := t.TempDir()
	writeView(t, dir, "page.html", "{{.}}")
	ve := gohttp.NewViewEngine(dir, ".html")

	rr := httptest.NewRecorder()
	ve.View(rr, "page", "hello")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	require.Equal(t, "hello", rr.Body.String())

	rr = httptest.NewRecorder()
	ve.View(rr, "nope", nil)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestViewEngine_Path(t *testing.T) {
	ve := gohttp.NewViewEngine("views", ".tmpl")
	require.Equal(t, filepath.Join("views", "mail.tmpl"), ve.Path("mail"))
}

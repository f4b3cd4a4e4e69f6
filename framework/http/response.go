package http

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"sync"
)

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter with Laravel-style JSON helpers.
//
//	res := gohttp.NewResponse(w)
//	res.Success(data)             // 200 {"data": ...}
//	res.Error(400, "bad input")   // {"message": "bad input"}
//	res.NotFound()                // 404 {"message": "Not found."}
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// JSON sends data encoded as JSON with the given status.
func (res *Response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Success sends 200 JSON: {"data": v}
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, envelope{"data": v})
}

// Error sends {"message": message} with the given status.
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// NotFound sends 404.
func (res *Response) NotFound(message ...string) {
	res.Error(http.StatusNotFound, first(message, "Not found."))
}

// ServerError sends 500.
func (res *Response) ServerError(message ...string) {
	res.Error(http.StatusInternalServerError, first(message, "Server Error."))
}

// ── View / Templates ─────────────────────────────────────────────────────────

// ViewEngine renders html/template files from a directory. Parsed templates
// are cached by name.
//
//	// Laravel: view('home', ['title' => 'Home'])
//	engine.Render(w, "home", map[string]any{"title": "Home"})
type ViewEngine struct {
	dir string
	ext string

	mu    sync.Mutex
	cache map[string]*template.Template
}

// NewViewEngine creates a ViewEngine for dir (e.g. "./views") and file
// extension ext (e.g. ".html").
func NewViewEngine(dir, ext string) *ViewEngine {
	return &ViewEngine{dir: dir, ext: ext, cache: make(map[string]*template.Template)}
}

// Path returns the file a view name maps to.
func (ve *ViewEngine) Path(name string) string {
	return filepath.Join(ve.dir, name+ve.ext)
}

// Render executes the named view into w.
func (ve *ViewEngine) Render(w io.Writer, name string, data any) error {
	tmpl, err := ve.lookup(name)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("view: render %q: %w", name, err)
	}
	return nil
}

// View renders the named view as an HTML response, answering 500 when the
// view is missing or fails to render.
func (ve *ViewEngine) View(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ve.Render(w, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (ve *ViewEngine) lookup(name string) (*template.Template, error) {
	ve.mu.Lock()
	defer ve.mu.Unlock()
	if tmpl, ok := ve.cache[name]; ok {
		return tmpl, nil
	}
	tmpl, err := template.ParseFiles(ve.Path(name))
	if err != nil {
		return nil, fmt.Errorf("view: parse %q: %w", name, err)
	}
	ve.cache[name] = tmpl
	return tmpl, nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type envelope map[string]any

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}

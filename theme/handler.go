package theme

import (
	"encoding/json"
	"errors"
	"html"
	"net/http"
	"strings"
)

// Handler handles palette-related HTTP requests.
type Handler struct {
	manager *Manager
}

// NewHandler creates a new palette handler.
func NewHandler(manager *Manager) *Handler {
	return &Handler{
		manager: manager,
	}
}

// HandlePalette serves the full configuration as JSON.
func (h *Handler) HandlePalette(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := json.NewEncoder(w).Encode(h.manager.Config()); err != nil {
		http.Error(w, "failed to encode palette", http.StatusInternalServerError)
		return
	}
}

// HandleTokens lists palette entries in canonical order.
func (h *Handler) HandleTokens(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.manager.Tokens()); err != nil {
		http.Error(w, "failed to encode tokens", http.StatusInternalServerError)
		return
	}
}

// HandleResolve resolves the token named by the name query parameter.
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		http.Error(w, "name parameter required", http.StatusBadRequest)
		return
	}

	value, err := h.manager.Resolve(name)
	switch {
	case errors.Is(err, ErrUnknownToken):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, ErrMissingMember):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Utility{Name: name, Value: value})
}

// HandleSwatches serves an HTML preview of every utility color.
func (h *Handler) HandleSwatches(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(h.GenerateSwatchHTML()))
}

// GenerateSwatchHTML generates a page with one swatch per utility color.
func (h *Handler) GenerateSwatchHTML() string {
	var builder strings.Builder
	builder.WriteString(`<!doctype html><html><head><meta charset="utf-8"><title>palette</title></head><body style="background:#222;color:#eee;font-family:monospace">`)

	currentGroup := Group("")
	for _, tok := range h.manager.Tokens() {
		if tok.Group != currentGroup {
			if currentGroup != "" {
				builder.WriteString(`</ul>`)
			}
			currentGroup = tok.Group
			builder.WriteString(`<h2>`)
			builder.WriteString(html.EscapeString(string(currentGroup)))
			builder.WriteString(`</h2><ul>`)
		}
		writeSwatch(&builder, tok.Name, tok.Default)
		if tok.Dim != "" {
			writeSwatch(&builder, tok.Name+"-dim", tok.Dim)
		}
	}
	if currentGroup != "" {
		builder.WriteString(`</ul>`)
	}

	builder.WriteString(`</body></html>`)
	return builder.String()
}

func writeSwatch(builder *strings.Builder, name, value string) {
	builder.WriteString(`<li data-token="`)
	builder.WriteString(html.EscapeString(name))
	builder.WriteString(`"><span style="display:inline-block;width:2em;height:1em;border:1px solid #888;background:`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteString(`"></span> `)
	builder.WriteString(html.EscapeString(name))
	builder.WriteString(` <code>`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteString(`</code></li>`)
}

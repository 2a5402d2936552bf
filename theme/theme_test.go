package theme

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"graphite-theme/model"
)

func TestDefaultScenario(t *testing.T) {
	t.Parallel()

	cfg := Default()

	vector := cfg.Theme.Colors["data-vector"]
	if vector.Default != "#65bbe5" || vector.Dim != "#4b778c" {
		t.Fatalf("data-vector = %+v, want #65bbe5/#4b778c", vector)
	}
	if got := cfg.Theme.Colors["black"]; got != model.Single("#000") {
		t.Fatalf("black = %+v, want #000", got)
	}
	if diff := cmp.Diff([]string{"./src/**/*.{html,svelte,ts}"}, cfg.Content); diff != "" {
		t.Fatalf("content mismatch (-want +got):\n%s", diff)
	}
	if len(cfg.Theme.Extend) != 0 {
		t.Fatalf("extend should be empty, got %v", cfg.Theme.Extend)
	}
	if cfg.Plugins == nil || len(cfg.Plugins) != 0 {
		t.Fatalf("plugins should be an empty sequence, got %#v", cfg.Plugins)
	}
}

func TestDefaultImmutability(t *testing.T) {
	t.Parallel()

	first := Default()
	first.Theme.Colors["black"] = model.Single("#123")
	first.Content[0] = "elsewhere"

	second := Default()
	if second.Theme.Colors["black"].Default != "#000" {
		t.Fatalf("expected immutable palette, got %q", second.Theme.Colors["black"].Default)
	}
	if second.Content[0] != ContentGlob {
		t.Fatalf("expected immutable content, got %q", second.Content[0])
	}
}

func TestOrderCoverage(t *testing.T) {
	t.Parallel()

	declared := len(symbolicOrder) + len(grayscaleOrder) + len(dataOrder)
	if declared != len(defaultColors) {
		t.Fatalf("order coverage mismatch: declared=%d palette=%d", declared, len(defaultColors))
	}
	for _, list := range [][]string{symbolicOrder, grayscaleOrder, dataOrder} {
		for _, name := range list {
			if _, ok := defaultColors[name]; !ok {
				t.Fatalf("ordered name %q missing from palette", name)
			}
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	m := NewManager(Default())

	tests := []struct {
		name string
		want string
	}{
		{name: "black", want: "#000"},
		{name: "white", want: "#fff"},
		{name: "transparent", want: "transparent"},
		{name: "current", want: "currentColor"},
		{name: "data-vector", want: "#65bbe5"},
		{name: "data-vector-dim", want: "#4b778c"},
		{name: "data-vector-DEFAULT", want: "#65bbe5"},
		{name: "data-vec2-dim", want: "#71008d"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := m.Resolve(tt.name)
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	m := NewManager(Default())

	tests := []struct {
		name string
		want error
	}{
		{name: "mystery", want: ErrUnknownToken},
		{name: "mystery-dim", want: ErrUnknownToken},
		{name: "-dim", want: ErrUnknownToken},
		{name: "black-dim", want: ErrMissingMember},
		{name: "black-DEFAULT", want: ErrMissingMember},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := m.Resolve(tt.name)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Resolve(%q) error = %v, want %v", tt.name, err, tt.want)
			}
		})
	}
}

func TestResolveExactNameWins(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Theme.Colors["accent"] = model.Pair("#f00", "#800")
	cfg.Theme.Colors["accent-dim"] = model.Single("#400")

	got, err := NewManager(cfg).Resolve("accent-dim")
	if err != nil {
		t.Fatalf("Resolve unexpected error: %v", err)
	}
	if got != "#400" {
		t.Fatalf("Resolve(accent-dim) = %q, want exact token #400", got)
	}
}

func TestResolveCompoundWithoutDim(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Theme.Colors["accent"] = model.Color{Default: "#f00", Compound: true}
	m := NewManager(cfg)

	if got, err := m.Resolve("accent"); err != nil || got != "#f00" {
		t.Fatalf("Resolve(accent) = %q, %v", got, err)
	}
	if _, err := m.Resolve("accent-dim"); !errors.Is(err, ErrMissingMember) {
		t.Fatalf("expected ErrMissingMember, got %v", err)
	}
}

func TestNamesCanonicalOrder(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Theme.Colors["zebra"] = model.Single("#abc")
	cfg.Theme.Colors["apple"] = model.Single("#abc")
	cfg.Theme.Colors["data-curve"] = model.Pair("#abc", "#123")

	names := NewManager(cfg).Names()

	if names[0] != "transparent" || names[1] != "current" || names[2] != "black" {
		t.Fatalf("unexpected head of order: %v", names[:3])
	}
	tail := names[len(names)-4:]
	if diff := cmp.Diff([]string{"data-color", "data-curve", "apple", "zebra"}, tail); diff != "" {
		t.Fatalf("tail order mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup(t *testing.T) {
	t.Parallel()

	m := NewManager(Default())
	tests := map[string]Group{
		"current":     GroupSymbolic,
		"black":       GroupGrayscale,
		"middlegray":  GroupGrayscale,
		"data-mask":   GroupData,
		"data-future": GroupData,
		"brand":       GroupOther,
	}
	for name, want := range tests {
		if got := m.Group(name); got != want {
			t.Fatalf("Group(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestUtilitiesFlatten(t *testing.T) {
	t.Parallel()

	utils := NewManager(Default()).Utilities()

	seen := make(map[string]string, len(utils))
	for _, u := range utils {
		if _, dup := seen[u.Name]; dup {
			t.Fatalf("duplicate utility %q", u.Name)
		}
		seen[u.Name] = u.Value
	}
	if got := seen["data-raster-dim"]; got != "#8e7751" {
		t.Fatalf("data-raster-dim = %q", got)
	}
	if _, ok := seen["black-dim"]; ok {
		t.Fatal("single token produced a dim utility")
	}
	if want := len(defaultColors) + len(dataOrder); len(utils) != want {
		t.Fatalf("len(utilities) = %d, want %d", len(utils), want)
	}
}

func TestHandleResolve(t *testing.T) {
	t.Parallel()

	h := NewHandler(NewManager(Default()))

	tests := []struct {
		query  string
		status int
	}{
		{query: "?name=data-vector-dim", status: http.StatusOK},
		{query: "?name=nope", status: http.StatusNotFound},
		{query: "?name=black-dim", status: http.StatusUnprocessableEntity},
		{query: "", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/resolve"+tt.query, nil)
		rec := httptest.NewRecorder()
		h.HandleResolve(rec, req)
		if rec.Code != tt.status {
			t.Fatalf("GET /api/resolve%s status = %d, want %d", tt.query, rec.Code, tt.status)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/resolve?name=data-vector-dim", nil)
	rec := httptest.NewRecorder()
	h.HandleResolve(rec, req)
	var got Utility
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got != (Utility{Name: "data-vector-dim", Value: "#4b778c"}) {
		t.Fatalf("resolve response = %+v", got)
	}
}

func TestHandlePalette(t *testing.T) {
	t.Parallel()

	h := NewHandler(NewManager(Default()))
	rec := httptest.NewRecorder()
	h.HandlePalette(rec, httptest.NewRequest(http.MethodGet, "/api/palette", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
	var got model.Config
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode palette: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Fatalf("palette mismatch (-want +got):\n%s", diff)
	}
}

func TestSwatchHTML(t *testing.T) {
	t.Parallel()

	page := NewHandler(NewManager(Default())).GenerateSwatchHTML()
	for _, want := range []string{`data-token="data-vector-dim"`, `#4b778c`, `<h2>grayscale</h2>`} {
		if !strings.Contains(page, want) {
			t.Fatalf("swatch page missing %q", want)
		}
	}

	rec := httptest.NewRecorder()
	NewHandler(NewManager(Default())).HandleSwatches(rec, httptest.NewRequest(http.MethodGet, "/other", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("non-root path status = %d, want 404", rec.Code)
	}
}

package validate

import (
	"errors"
	"testing"

	"graphite-theme/model"
	"graphite-theme/theme"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	if err := Config(theme.Default()); err != nil {
		t.Fatalf("Config(theme.Default()) unexpected error: %v", err)
	}
}

func TestEveryDefaultValueIsHexOrSymbolic(t *testing.T) {
	t.Parallel()

	for name, c := range theme.Default().Theme.Colors {
		if IsSymbolic(c.Default) {
			continue
		}
		if !isHexRGB(c.Default) {
			t.Fatalf("%s default %q is not hex", name, c.Default)
		}
		if c.HasDim() {
			if !isHexRGB(c.Dim) {
				t.Fatalf("%s dim %q is not hex", name, c.Dim)
			}
			if same(c.Default, c.Dim) {
				t.Fatalf("%s dim equals default", name)
			}
		}
	}
}

func TestPaletteIssues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		palette model.Palette
		want    error
	}{
		{name: "named css color", palette: model.Palette{"red": model.Single("red")}, want: ErrInvalidColor},
		{name: "four digit hex", palette: model.Palette{"x": model.Single("#abcd")}, want: ErrInvalidColor},
		{name: "missing hash", palette: model.Palette{"x": model.Single("ffffff")}, want: ErrInvalidColor},
		{name: "bad digit", palette: model.Palette{"x": model.Single("#00g")}, want: ErrInvalidColor},
		{name: "signed digits", palette: model.Palette{"x": model.Single("#-1-1-1")}, want: ErrInvalidColor},
		{name: "bad dim", palette: model.Palette{"x": model.Pair("#fff", "dim")}, want: ErrInvalidColor},
		{name: "missing default", palette: model.Palette{"x": {Dim: "#111", Compound: true}}, want: ErrMissingDefault},
		{name: "dim equals default", palette: model.Palette{"x": model.Pair("#fff", "#FFFFFF")}, want: ErrDimNotDistinct},
		{name: "flattened collision", palette: model.Palette{"x": model.Pair("#fff", "#000"), "x-dim": model.Single("#111")}, want: ErrDuplicateName},
		{name: "empty name", palette: model.Palette{"": model.Single("#fff")}, want: ErrInvalidName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			issues := Palette(tt.palette)
			if len(issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			if err := errors.Join(issues...); !errors.Is(err, tt.want) {
				t.Fatalf("issues = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPaletteAcceptsSymbolicAndShortHex(t *testing.T) {
	t.Parallel()

	p := model.Palette{
		"transparent": model.Single(model.PaintTransparent),
		"current":     model.Single(model.PaintCurrent),
		"short":       model.Single("#AbC"),
		"long":        model.Pair("#65bbe5", "#4b778c"),
		"solo":        {Default: "#123456", Compound: true},
	}
	if issues := Palette(p); len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", errors.Join(issues...))
	}
}

func TestContentIssues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		patterns []string
		want     error
	}{
		{name: "empty list", patterns: nil, want: ErrNoContent},
		{name: "blank pattern", patterns: []string{"  "}, want: ErrInvalidGlob},
		{name: "unclosed brace", patterns: []string{"./src/**/*.{html,ts"}, want: ErrInvalidGlob},
		{name: "unclosed class", patterns: []string{"./src/[a-z/*.ts"}, want: ErrInvalidGlob},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			issues := Content(tt.patterns)
			if err := errors.Join(issues...); !errors.Is(err, tt.want) {
				t.Fatalf("issues = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCompileGlobMatchesContent(t *testing.T) {
	t.Parallel()

	g, err := CompileGlob(theme.ContentGlob)
	if err != nil {
		t.Fatalf("CompileGlob unexpected error: %v", err)
	}

	tests := map[string]bool{
		"src/App.svelte":              true,
		"src/components/panel.svelte": true,
		"src/main.ts":                 true,
		"src/utility/math/vec.ts":     true,
		"src/index.html":              true,
		"src/a/index.html":            true,
		"src/main.js":                 false,
		"public/index.html":           false,
	}
	for path, want := range tests {
		if got := g.Match(path); got != want {
			t.Fatalf("Match(%q) = %t, want %t", path, got, want)
		}
	}
}

func TestConfigAggregatesIssues(t *testing.T) {
	t.Parallel()

	cfg := theme.Default()
	cfg.Content = nil
	cfg.Plugins = []string{""}
	cfg.Theme.Colors["broken"] = model.Single("nope")

	err := Config(cfg)
	for _, want := range []error{ErrNoContent, ErrInvalidPlugin, ErrInvalidColor} {
		if !errors.Is(err, want) {
			t.Fatalf("Config error %v missing %v", err, want)
		}
	}

	var issue *Issue
	if !errors.As(err, &issue) {
		t.Fatalf("expected *Issue in %v", err)
	}
}

package theme

import "graphite-theme/model"

// ContentGlob covers markup, component, and script sources under src.
const ContentGlob = "./src/**/*.{html,svelte,ts}"

var defaultColors = model.Palette{
	"transparent": model.Single(model.PaintTransparent),
	"current":     model.Single(model.PaintCurrent),

	"black":      model.Single("#000"),
	"nearblack":  model.Single("#111"),
	"mildblack":  model.Single("#222"),
	"darkgray":   model.Single("#333"),
	"dimgray":    model.Single("#444"),
	"dullgray":   model.Single("#555"),
	"lowergray":  model.Single("#666"),
	"middlegray": model.Single("#888"),
	"uppergray":  model.Single("#aaa"),
	"palegray":   model.Single("#ccc"),
	"softgray":   model.Single("#ddd"),
	"lightgray":  model.Single("#eee"),
	"white":      model.Single("#fff"),

	"data-general": model.Pair("#cfcfcf", "#8e8e8e"),
	"data-vector":  model.Pair("#65bbe5", "#4b778c"),
	"data-raster":  model.Pair("#e4bb72", "#8e7751"),
	"data-mask":    model.Pair("#8d85c7", "#5a5480"),
	"data-number":  model.Pair("#d6536e", "#803242"),
	"data-vec2":    model.Pair("#cc00ff", "#71008d"),
	"data-color":   model.Pair("#dce472", "#898d55"),
}

var (
	symbolicOrder  = []string{"transparent", "current"}
	grayscaleOrder = []string{"black", "nearblack", "mildblack", "darkgray", "dimgray", "dullgray", "lowergray", "middlegray", "uppergray", "palegray", "softgray", "lightgray", "white"}
	dataOrder      = []string{"data-general", "data-vector", "data-raster", "data-mask", "data-number", "data-vec2", "data-color"}
)

// Default returns a fresh copy of the Graphite frontend configuration.
func Default() model.Config {
	cfg := model.Config{
		Content: []string{ContentGlob},
		Theme: model.Theme{
			Colors: defaultColors.Clone(),
			Extend: map[string]any{},
		},
		Plugins: []string{},
	}
	return cfg
}

package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Member keys recognized inside a compound color entry.
const (
	MemberDefault = "DEFAULT"
	MemberDim     = "dim"
)

// Symbolic paints resolve to inherited or transparent paint rather than a hex value.
const (
	PaintTransparent = "transparent"
	PaintCurrent     = "currentColor"
)

var (
	// ErrUnknownMember is returned when a compound color carries a key other than DEFAULT or dim.
	ErrUnknownMember = errors.New("unknown color member")
	// ErrNullColor is returned for a null entry, usually an unquoted "#" read as a YAML comment.
	ErrNullColor = errors.New("color value is null")
)

// Color is a palette entry: a single color string or a {DEFAULT, dim} mapping.
type Color struct {
	Default  string
	Dim      string
	Compound bool
}

// Single returns a plain color value.
func Single(value string) Color {
	return Color{Default: value}
}

// Pair returns a compound color with a base and a muted variant.
func Pair(base, dim string) Color {
	return Color{Default: base, Dim: dim, Compound: true}
}

// HasDim reports whether the entry carries a muted variant.
func (c Color) HasDim() bool {
	return c.Compound && c.Dim != ""
}

func (c Color) MarshalJSON() ([]byte, error) {
	if !c.Compound {
		return json.Marshal(c.Default)
	}

	members := map[string]string{MemberDefault: c.Default}
	if c.Dim != "" {
		members[MemberDim] = c.Dim
	}
	return json.Marshal(members)
}

func (c *Color) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return ErrNullColor
	}
	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*c = Single(value)
		return nil
	}

	var members map[string]string
	if err := json.Unmarshal(data, &members); err != nil {
		return fmt.Errorf("color must be a string or an object of strings: %w", err)
	}

	out := Color{Compound: true}
	for key, value := range members {
		switch key {
		case MemberDefault:
			out.Default = value
		case MemberDim:
			out.Dim = value
		default:
			return fmt.Errorf("%w: %q", ErrUnknownMember, key)
		}
	}
	*c = out
	return nil
}

// Palette is the flat color namespace keyed by token name.
type Palette map[string]Color

// Names returns the token names sorted alphabetically.
func (p Palette) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the palette.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	for name, c := range p {
		out[name] = c
	}
	return out
}

type Theme struct {
	Colors Palette        `json:"colors"`
	Extend map[string]any `json:"extend"`
}

// Config is the utility-framework configuration entry point.
type Config struct {
	Content []string `json:"content"`
	Theme   Theme    `json:"theme"`
	Plugins []string `json:"plugins"`
}

// Normalize replaces nil collections with empty ones so encoders emit {} and [] instead of null.
func (c *Config) Normalize() {
	if c.Content == nil {
		c.Content = []string{}
	}
	if c.Plugins == nil {
		c.Plugins = []string{}
	}
	if c.Theme.Colors == nil {
		c.Theme.Colors = Palette{}
	}
	if c.Theme.Extend == nil {
		c.Theme.Extend = map[string]any{}
	}
}

// Clone returns a deep copy of the configuration. Extend values are copied one level deep.
func (c Config) Clone() Config {
	out := Config{
		Content: append([]string(nil), c.Content...),
		Plugins: append([]string(nil), c.Plugins...),
		Theme: Theme{
			Colors: c.Theme.Colors.Clone(),
		},
	}
	if c.Theme.Extend != nil {
		out.Theme.Extend = make(map[string]any, len(c.Theme.Extend))
		for k, v := range c.Theme.Extend {
			out.Theme.Extend[k] = v
		}
	}
	out.Normalize()
	return out
}

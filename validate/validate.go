// Package validate checks a utility-framework configuration for structural
// and value fidelity before it is handed to the framework compiler.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/lucasb-eyer/go-colorful"

	"graphite-theme/model"
)

var (
	ErrInvalidColor   = errors.New("invalid color value")
	ErrMissingDefault = errors.New("compound color has no DEFAULT")
	ErrDimNotDistinct = errors.New("dim variant equals DEFAULT")
	ErrDuplicateName  = errors.New("duplicate utility name")
	ErrNoContent      = errors.New("content glob list is empty")
	ErrInvalidGlob    = errors.New("invalid content glob")
	ErrInvalidPlugin  = errors.New("invalid plugin entry")
	ErrInvalidName    = errors.New("invalid token name")
)

// Issue locates a single problem within the configuration.
type Issue struct {
	Path string
	Err  error
}

func (i *Issue) Error() string {
	return i.Path + ": " + i.Err.Error()
}

func (i *Issue) Unwrap() error {
	return i.Err
}

// Config reports every problem in cfg joined into one error, or nil.
func Config(cfg model.Config) error {
	var issues []error
	issues = append(issues, Palette(cfg.Theme.Colors)...)
	issues = append(issues, Content(cfg.Content)...)

	for i, p := range cfg.Plugins {
		if strings.TrimSpace(p) == "" {
			issues = append(issues, &Issue{Path: fmt.Sprintf("plugins[%d]", i), Err: ErrInvalidPlugin})
		}
	}

	return errors.Join(issues...)
}

// Palette validates every color entry and the uniqueness of flattened names.
func Palette(p model.Palette) []error {
	var issues []error
	names := p.Names()

	for _, name := range names {
		c := p[name]
		path := "theme.colors." + name

		if strings.TrimSpace(name) == "" {
			issues = append(issues, &Issue{Path: path, Err: ErrInvalidName})
			continue
		}

		if c.Compound && c.Default == "" {
			issues = append(issues, &Issue{Path: path, Err: ErrMissingDefault})
		} else if err := checkValue(c.Default); err != nil {
			issues = append(issues, &Issue{Path: memberPath(path, c, model.MemberDefault), Err: err})
		}

		if !c.Compound || c.Dim == "" {
			continue
		}
		if err := checkHex(c.Dim); err != nil {
			issues = append(issues, &Issue{Path: path + "." + model.MemberDim, Err: err})
			continue
		}
		if same(c.Default, c.Dim) {
			issues = append(issues, &Issue{Path: path + "." + model.MemberDim, Err: ErrDimNotDistinct})
		}

		flat := name + "-" + model.MemberDim
		if _, clash := p[flat]; clash {
			issues = append(issues, &Issue{Path: path, Err: fmt.Errorf("%w: %s is both a dim member and a token", ErrDuplicateName, flat)})
		}
	}

	return issues
}

// Content validates the content glob list against the glob engine the scanner uses.
func Content(patterns []string) []error {
	if len(patterns) == 0 {
		return []error{&Issue{Path: "content", Err: ErrNoContent}}
	}

	var issues []error
	for i, pattern := range patterns {
		path := fmt.Sprintf("content[%d]", i)
		if strings.TrimSpace(pattern) == "" {
			issues = append(issues, &Issue{Path: path, Err: fmt.Errorf("%w: empty pattern", ErrInvalidGlob)})
			continue
		}
		if _, err := CompileGlob(pattern); err != nil {
			issues = append(issues, &Issue{Path: path, Err: err})
		}
	}
	return issues
}

// Matcher matches slash-separated relative paths against one content pattern.
type Matcher []glob.Glob

// Match reports whether path matches any compiled form of the pattern.
func (m Matcher) Match(path string) bool {
	for _, g := range m {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// CompileGlob compiles a content pattern with '/' as the separator. A leading
// "./" is ignored, and a "**/" segment also matches zero directories.
func CompileGlob(pattern string) (Matcher, error) {
	pattern = strings.TrimPrefix(pattern, "./")
	if err := checkDelimiters(pattern); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidGlob, pattern, err)
	}
	forms := []string{pattern}
	if strings.Contains(pattern, "**/") {
		collapsed := strings.ReplaceAll(pattern, "/**/", "/")
		collapsed = strings.TrimPrefix(collapsed, "**/")
		forms = append(forms, collapsed)
	}

	m := make(Matcher, 0, len(forms))
	for _, form := range forms {
		g, err := glob.Compile(form, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidGlob, pattern, err)
		}
		m = append(m, g)
	}
	return m, nil
}

// checkDelimiters rejects unbalanced brace alternations and unterminated
// character classes, which some glob engines accept silently.
func checkDelimiters(pattern string) error {
	braces := 0
	inClass := false
	for i := 0; i < len(pattern); i++ {
		switch ch := pattern[i]; {
		case ch == '\\':
			i++
		case inClass:
			if ch == ']' {
				inClass = false
			}
		case ch == '[':
			inClass = true
		case ch == '{':
			braces++
		case ch == '}':
			if braces == 0 {
				return fmt.Errorf("unexpected '}' at %d", i)
			}
			braces--
		}
	}
	if inClass {
		return errors.New("unterminated character class")
	}
	if braces != 0 {
		return errors.New("unterminated brace alternation")
	}
	return nil
}

// IsSymbolic reports whether value is a paint keyword rather than a hex color.
func IsSymbolic(value string) bool {
	return value == model.PaintTransparent || value == model.PaintCurrent
}

func checkValue(value string) error {
	if IsSymbolic(value) {
		return nil
	}
	return checkHex(value)
}

func checkHex(value string) error {
	if !isHexRGB(value) {
		return fmt.Errorf("%w: %q is not a 3- or 6-digit hex color", ErrInvalidColor, value)
	}
	if _, err := colorful.Hex(value); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidColor, value, err)
	}
	return nil
}

func isHexRGB(value string) bool {
	if len(value) != 4 && len(value) != 7 {
		return false
	}
	if value[0] != '#' {
		return false
	}
	for _, r := range value[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// same compares two hex colors by value so "#fff" and "#FFFFFF" are equal.
func same(a, b string) bool {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return strings.EqualFold(a, b)
	}
	return ca.Hex() == cb.Hex()
}

func memberPath(path string, c model.Color, member string) string {
	if c.Compound {
		return path + "." + member
	}
	return path
}

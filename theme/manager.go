package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"graphite-theme/model"
)

var (
	// ErrUnknownToken is returned when no palette entry matches a name.
	ErrUnknownToken = errors.New("unknown color token")
	// ErrMissingMember is returned when a qualified name asks for a member the token lacks.
	ErrMissingMember = errors.New("color token has no such member")
)

// Manager answers lookups against a loaded configuration.
type Manager struct {
	cfg   model.Config
	names []string
}

// NewManager creates a manager over a copy of cfg.
func NewManager(cfg model.Config) *Manager {
	cfg = cfg.Clone()
	return &Manager{
		cfg:   cfg,
		names: sortTokens(cfg.Theme.Colors.Names()),
	}
}

// Config returns a copy of the managed configuration.
func (m *Manager) Config() model.Config {
	return m.cfg.Clone()
}

// Names returns token names in canonical order.
func (m *Manager) Names() []string {
	return append([]string(nil), m.names...)
}

// Color returns the raw palette entry for name.
func (m *Manager) Color(name string) (model.Color, bool) {
	c, ok := m.cfg.Theme.Colors[name]
	return c, ok
}

// Resolve maps a bare or member-qualified token name to a concrete value.
//
// Bare names yield the single value or the DEFAULT member. Names ending in
// "-dim" or "-DEFAULT" select that member of the base token. An exact
// token name always wins over member parsing.
func (m *Manager) Resolve(name string) (string, error) {
	if c, ok := m.cfg.Theme.Colors[name]; ok {
		return c.Default, nil
	}

	for _, member := range []string{model.MemberDim, model.MemberDefault} {
		base, ok := strings.CutSuffix(name, "-"+member)
		if !ok || base == "" {
			continue
		}
		c, exists := m.cfg.Theme.Colors[base]
		if !exists {
			break
		}
		switch member {
		case model.MemberDefault:
			if c.Compound {
				return c.Default, nil
			}
		case model.MemberDim:
			if c.HasDim() {
				return c.Dim, nil
			}
		}
		return "", fmt.Errorf("%w: %s has no %s", ErrMissingMember, base, member)
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownToken, name)
}

// Group classifies name as symbolic, grayscale, data, or other.
func (m *Manager) Group(name string) Group {
	return groupOf(name)
}

// Tokens lists every palette entry in canonical order.
func (m *Manager) Tokens() []TokenInfo {
	out := make([]TokenInfo, 0, len(m.names))
	for _, name := range m.names {
		c := m.cfg.Theme.Colors[name]
		out = append(out, TokenInfo{
			Name:    name,
			Group:   groupOf(name),
			Default: c.Default,
			Dim:     c.Dim,
		})
	}
	return out
}

// Utilities returns the flattened name table a utility compiler derives from the palette.
func (m *Manager) Utilities() []Utility {
	out := make([]Utility, 0, len(m.names))
	for _, name := range m.names {
		c := m.cfg.Theme.Colors[name]
		out = append(out, Utility{Name: name, Value: c.Default})
		if c.HasDim() {
			out = append(out, Utility{Name: name + "-" + model.MemberDim, Value: c.Dim})
		}
	}
	return out
}

func groupOf(name string) Group {
	switch {
	case indexOf(symbolicOrder, name) >= 0:
		return GroupSymbolic
	case indexOf(grayscaleOrder, name) >= 0:
		return GroupGrayscale
	case strings.HasPrefix(name, DataPrefix):
		return GroupData
	default:
		return GroupOther
	}
}

func sortTokens(names []string) []string {
	var preferredOrder []string
	preferredOrder = append(preferredOrder, symbolicOrder...)
	preferredOrder = append(preferredOrder, grayscaleOrder...)
	preferredOrder = append(preferredOrder, dataOrder...)

	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}

	sorted := make([]string, 0, len(names))
	for _, preferred := range preferredOrder {
		if present[preferred] {
			sorted = append(sorted, preferred)
		}
	}

	var data, others []string
	for _, n := range names {
		if indexOf(preferredOrder, n) >= 0 {
			continue
		}
		if strings.HasPrefix(n, DataPrefix) {
			data = append(data, n)
		} else {
			others = append(others, n)
		}
	}
	sort.Strings(data)
	sort.Strings(others)

	sorted = append(sorted, data...)
	return append(sorted, others...)
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

package theme

// Group classifies a token within the flat palette.
type Group string

const (
	GroupSymbolic  Group = "symbolic"
	GroupGrayscale Group = "grayscale"
	GroupData      Group = "data"
	GroupOther     Group = "other"
)

// DataPrefix marks tokens describing typed-data visualizations.
const DataPrefix = "data-"

// TokenInfo describes a single palette entry for listing and preview surfaces.
type TokenInfo struct {
	Name    string `json:"name"`
	Group   Group  `json:"group"`
	Default string `json:"default"`
	Dim     string `json:"dim,omitempty"`
}

// Utility is one flattened utility color name and the value it resolves to.
type Utility struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

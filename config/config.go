package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"graphite-theme/model"
)

// Format names an on-disk configuration encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatESM  Format = "esm"
	FormatCJS  Format = "cjs"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrDuplicateKey      = errors.New("duplicate key in config")
	ErrDecode            = errors.New("decode config")
)

const jsDocType = "/** @type {import('tailwindcss').Config} */\n"

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".js", ".mjs":
		return FormatESM, nil
	case ".cjs":
		return FormatCJS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseFormat maps a user-facing format name to a Format. "js" means an ES module.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "js", "esm", "mjs":
		return FormatESM, nil
	case "cjs":
		return FormatCJS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Extension returns the file extension written for f.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatESM:
		return ".js"
	case FormatCJS:
		return ".cjs"
	default:
		return ".json"
	}
}

// Marshal encodes cfg in the requested format.
func Marshal(cfg model.Config, format Format) ([]byte, error) {
	cfg.Normalize()

	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatESM, FormatCJS:
		body, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		buf.WriteString(jsDocType)
		if format == FormatESM {
			buf.WriteString("export default ")
		} else {
			buf.WriteString("module.exports = ")
		}
		buf.Write(body)
		buf.WriteString(";\n")
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Unmarshal decodes JSON or YAML data. Duplicate keys and unknown fields are rejected.
func Unmarshal(data []byte, format Format) (model.Config, error) {
	if format != FormatJSON && format != FormatYAML {
		return model.Config{}, fmt.Errorf("%w: %q cannot be loaded", ErrUnsupportedFormat, format)
	}

	// JSON is a YAML subset, so both go through the strict converter.
	jsonData, err := yaml.YAMLToJSONStrict(data)
	if err != nil {
		if _, lenient := yaml.YAMLToJSON(data); lenient == nil {
			return model.Config{}, fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		}
		return model.Config{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.DisallowUnknownFields()

	var cfg model.Config
	if err := dec.Decode(&cfg); err != nil {
		return model.Config{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Load reads a configuration file, choosing the decoder from its extension.
func Load(path string) (model.Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return model.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Unmarshal(data, format)
	if err != nil {
		return model.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path atomically, choosing the encoder from its extension.
func Save(path string, cfg model.Config) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Marshal(cfg, format)
	if err != nil {
		return err
	}

	return WriteFileAtomic(path, data)
}

// WriteFileAtomic writes data to a temporary sibling and renames it over path.
func WriteFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}

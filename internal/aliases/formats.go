package aliases

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is an alias file encoding.
type Format int

const (
	// FormatText is the native `name = value` line format.
	FormatText Format = iota
	// FormatYAML is a YAML document with an `aliases` mapping.
	FormatYAML
	// FormatTOML is a TOML document with an `[aliases]` table.
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// DetectFormat picks a format from the file extension. Files without an extension,
// like the default `aliases` file, use the text format.
func DetectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".aliases", ".txt", ".conf":
		return FormatText, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatText, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// document is the structured form shared by YAML and TOML alias files.
type document struct {
	Aliases map[string]string `yaml:"aliases" toml:"aliases"`
}

// Parse decodes data in the given format.
func Parse(format Format, name string, data []byte) ([]Entry, error) {
	switch format {
	case FormatText:
		return ParseText(name, data)
	case FormatYAML:
		var doc document
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: %v", ErrSyntax, name, err)
		}
		return fromDocument(name, doc)
	case FormatTOML:
		var doc document
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSyntax, name, err)
		}
		if md.IsDefined("aliases") && md.Type("aliases") != "Hash" {
			return nil, fmt.Errorf("%w: %s: aliases must be a table, got %s", ErrSyntax, name, md.Type("aliases"))
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: %s: unknown key %q", ErrSyntax, name, undecoded[0].String())
		}
		return fromDocument(name, doc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// fromDocument validates a decoded mapping and returns its entries sorted by name,
// since maps carry no file order.
func fromDocument(name string, doc document) ([]Entry, error) {
	entries := make([]Entry, 0, len(doc.Aliases))
	for key, value := range doc.Aliases {
		if !validName(key) {
			return nil, fmt.Errorf("%w: %s: invalid alias name %q", ErrSyntax, name, key)
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return nil, fmt.Errorf("%w: %s: empty value for %q", ErrSyntax, name, key)
		}
		entries = append(entries, Entry{Name: key, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// validName matches the keyword the compiler extracts: ASCII letters and digits.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

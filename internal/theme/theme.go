// Package theme defines the Ghostty theme document model and its two
// on-disk representations: pretty-printed JSON for the library and the
// flat key = value text Ghostty reads.
package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// PaletteSize is the number of ANSI color slots a terminal palette has.
const PaletteSize = 16

// Document is a generated theme. Top-level key order is captured at parse
// time: Go maps do not remember insertion order, and both output formats
// must emit non-palette entries in the order the document arrived.
// A Document is write-once; nothing mutates it after Parse.
type Document struct {
	keys    []string
	palette *Palette
	scalars map[string]scalar
}

// Palette holds the ANSI color slots keyed by their decimal index "0".."15".
// Key order is retained so JSON re-emission matches the source document.
type Palette struct {
	keys   []string
	colors map[string]string
}

// scalar keeps both renderings of a top-level value: the verbatim text the
// flat format wants and the original JSON form for re-emission.
type scalar struct {
	text string
	raw  json.RawMessage
}

// Parse decodes a theme JSON payload into a Document, preserving top-level
// and palette key order. The payload must be a single JSON object. The
// "palette" member must be an object of string values; every other member
// must be a scalar: strings are taken verbatim, numbers and booleans keep
// their literal text, and nulls, arrays, and nested objects are malformed.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing theme JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("theme JSON must be a single object")
	}

	doc := &Document{scalars: make(map[string]scalar)}
	seen := make(map[string]bool)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing theme JSON: %w", err)
		}
		key := keyTok.(string)

		if key == "palette" {
			pal, err := parsePalette(dec)
			if err != nil {
				return nil, err
			}
			doc.palette = pal
		} else {
			val, err := parseScalar(dec, key)
			if err != nil {
				return nil, err
			}
			doc.scalars[key] = val
		}

		if !seen[key] {
			seen[key] = true
			doc.keys = append(doc.keys, key)
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing theme JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after theme object")
	}

	return doc, nil
}

func parsePalette(dec *json.Decoder) (*Palette, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing palette: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New(`"palette" must be an object of color strings`)
	}

	pal := &Palette{colors: make(map[string]string)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing palette: %w", err)
		}
		key := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing palette: %w", err)
		}
		color, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("palette entry %q: value must be a color string", key)
		}

		if _, dup := pal.colors[key]; !dup {
			pal.keys = append(pal.keys, key)
		}
		pal.colors[key] = color
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing palette: %w", err)
	}
	return pal, nil
}

func parseScalar(dec *json.Decoder, key string) (scalar, error) {
	tok, err := dec.Token()
	if err != nil {
		return scalar{}, fmt.Errorf("parsing theme JSON: %w", err)
	}
	switch v := tok.(type) {
	case string:
		raw, err := json.Marshal(v)
		if err != nil {
			return scalar{}, err
		}
		return scalar{text: v, raw: raw}, nil
	case json.Number:
		return scalar{text: v.String(), raw: json.RawMessage(v.String())}, nil
	case bool:
		return scalar{text: strconv.FormatBool(v), raw: json.RawMessage(strconv.FormatBool(v))}, nil
	case nil:
		return scalar{}, fmt.Errorf("key %q: null is not a usable theme value", key)
	default:
		return scalar{}, fmt.Errorf("key %q: nested values are not part of the theme schema", key)
	}
}

// HasPalette reports whether the document carried a "palette" mapping.
func (d *Document) HasPalette() bool { return d.palette != nil }

// Color returns the palette color for index i. An absent or empty entry
// counts as missing.
func (d *Document) Color(i int) (string, bool) {
	if d.palette == nil {
		return "", false
	}
	c, ok := d.palette.colors[strconv.Itoa(i)]
	if !ok || c == "" {
		return "", false
	}
	return c, true
}

// Scalar returns the verbatim text of a non-palette top-level entry.
func (d *Document) Scalar(key string) (string, bool) {
	s, ok := d.scalars[key]
	return s.text, ok
}

// Keys returns every top-level key in document order, "palette" included.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// ScalarKeys returns the non-palette top-level keys in document order.
func (d *Document) ScalarKeys() []string {
	out := make([]string, 0, len(d.keys))
	for _, key := range d.keys {
		if key != "palette" {
			out = append(out, key)
		}
	}
	return out
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether s is a 6-hex-digit "#RRGGBB" color.
func IsHexColor(s string) bool {
	return colorPattern.MatchString(s)
}

// Check returns advisory problems: palette keys outside "0".."15" and color
// values that are not 6-hex-digit "#RRGGBB" strings. Problems never block
// conversion. Missing slots are reported by Conf, not here, so callers
// don't warn twice.
func (d *Document) Check() []string {
	var problems []string
	if d.palette == nil {
		problems = append(problems, `document has no "palette" mapping`)
		return problems
	}
	for _, key := range d.palette.keys {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= PaletteSize {
			problems = append(problems, fmt.Sprintf("palette key %q is not an index between 0 and 15", key))
			continue
		}
		if c := d.palette.colors[key]; c != "" && !colorPattern.MatchString(c) {
			problems = append(problems, fmt.Sprintf("palette %s: %q is not a #RRGGBB color", key, c))
		}
	}
	return problems
}

var namePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// NormalizeName lowercases and trims a raw theme keyword. It performs no
// character substitution: invalid input is rejected by ValidName so the
// caller re-prompts instead of silently rewriting the name.
func NormalizeName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidName reports whether a normalized keyword may name theme files:
// non-empty, letters, digits, hyphens, and underscores only.
func ValidName(name string) error {
	if name == "" {
		return errors.New("theme name must not be empty")
	}
	if !namePattern.MatchString(name) {
		return errors.New("use a single word: letters, numbers, hyphens, or underscores")
	}
	return nil
}

package theme

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// Conf renders the document in Ghostty's flat theme format. Palette lines
// come first, walking indices 0 through 15 in ascending order regardless of
// how the palette mapping was keyed, as "palette = <i>=<color>". The
// remaining top-level entries follow in document order as "<key> = <value>"
// with values inserted verbatim. Lines are joined with newlines and the
// result ends with exactly one trailing newline.
//
// The returned slice lists the palette indices that were absent or empty
// and therefore skipped; each one deserves a caller-side warning. Skipping
// is never an error.
func (d *Document) Conf() (string, []int) {
	var lines []string
	var missing []int

	for i := 0; i < PaletteSize; i++ {
		color, ok := d.Color(i)
		if !ok {
			missing = append(missing, i)
			continue
		}
		lines = append(lines, fmt.Sprintf("palette = %d=%s", i, color))
	}

	for _, key := range d.ScalarKeys() {
		lines = append(lines, fmt.Sprintf("%s = %s", key, d.scalars[key].text))
	}

	return strings.Join(lines, "\n") + "\n", missing
}

// ParseConf parses flat theme text back into a Document. Palette lines fold
// into the palette mapping; every other key becomes a scalar in file order.
// Blank lines and lines starting with "#" are skipped.
func ParseConf(data []byte) (*Document, error) {
	doc := &Document{scalars: make(map[string]scalar)}
	seen := make(map[string]bool)

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, err := splitEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if key == "palette" {
			idx, color, err := splitEntry(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: palette entry: %w", lineNo, err)
			}
			if doc.palette == nil {
				doc.palette = &Palette{colors: make(map[string]string)}
			}
			if _, dup := doc.palette.colors[idx]; !dup {
				doc.palette.keys = append(doc.palette.keys, idx)
			}
			doc.palette.colors[idx] = color
			if !seen[key] {
				seen[key] = true
				doc.keys = append(doc.keys, key)
			}
			continue
		}

		raw, err := jsonString(value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		doc.scalars[key] = scalar{text: value, raw: raw}
		if !seen[key] {
			seen[key] = true
			doc.keys = append(doc.keys, key)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading theme text: %w", err)
	}

	return doc, nil
}

// splitEntry splits "key = value" (or "0=#112233") on the first "=" and
// trims both halves. The key must not be empty; an empty value is allowed.
func splitEntry(s string) (string, string, error) {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%q is not a key = value entry", s)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmt.Errorf("%q has an empty key", s)
	}
	return key, value, nil
}

package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSON renders the document as pretty-printed JSON with two-space indent
// and one trailing newline. Top-level and palette keys keep the order the
// document arrived with; scalars parsed from JSON keep their original form.
func (d *Document) JSON() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')

	for i, key := range d.keys {
		if i > 0 {
			compact.WriteByte(',')
		}
		raw, err := jsonString(key)
		if err != nil {
			return nil, err
		}
		compact.Write(raw)
		compact.WriteByte(':')

		if key == "palette" {
			if err := d.palette.writeJSON(&compact); err != nil {
				return nil, err
			}
			continue
		}
		compact.Write(d.scalars[key].raw)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("rendering theme JSON: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func (p *Palette) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := jsonString(key)
		if err != nil {
			return err
		}
		v, err := jsonString(p.colors[key])
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return nil
}

func jsonString(s string) (json.RawMessage, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding %q: %w", s, err)
	}
	return json.RawMessage(raw), nil
}

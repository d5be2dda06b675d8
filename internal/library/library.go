// Package library manages the on-disk collection of generated themes:
// pretty-printed JSON documents plus a manifest carrying the metadata the
// documents themselves don't hold (keyword, model, creation time).
package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vibejam/glaze/internal/theme"
)

const manifestName = "manifest.json"

// Entry describes one theme in the library.
type Entry struct {
	Name    string    `json:"name"`
	Keyword string    `json:"keyword,omitempty"`
	Model   string    `json:"model,omitempty"`
	Created time.Time `json:"created"`
}

// Manifest is the library index file.
type Manifest struct {
	SchemaVersion string    `json:"schema_version"`
	UpdatedAt     time.Time `json:"updated_at"`
	Entries       []Entry   `json:"entries"`
}

// Library is a directory of theme documents.
type Library struct {
	Dir string
}

// New returns a Library rooted at dir.
func New(dir string) *Library {
	return &Library{Dir: dir}
}

// ThemePath returns the JSON path for a theme name.
func (l *Library) ThemePath(name string) string {
	return filepath.Join(l.Dir, name+".json")
}

// Save writes doc into the library and records it in the manifest. An
// existing theme of the same name is replaced.
func (l *Library) Save(name, keyword, model string, doc *theme.Document) (string, error) {
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating library directory: %w", err)
	}

	data, err := doc.JSON()
	if err != nil {
		return "", err
	}

	path := l.ThemePath(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing theme: %w", err)
	}

	manifest, err := l.loadManifest()
	if err != nil {
		return "", err
	}
	entries := manifest.Entries[:0]
	for _, entry := range manifest.Entries {
		if entry.Name != name {
			entries = append(entries, entry)
		}
	}
	manifest.Entries = append(entries, Entry{
		Name:    name,
		Keyword: keyword,
		Model:   model,
		Created: time.Now(),
	})
	if err := l.saveManifest(manifest); err != nil {
		return "", err
	}

	return path, nil
}

// Load reads a theme document by name.
func (l *Library) Load(name string) (*theme.Document, error) {
	data, err := os.ReadFile(l.ThemePath(name))
	if err != nil {
		return nil, fmt.Errorf("reading theme %s: %w", name, err)
	}
	doc, err := theme.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}
	return doc, nil
}

// List returns the themes in the library sorted by name. Metadata comes
// from the manifest when present; documents dropped into the directory by
// hand still show up, with the file's modification time as Created.
func (l *Library) List() ([]Entry, error) {
	files, err := filepath.Glob(filepath.Join(l.Dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing library: %w", err)
	}

	manifest, err := l.loadManifest()
	if err != nil {
		return nil, err
	}
	known := make(map[string]Entry, len(manifest.Entries))
	for _, entry := range manifest.Entries {
		known[entry.Name] = entry
	}

	var entries []Entry
	for _, file := range files {
		base := filepath.Base(file)
		if base == manifestName {
			continue
		}
		name := strings.TrimSuffix(base, ".json")
		if entry, ok := known[name]; ok {
			entries = append(entries, entry)
			continue
		}
		entry := Entry{Name: name}
		if info, err := os.Stat(file); err == nil {
			entry.Created = info.ModTime()
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (l *Library) manifestPath() string {
	return filepath.Join(l.Dir, manifestName)
}

func (l *Library) loadManifest() (*Manifest, error) {
	data, err := os.ReadFile(l.manifestPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{SchemaVersion: "1.0.0"}, nil
		}
		return nil, fmt.Errorf("reading library manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing library manifest: %w", err)
	}
	if m.SchemaVersion == "" {
		m.SchemaVersion = "1.0.0"
	}
	return &m, nil
}

func (l *Library) saveManifest(m *Manifest) error {
	m.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling library manifest: %w", err)
	}
	if err := os.WriteFile(l.manifestPath(), data, 0o644); err != nil {
		return fmt.Errorf("writing library manifest: %w", err)
	}
	return nil
}

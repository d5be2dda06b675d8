package theme

import (
	"strings"
	"testing"
)

const sampleJSON = `{
  "background": "#1e1e2e",
  "foreground": "#cdd6f4",
  "palette": {
    "0": "#45475a",
    "1": "#f38ba8",
    "2": "#a6e3a1",
    "3": "#f9e2af",
    "4": "#89b4fa",
    "5": "#f5c2e7",
    "6": "#94e2d5",
    "7": "#bac2de",
    "8": "#585b70",
    "9": "#f38ba8",
    "10": "#a6e3a1",
    "11": "#f9e2af",
    "12": "#89b4fa",
    "13": "#f5c2e7",
    "14": "#94e2d5",
    "15": "#a6adc8",
    "veil": "#ff00ff"
  },
  "cursor-color": "#f5e0dc",
  "selection-background": "#585b70",
  "selection-foreground": "#cdd6f4"
}`

func TestParseKeepsDocumentOrder(t *testing.T) {
	doc, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantKeys := []string{"background", "foreground", "palette", "cursor-color", "selection-background", "selection-foreground"}
	gotKeys := doc.Keys()
	if len(gotKeys) != len(wantKeys) {
		t.Fatalf("Keys() = %v, want %v", gotKeys, wantKeys)
	}
	for i, key := range wantKeys {
		if gotKeys[i] != key {
			t.Errorf("Keys()[%d] = %q, want %q", i, gotKeys[i], key)
		}
	}

	wantScalars := []string{"background", "foreground", "cursor-color", "selection-background", "selection-foreground"}
	gotScalars := doc.ScalarKeys()
	if len(gotScalars) != len(wantScalars) {
		t.Fatalf("ScalarKeys() = %v, want %v", gotScalars, wantScalars)
	}
	for i, key := range wantScalars {
		if gotScalars[i] != key {
			t.Errorf("ScalarKeys()[%d] = %q, want %q", i, gotScalars[i], key)
		}
	}

	if got, ok := doc.Scalar("background"); !ok || got != "#1e1e2e" {
		t.Errorf("Scalar(background) = %q, %v", got, ok)
	}
	if got, ok := doc.Color(15); !ok || got != "#a6adc8" {
		t.Errorf("Color(15) = %q, %v", got, ok)
	}
}

func TestParseScalarForms(t *testing.T) {
	doc, err := Parse([]byte(`{"palette": {}, "window-padding": 8, "bold-is-bright": true}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, _ := doc.Scalar("window-padding"); got != "8" {
		t.Errorf("Scalar(window-padding) = %q, want %q", got, "8")
	}
	if got, _ := doc.Scalar("bold-is-bright"); got != "true" {
		t.Errorf("Scalar(bold-is-bright) = %q, want %q", got, "true")
	}
}

func TestParseRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated", `{"background": "#000`},
		{"array root", `["#000000"]`},
		{"string root", `"#000000"`},
		{"null value", `{"background": null}`},
		{"array value", `{"background": ["#000000"]}`},
		{"object value", `{"cursor": {"color": "#000000"}}`},
		{"palette number value", `{"palette": {"0": 7}}`},
		{"palette array", `{"palette": ["#000000"]}`},
		{"trailing data", `{"background": "#000000"} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "clean",
			input: `{"palette": {"0": "#45475a"}, "background": "#1e1e2e"}`,
			want:  nil,
		},
		{
			name:  "no palette",
			input: `{"background": "#1e1e2e"}`,
			want:  []string{`document has no "palette" mapping`},
		},
		{
			name:  "bad color",
			input: `{"palette": {"0": "45475a"}}`,
			want:  []string{`palette 0: "45475a" is not a #RRGGBB color`},
		},
		{
			name:  "out of range key",
			input: `{"palette": {"16": "#45475a"}}`,
			want:  []string{`palette key "16" is not an index between 0 and 15`},
		},
		{
			name:  "non-numeric key",
			input: `{"palette": {"veil": "#45475a"}}`,
			want:  []string{`palette key "veil" is not an index between 0 and 15`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			got := doc.Check()
			if len(got) != len(tt.want) {
				t.Fatalf("Check() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Check()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cyberpunk", "cyberpunk"},
		{"  deep-ocean  ", "deep-ocean"},
		{"RETRO_WAVE", "retro_wave"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"cyberpunk", "deep-ocean", "retro_wave", "nord2"}
	for _, name := range valid {
		if err := ValidName(name); err != nil {
			t.Errorf("ValidName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "deep ocean", "Nord", "café", "a/b", "a.b"}
	for _, name := range invalid {
		if err := ValidName(name); err == nil {
			t.Errorf("ValidName(%q) = nil, want error", name)
		}
	}
}

func TestValidNameMessageMentionsAllowedCharacters(t *testing.T) {
	err := ValidName("deep ocean")
	if err == nil {
		t.Fatal("ValidName(\"deep ocean\") = nil, want error")
	}
	if !strings.Contains(err.Error(), "letters") {
		t.Errorf("ValidName error = %q, want a hint about allowed characters", err)
	}
}

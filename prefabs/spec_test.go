package prefabs

import (
	"testing"

	"github.com/milk9111/pressfx/common"
	"gopkg.in/yaml.v3"
)

func TestLoadThemeSpec(t *testing.T) {
	theme, err := LoadThemeSpec()
	if err != nil {
		t.Fatalf("LoadThemeSpec() error: %v", err)
	}

	fb := theme.Feedback
	if fb.ScaleAmount <= 0 || fb.ScaleAmount >= 1 {
		t.Fatalf("expected shrink factor in (0,1), got %v", fb.ScaleAmount)
	}
	if fb.Duration <= 0 || fb.PunchDuration <= 0 {
		t.Fatalf("expected positive durations, got %v / %v", fb.Duration, fb.PunchDuration)
	}
	if theme.Button == nil || theme.Label == nil || theme.Background == nil {
		t.Fatalf("expected all theme colors set")
	}
	if theme.Button.A != 1 {
		t.Fatalf("expected opaque button color, got alpha %v", theme.Button.A)
	}
}

func TestLoadMenuSpec(t *testing.T) {
	menu, err := LoadMenuSpec()
	if err != nil {
		t.Fatalf("LoadMenuSpec() error: %v", err)
	}

	if len(menu.Buttons) == 0 {
		t.Fatalf("expected at least one button")
	}

	names := map[string]ButtonSpec{}
	for _, b := range menu.Buttons {
		if b.Name == "" {
			t.Fatalf("button with empty name: %+v", b)
		}
		if _, dup := names[b.Name]; dup {
			t.Fatalf("duplicate button name %q", b.Name)
		}
		names[b.Name] = b
		if b.Width <= 0 || b.Height <= 0 {
			t.Fatalf("button %q has degenerate size %vx%v", b.Name, b.Width, b.Height)
		}
	}

	locked, ok := names["locked"]
	if !ok || !locked.Disabled {
		t.Fatalf("expected a disabled locked button, got %+v", locked)
	}
	start, ok := names["start"]
	if !ok || !start.Script {
		t.Fatalf("expected a script-backed start button, got %+v", start)
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	if _, err := LoadSpec[ThemeSpec]("no_such_spec.yaml"); err == nil {
		t.Fatalf("expected error for missing spec")
	}
}

func TestYAMLColorUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    common.Color
		wantErr bool
	}{
		{
			name:  "rgb",
			input: `color: "#4a6fa5"`,
			want:  common.Color{R: 0x4a / 255.0, G: 0x6f / 255.0, B: 0xa5 / 255.0, A: 1},
		},
		{
			name:  "rgba",
			input: `color: "#ffffff80"`,
			want:  common.Color{R: 1, G: 1, B: 1, A: 0x80 / 255.0},
		},
		{
			name:  "no_hash_prefix",
			input: `color: "1d2330"`,
			want:  common.Color{R: 0x1d / 255.0, G: 0x23 / 255.0, B: 0x30 / 255.0, A: 1},
		},
		{
			name:    "too_short",
			input:   `color: "#fff"`,
			wantErr: true,
		},
		{
			name:    "bad_hex",
			input:   `color: "#zzzzzz"`,
			wantErr: true,
		},
		{
			name:    "not_a_scalar",
			input:   "color:\n  - 1\n  - 2",
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out struct {
				Color YAMLColor `yaml:"color"`
			}
			err := yaml.Unmarshal([]byte(c.input), &out)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", c.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %q: %v", c.input, err)
			}
			if out.Color.Color != c.want {
				t.Fatalf("got %v, want %v", out.Color.Color, c.want)
			}
		})
	}
}

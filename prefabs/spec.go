package prefabs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milk9111/pressfx/common"
	"gopkg.in/yaml.v3"
)

// LoadSpec loads and decodes a yaml spec by filename, disk copy first so
// edits hot reload, embedded copy as fallback.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// FeedbackSpec tunes the press/release feedback effect. Zero fields fall
// back to the system defaults.
type FeedbackSpec struct {
	ScaleAmount            float64 `yaml:"scale_amount"`
	Duration               float64 `yaml:"duration"`
	PunchStrength          float64 `yaml:"punch_strength"`
	PunchDuration          float64 `yaml:"punch_duration"`
	PressedColorMultiplier float64 `yaml:"pressed_color_multiplier"`
}

// ThemeSpec is the hot-reloadable look-and-feel file.
type ThemeSpec struct {
	Feedback   FeedbackSpec `yaml:"feedback"`
	Button     *YAMLColor   `yaml:"button_color"`
	Label      *YAMLColor   `yaml:"label_color"`
	Background *YAMLColor   `yaml:"background_color"`
}

func LoadThemeSpec() (*ThemeSpec, error) {
	spec, err := LoadSpec[ThemeSpec]("theme.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ButtonSpec describes one menu button and its decorations.
type ButtonSpec struct {
	Name     string     `yaml:"name"`
	X        float64    `yaml:"x"`
	Y        float64    `yaml:"y"`
	Width    float64    `yaml:"width"`
	Height   float64    `yaml:"height"`
	Label    string     `yaml:"label"`
	Color    *YAMLColor `yaml:"color"`
	Action   string     `yaml:"action"`
	Script   bool       `yaml:"script"`
	Disabled bool       `yaml:"disabled"`
	// Badge optionally adds a small decoration sprite as a child. When
	// BadgeExcluded is set the press feedback leaves its color alone.
	Badge         bool       `yaml:"badge"`
	BadgeColor    *YAMLColor `yaml:"badge_color"`
	BadgeExcluded bool       `yaml:"badge_excluded"`
}

// MenuSpec is the demo menu layout.
type MenuSpec struct {
	Name    string       `yaml:"name"`
	Buttons []ButtonSpec `yaml:"buttons"`
}

func LoadMenuSpec() (*MenuSpec, error) {
	spec, err := LoadSpec[MenuSpec]("menu.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa" into a float color.
type YAMLColor struct {
	common.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (float64, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return float64(v) / 255, err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := 1.0
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = common.Color{R: r, G: g, B: b, A: a}
	return nil
}

package tuning

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/blockstack/sim"
	"gopkg.in/yaml.v3"
)

// Spec is the on-disk tuning for a game session. Missing or zero fields
// fall back to the built-in defaults from sim.DefaultConfig.
type Spec struct {
	World          WorldSpec    `yaml:"world"`
	Gravity        float64      `yaml:"gravity"`
	SleepTime      float64      `yaml:"sleep_time_threshold"`
	Spawn          SpawnSpec    `yaml:"spawn"`
	Platform       PlatformSpec `yaml:"platform"`
	TargetHeight   float64      `yaml:"target_height"`
	MinStackHeight float64      `yaml:"min_stack_height"`
	// Director names a tengo script in scripts/; empty disables the
	// scripted spawn director.
	Director string `yaml:"director"`
}

type WorldSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpawnSpec struct {
	IntervalFrames int          `yaml:"interval_frames"`
	MinWidth       float64      `yaml:"min_width"`
	MaxWidth       float64      `yaml:"max_width"`
	Height         float64      `yaml:"height"`
	Y              float64      `yaml:"y"`
	Palette        []*YAMLColor `yaml:"palette"`
}

type PlatformSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	Y          float64 `yaml:"y"`
	LeftBound  float64 `yaml:"left_bound"`
	RightBound float64 `yaml:"right_bound"`
}

// LoadSpec reads and decodes a tuning file, preferring a disk copy over the
// embedded default.
func LoadSpec(filename string) (*Spec, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("tuning: load %s: %w", filename, err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("tuning: unmarshal %s: %w", filename, err)
	}
	return &spec, nil
}

// Config converts the spec to a sim.Config, filling unset fields from the
// defaults.
func (sp *Spec) Config() sim.Config {
	cfg := sim.DefaultConfig()
	if sp == nil {
		return cfg
	}

	setF := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}

	setF(&cfg.WorldWidth, sp.World.Width)
	setF(&cfg.WorldHeight, sp.World.Height)
	setF(&cfg.Gravity, sp.Gravity)
	setF(&cfg.SleepTimeThreshold, sp.SleepTime)

	if sp.Spawn.IntervalFrames > 0 {
		cfg.SpawnIntervalFrames = sp.Spawn.IntervalFrames
	}
	setF(&cfg.StoneMinWidth, sp.Spawn.MinWidth)
	setF(&cfg.StoneMaxWidth, sp.Spawn.MaxWidth)
	setF(&cfg.StoneHeight, sp.Spawn.Height)
	setF(&cfg.SpawnY, sp.Spawn.Y)
	if len(sp.Spawn.Palette) > 0 {
		palette := make([]color.Color, 0, len(sp.Spawn.Palette))
		for _, c := range sp.Spawn.Palette {
			if c != nil && c.Color != nil {
				palette = append(palette, c.Color)
			}
		}
		if len(palette) > 0 {
			cfg.Palette = palette
		}
	}

	setF(&cfg.PlatformWidth, sp.Platform.Width)
	setF(&cfg.PlatformHeight, sp.Platform.Height)
	setF(&cfg.PlatformSpeed, sp.Platform.Speed)
	setF(&cfg.PlatformY, sp.Platform.Y)
	setF(&cfg.LeftBound, sp.Platform.LeftBound)
	setF(&cfg.RightBound, sp.Platform.RightBound)

	setF(&cfg.TargetHeight, sp.TargetHeight)
	setF(&cfg.MinStackHeight, sp.MinStackHeight)

	return cfg
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa" strings.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
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

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

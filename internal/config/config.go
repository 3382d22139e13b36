// Package config loads and saves the show configuration.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type MoveCfg struct {
	DurationS float64 `yaml:"duration_s"` // <= 0 snaps instantly
	Easing    string  `yaml:"easing"`     // "linear" | "smooth" | "cubic"
	Axis      string  `yaml:"axis"`       // "x" | "y" | "z"
}

type GroupCfg struct {
	Name  string `yaml:"name"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Clip  string `yaml:"clip,omitempty"` // empty means the group is silent
}

type MusicCfg struct {
	FadeS  float64    `yaml:"fade_s"`
	Groups []GroupCfg `yaml:"groups,omitempty"`
}

type OffsetDeg struct {
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
	Roll  float64 `yaml:"roll"`
}

type BillboardCfg struct {
	OffsetDeg OffsetDeg `yaml:"offset_deg"`
}

type KeysCfg struct {
	Advance string `yaml:"advance"` // e.g. "ArrowRight"
	Retreat string `yaml:"retreat"` // e.g. "ArrowLeft"
}

type Config struct {
	FPS       int     `yaml:"fps"`
	Addr      string  `yaml:"addr"` // control server; empty disables it
	AssetsDir string  `yaml:"assets_dir"`
	StartAt   int     `yaml:"start_at"` // initial slide index, clamped

	Slides []float64 `yaml:"slides"` // index -> axis coordinate

	Move      MoveCfg      `yaml:"move"`
	Music     MusicCfg     `yaml:"music"`
	Billboard BillboardCfg `yaml:"billboard"`
	Keys      KeysCfg      `yaml:"keys"`
}

// Defaults returns the configuration used when no file is supplied.
// An empty slide table is legal; it leaves the deck inert.
func Defaults() *Config {
	return &Config{
		FPS:  60,
		Addr: ":8080",
		Move: MoveCfg{DurationS: 0.6, Easing: "smooth", Axis: "x"},
		Music: MusicCfg{
			FadeS: 1.5,
		},
		Keys: KeysCfg{Advance: "ArrowRight", Retreat: "ArrowLeft"},
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Defaults()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

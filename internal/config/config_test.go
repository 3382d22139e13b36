package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LiamKula/ICS-685-3D/internal/config"
)

const showYAML = `
fps: 30
addr: ":9090"
assets_dir: music
start_at: 1
slides: [0, 5, 12]
move:
  duration_s: 0.8
  easing: cubic
  axis: z
music:
  fade_s: 2
  groups:
    - {name: intro, start: 0, end: 0, clip: intro.ogg}
    - {name: body, start: 1, end: 2, clip: body.ogg}
    - {name: outro, start: 3, end: 3}
billboard:
  offset_deg: {pitch: 0, yaw: 180, roll: 0}
keys:
  advance: PageDown
  retreat: PageUp
`

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "show.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeTemp(t, showYAML))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 1, cfg.StartAt)
	assert.Equal(t, []float64{0, 5, 12}, cfg.Slides)
	assert.Equal(t, 0.8, cfg.Move.DurationS)
	assert.Equal(t, "cubic", cfg.Move.Easing)
	assert.Equal(t, "z", cfg.Move.Axis)
	assert.Equal(t, 2.0, cfg.Music.FadeS)
	require.Len(t, cfg.Music.Groups, 3)
	assert.Equal(t, "body.ogg", cfg.Music.Groups[1].Clip)
	assert.Empty(t, cfg.Music.Groups[2].Clip, "clipless group stays silent")
	assert.Equal(t, 180.0, cfg.Billboard.OffsetDeg.Yaw)
	assert.Equal(t, "PageDown", cfg.Keys.Advance)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeTemp(t, "slides: [0, 3]\n"))
	require.NoError(t, err)

	def := config.Defaults()
	assert.Equal(t, []float64{0, 3}, cfg.Slides)
	assert.Equal(t, def.FPS, cfg.FPS)
	assert.Equal(t, def.Move, cfg.Move)
	assert.Equal(t, def.Music.FadeS, cfg.Music.FadeS)
	assert.Equal(t, def.Keys, cfg.Keys)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	in := config.Defaults()
	in.Slides = []float64{1, 2}
	in.Music.Groups = []config.GroupCfg{{Name: "g", Start: 0, End: 1, Clip: "g.ogg"}}
	require.NoError(t, config.Save(path, in))

	out, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rs/zerolog/log"
)

// Library holds decoded PCM for the show's music clips, keyed by file
// name. Clips loop for as long as their channel plays them.
type Library struct {
	sampleRate int
	clips      map[string][]byte
}

// LoadLibrary decodes every .ogg and .wav file directly under dir.
// Files that fail to decode are skipped with a warning; a missing or
// empty directory yields an empty library, which leaves the deck silent
// rather than failing.
func LoadLibrary(ctx *eaudio.Context, dir string) (*Library, error) {
	lib := &Library{sampleRate: ctx.SampleRate(), clips: map[string][]byte{}}
	if dir == "" {
		return lib, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return lib, fmt.Errorf("read clip dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		pcm, err := decodeClip(ctx, filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("clip", name).Msg("clip skipped")
			continue
		}
		if pcm != nil {
			lib.clips[name] = pcm
		}
	}
	return lib, nil
}

func decodeClip(ctx *eaudio.Context, path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		s, err = vorbis.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	case ".wav":
		s, err = wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	default:
		return nil, nil // not a clip; ignore
	}
	if err != nil {
		return nil, err
	}
	return io.ReadAll(s)
}

// Get returns the decoded clip, if present.
func (l *Library) Get(name string) ([]byte, bool) {
	pcm, ok := l.clips[name]
	return pcm, ok
}

// Names lists the loaded clip names.
func (l *Library) Names() []string {
	out := make([]string, 0, len(l.clips))
	for n := range l.clips {
		out = append(out, n)
	}
	return out
}

// EbitenChannel is a Channel backed by an Ebitengine audio player. Each
// Play builds a fresh looping player for the assigned clip; Stop tears
// it down. Assigning a clip that is not in the library makes Play a
// silent no-op.
type EbitenChannel struct {
	ctx    *eaudio.Context
	lib    *Library
	clip   string
	vol    float64
	player *eaudio.Player
}

func NewEbitenChannel(ctx *eaudio.Context, lib *Library) *EbitenChannel {
	return &EbitenChannel{ctx: ctx, lib: lib, vol: 1}
}

func (c *EbitenChannel) SetClip(name string) {
	if name == c.clip {
		return
	}
	c.dropPlayer()
	c.clip = name
}

func (c *EbitenChannel) Clip() string { return c.clip }

func (c *EbitenChannel) SetVolume(v float64) {
	c.vol = clamp01(v)
	if c.player != nil {
		c.player.SetVolume(c.vol)
	}
}

func (c *EbitenChannel) Volume() float64 { return c.vol }

func (c *EbitenChannel) Play() {
	if c.player != nil || c.clip == "" || c.lib == nil {
		return
	}
	pcm, ok := c.lib.Get(c.clip)
	if !ok {
		log.Warn().Str("clip", c.clip).Msg("clip not in library")
		return
	}
	loop := eaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := c.ctx.NewPlayer(loop)
	if err != nil {
		log.Warn().Err(err).Str("clip", c.clip).Msg("player create failed")
		return
	}
	p.SetVolume(c.vol)
	p.Play()
	c.player = p
}

func (c *EbitenChannel) Stop() { c.dropPlayer() }

func (c *EbitenChannel) Playing() bool {
	return c.player != nil && c.player.IsPlaying()
}

func (c *EbitenChannel) dropPlayer() {
	if c.player == nil {
		return
	}
	c.player.Pause()
	_ = c.player.Close()
	c.player = nil
}

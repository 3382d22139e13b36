package audio

import "github.com/rs/zerolog"

// LogChannel is a Channel that only logs state changes. The headless
// simulator uses it to rehearse show timing without an audio device.
type LogChannel struct {
	name    string
	logger  zerolog.Logger
	clip    string
	vol     float64
	playing bool
}

func NewLogChannel(name string, logger zerolog.Logger) *LogChannel {
	return &LogChannel{name: name, logger: logger, vol: 1}
}

func (c *LogChannel) SetClip(name string) {
	if name == c.clip {
		return
	}
	c.clip = name
	c.logger.Info().Str("channel", c.name).Str("clip", name).Msg("assign")
}

func (c *LogChannel) Clip() string { return c.clip }

func (c *LogChannel) SetVolume(v float64) { c.vol = v }

func (c *LogChannel) Volume() float64 { return c.vol }

func (c *LogChannel) Play() {
	c.playing = true
	c.logger.Info().Str("channel", c.name).Str("clip", c.clip).Msg("play")
}

func (c *LogChannel) Stop() {
	if !c.playing {
		return
	}
	c.playing = false
	c.logger.Info().Str("channel", c.name).Float64("vol", c.vol).Msg("stop")
}

func (c *LogChannel) Playing() bool { return c.playing }

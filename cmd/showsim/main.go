// showsim steps a deck headlessly at a fixed rate, applying scripted
// slide jumps and logging music transitions. Useful for rehearsing show
// timing without a window or audio device.
package main

import (
	"flag"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/LiamKula/ICS-685-3D/internal/app"
	"github.com/LiamKula/ICS-685-3D/internal/audio"
	"github.com/LiamKula/ICS-685-3D/internal/config"
)

// cue is one scripted jump: at time T seconds, go to slide Slide.
type cue struct {
	T     float64
	Slide int
}

func main() {
	var (
		configPath = flag.String("config", "", "path to show.yaml (empty runs the built-in demo show)")
		fps        = flag.Int("fps", 60, "simulation ticks per second")
		seconds    = flag.Float64("seconds", 10, "how long to simulate")
		script     = flag.String("script", "0.5:1,2.5:2,4:0", "comma-separated time:slide cues")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05.000"})

	cfg := demoShow()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
		}
		cfg = c
	}

	cues, err := parseScript(*script)
	if err != nil {
		log.Fatal().Err(err).Str("script", *script).Msg("bad script")
	}

	chA := audio.NewLogChannel("a", log.Logger)
	chB := audio.NewLogChannel("b", log.Logger)
	core, err := app.New(cfg, chA, chB, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("deck setup failed")
	}
	core.Start()

	dt := 1.0 / float64(*fps)
	now := 0.0
	next := 0
	lastSlide := core.Snapshot().Slide
	for now < *seconds {
		for next < len(cues) && cues[next].T <= now {
			log.Info().Float64("t", now).Int("slide", cues[next].Slide).Msg("cue")
			core.GoToSlide(cues[next].Slide)
			next++
		}
		core.Tick(dt)
		now += dt

		if snap := core.Snapshot(); snap.Slide != lastSlide && !snap.Moving {
			log.Info().Float64("t", now).Int("slide", snap.Slide).
				Float64("axis", snap.AxisValue).Msg("arrived")
			lastSlide = snap.Slide
		}
	}

	snap := core.Snapshot()
	log.Info().Int("slide", snap.Slide).Int("group", snap.Group).
		Float64("axis", snap.AxisValue).Msg("done")
}

func parseScript(s string) ([]cue, error) {
	var out []cue
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tv, sv, ok := strings.Cut(part, ":")
		if !ok {
			return nil, strconv.ErrSyntax
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(tv), 64)
		if err != nil {
			return nil, err
		}
		slide, err := strconv.Atoi(strings.TrimSpace(sv))
		if err != nil {
			return nil, err
		}
		out = append(out, cue{T: t, Slide: slide})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].T < out[j].T })
	return out, nil
}

// demoShow is the deck used when no config is supplied: three stops and
// two music groups, enough to see a crossfade cancel mid-flight.
func demoShow() *config.Config {
	cfg := config.Defaults()
	cfg.Slides = []float64{0, 5, 12}
	cfg.Music.Groups = []config.GroupCfg{
		{Name: "intro", Start: 0, End: 0, Clip: "intro.ogg"},
		{Name: "body", Start: 1, End: 2, Clip: "body.ogg"},
	}
	return cfg
}

package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/LiamKula/ICS-685-3D/internal/app"
	"github.com/LiamKula/ICS-685-3D/internal/config"
)

const (
	screenW = 960
	screenH = 540
)

// game adapts the deck to Ebitengine's Update/Draw loop and draws a
// schematic top-down view of the slide track.
type game struct {
	core   *app.Core
	slides []float64
	dt     float64
}

func newGame(core *app.Core, cfg *config.Config) *game {
	return &game{core: core, slides: cfg.Slides, dt: 1.0 / float64(cfg.FPS)}
}

func (g *game) Update() error {
	g.core.Tick(g.dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	snap := g.core.Snapshot()

	// Track with one marker per slide stop and the camera position.
	lo, hi := trackBounds(g.slides)
	trackY := float32(screenH / 2)
	vector.StrokeLine(screen, 60, trackY, screenW-60, trackY, 2, color.RGBA{70, 70, 70, 255}, false)
	for i, coord := range g.slides {
		x := trackX(coord, lo, hi)
		clr := color.RGBA{130, 130, 130, 255}
		if i == snap.Slide {
			clr = color.RGBA{90, 170, 255, 255}
		}
		vector.DrawFilledRect(screen, x-4, trackY-12, 8, 24, clr, false)
	}
	camX := trackX(snap.AxisValue, lo, hi)
	vector.DrawFilledCircle(screen, camX, trackY, 7, color.RGBA{255, 200, 60, 255}, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"slide %d/%d  group %d  axis %.2f  move %.0f%%",
		snap.Slide+1, snap.Slides, snap.Group, snap.AxisValue, snap.MoveProgress*100), 8, 8)
	for i, ch := range snap.Channels {
		mark := " "
		if i == snap.Active {
			mark = "*"
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"%schannel %d  clip=%q  vol=%.2f  playing=%v", mark, i, ch.Clip, ch.Volume, ch.Playing), 8, 24+i*16)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func trackBounds(slides []float64) (float64, float64) {
	if len(slides) == 0 {
		return 0, 1
	}
	lo, hi := slides[0], slides[0]
	for _, v := range slides {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}

func trackX(v, lo, hi float64) float32 {
	u := (v - lo) / (hi - lo)
	return float32(60 + u*(screenW-120))
}

// Package app wires the scene, orienter, sequencer, and mixer into one
// deck and drives them from the host's per-frame callback.
package app

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/LiamKula/ICS-685-3D/internal/audio"
	"github.com/LiamKula/ICS-685-3D/internal/billboard"
	"github.com/LiamKula/ICS-685-3D/internal/config"
	"github.com/LiamKula/ICS-685-3D/internal/scene"
	"github.com/LiamKula/ICS-685-3D/internal/sequence"
)

// Panel placement relative to each slide stop.
const (
	panelHeight   = 1.5
	panelStandOff = 3.0
)

// ChannelState is one channel's snapshot for the status surfaces.
type ChannelState struct {
	Clip    string  `json:"clip"`
	Volume  float64 `json:"volume"`
	Playing bool    `json:"playing"`
}

// Snapshot is the deck state published to /state and /health.
type Snapshot struct {
	Slide        int             `json:"slide"`
	Slides       int             `json:"slides"`
	Group        int             `json:"group"`
	Moving       bool            `json:"moving"`
	MoveProgress float64         `json:"move_progress"`
	AxisValue    float64         `json:"axis_value"`
	Fading       bool            `json:"fading"`
	Active       int             `json:"active_channel"`
	Channels     [2]ChannelState `json:"channels"`
}

// Core owns the deck. One mutex serializes the frame tick with the
// control surface, so the per-frame components themselves stay
// single-threaded.
type Core struct {
	mu     sync.Mutex
	sc     *scene.Scene
	camera *scene.Node
	anchor *scene.Node
	axis   scene.Axis

	orienter *billboard.Orienter
	mixer    *audio.Mixer
	seq      *sequence.Sequencer
}

// New builds the deck from cfg: a camera node as primary viewpoint and
// move target, one panel per slide stop under a shared anchor, the
// orienter over those panels, and the sequencer wired to the mixer.
func New(cfg *config.Config, chA, chB audio.Channel, trig sequence.Triggers) (*Core, error) {
	if chA == nil || chB == nil {
		return nil, fmt.Errorf("both audio channels are required")
	}

	sc := scene.New()
	camera := scene.NewNode("camera")
	sc.SetPrimaryViewpoint(camera)
	axis := scene.ParseAxis(cfg.Move.Axis)

	anchor := scene.NewNode("billboards")
	for i, coord := range cfg.Slides {
		p := scene.NewNode(fmt.Sprintf("panel-%d", i))
		pos := mgl64.Vec3{0, panelHeight, 0}
		pos[int(axis)] = coord
		// Stand panels off the movement axis so they have something to
		// face. The stand-off goes on Z unless Z is the movement axis.
		if axis == scene.AxisZ {
			pos[0] = panelStandOff
		} else {
			pos[2] = panelStandOff
		}
		p.SetPosition(pos)
		anchor.AddChild(p)
	}

	orienter := billboard.New(sc, anchor, billboard.OffsetDegrees{
		Pitch: cfg.Billboard.OffsetDeg.Pitch,
		Yaw:   cfg.Billboard.OffsetDeg.Yaw,
		Roll:  cfg.Billboard.OffsetDeg.Roll,
	})
	orienter.Init()

	mixer := audio.NewMixer(chA, chB)

	groups := make([]sequence.Group, 0, len(cfg.Music.Groups))
	for _, g := range cfg.Music.Groups {
		groups = append(groups, sequence.Group{Name: g.Name, Start: g.Start, End: g.End, Clip: g.Clip})
	}

	c := &Core{
		sc:       sc,
		camera:   camera,
		anchor:   anchor,
		axis:     axis,
		orienter: orienter,
		mixer:    mixer,
	}
	c.seq = sequence.NewSequencer(sequence.Config{
		Table:    cfg.Slides,
		Groups:   groups,
		MoveDurS: cfg.Move.DurationS,
		FadeDurS: cfg.Music.FadeS,
		Easing:   sequence.Ease(cfg.Move.Easing),
	}, sequence.Hooks{
		AxisValue: func() float64 { return camera.AxisValue(axis) },
		SetAxis:   func(v float64) { camera.SetAxisValue(axis, v) },
		FadeTo:    mixer.FadeTo,
	})
	c.seq.SetTriggers(trig)

	c.GoToSlideNow(cfg.StartAt)
	return c, nil
}

// GoToSlideNow places the deck at the slide without animation or music.
// Used for initial placement before Start.
func (c *Core) GoToSlideNow(i int) { c.seq.Reset(i) }

// Start snaps the camera to the current slide and begins its music.
func (c *Core) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq.Start()
}

// Tick is the host's "advance one frame" callback: sequencer, then
// mixer, then orienter.
func (c *Core) Tick(dt float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq.Tick(dt)
	c.mixer.Tick(dt)
	c.orienter.Update()
}

// GoToSlide jumps to an arbitrary slide; same clamp/no-op semantics as
// key navigation. Safe to call from the control surface.
func (c *Core) GoToSlide(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq.GoToSlide(i)
}

// AutoFillPanels resyncs the orienter's panel collection to the anchor's
// current direct children.
func (c *Core) AutoFillPanels() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orienter.AutoFill()
}

// Sequencer exposes the deck's sequencer for the front end.
func (c *Core) Sequencer() *sequence.Sequencer { return c.seq }

// Mixer exposes the deck's mixer for the front end.
func (c *Core) Mixer() *audio.Mixer { return c.mixer }

// Camera returns the viewpoint node the sequencer animates.
func (c *Core) Camera() *scene.Node { return c.camera }

// Anchor returns the billboard anchor node.
func (c *Core) Anchor() *scene.Node { return c.anchor }

// Snapshot returns the current deck state. Safe to call from any
// goroutine.
func (c *Core) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buildSnapshot()
}

func (c *Core) buildSnapshot() Snapshot {
	s := Snapshot{
		Slide:        c.seq.Slide(),
		Slides:       len(c.seq.Config().Table),
		Group:        c.seq.GroupIndex(),
		Moving:       c.seq.Moving(),
		MoveProgress: c.seq.MoveProgress(),
		AxisValue:    c.camera.AxisValue(c.axis),
		Fading:       c.mixer.Fading(),
		Active:       c.mixer.Active(),
	}
	for i := 0; i < 2; i++ {
		ch := c.mixer.Channel(i)
		s.Channels[i] = ChannelState{Clip: ch.Clip(), Volume: ch.Volume(), Playing: ch.Playing()}
	}
	return s
}

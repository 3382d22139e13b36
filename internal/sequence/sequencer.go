package sequence

// moveOp is the in-flight timed move. Starting a new move overwrites the
// record in place; the superseded move never resumes and runs no
// completion step.
type moveOp struct {
	running  bool
	elapsed  float64
	duration float64
	from     float64
	to       float64
}

// Sequencer holds the current slide index and drives the single-axis move
// and the music updates through its hooks. All methods run on the frame
// loop; nothing here is safe for concurrent use.
type Sequencer struct {
	cfg      Config
	hooks    Hooks
	triggers Triggers

	slide     int
	lastGroup int // -1 means "no group"
	move      moveOp
}

// NewSequencer constructs a Sequencer over cfg with the provided hooks.
func NewSequencer(cfg Config, h Hooks) *Sequencer {
	return &Sequencer{cfg: cfg, hooks: h, lastGroup: -1}
}

// SetTriggers binds the discrete advance/retreat signals polled by Tick.
func (s *Sequencer) SetTriggers(t Triggers) { s.triggers = t }

// Config returns the sequencer's setup.
func (s *Sequencer) Config() Config { return s.cfg }

// Reset places the sequencer at slide i with no move and no music
// evaluation. Intended for initial placement before Start.
func (s *Sequencer) Reset(i int) {
	if len(s.cfg.Table) == 0 {
		return
	}
	s.slide = clampIndex(i, len(s.cfg.Table))
	s.move = moveOp{}
	s.lastGroup = -1
}

// Slide returns the current slide index. During a move it already names
// the destination, not the in-progress visual position.
func (s *Sequencer) Slide() int { return s.slide }

// GroupIndex returns the group index the music last resolved to, or -1.
func (s *Sequencer) GroupIndex() int { return s.lastGroup }

// Moving reports whether a timed move is in flight.
func (s *Sequencer) Moving() bool { return s.move.running }

// MoveProgress returns normalized move time in [0,1]; 1 when idle.
func (s *Sequencer) MoveProgress() float64 {
	if !s.move.running {
		return 1
	}
	if s.move.duration <= 0 {
		return 1
	}
	return clamp01(s.move.elapsed / s.move.duration)
}

// Start snaps the axis to the current slide's coordinate and forces the
// initial music evaluation, so a deck opening inside a clip group is not
// silent until the first group crossing. Empty table: nothing happens.
func (s *Sequencer) Start() {
	if len(s.cfg.Table) == 0 {
		return
	}
	s.slide = clampIndex(s.slide, len(s.cfg.Table))
	s.setAxis(s.cfg.Table[s.slide])
	s.refreshMusic(true)
}

// GoToSlide clamps index into range and initiates the move and music
// transition toward it. Requesting the slide already current is a no-op.
// Callable from host-level UI as well as from the per-frame triggers.
func (s *Sequencer) GoToSlide(index int) {
	if len(s.cfg.Table) == 0 {
		return
	}
	index = clampIndex(index, len(s.cfg.Table))
	if index == s.slide {
		return
	}
	s.slide = index
	s.startMove(s.cfg.Table[index])
	// Music re-evaluates regardless of how the move itself ends.
	s.refreshMusic(false)
}

// Tick polls the navigation triggers and advances the in-flight move by
// dt seconds. At most one slide change is initiated per tick; advance
// wins when both signals fire.
func (s *Sequencer) Tick(dt float64) {
	if len(s.cfg.Table) == 0 {
		return
	}
	if s.triggers != nil {
		if s.triggers.Advance() {
			s.GoToSlide(s.slide + 1)
		} else if s.triggers.Retreat() {
			s.GoToSlide(s.slide - 1)
		}
	}
	if !s.move.running {
		return
	}
	s.move.elapsed += dt
	if s.move.elapsed >= s.move.duration {
		s.finishMove()
		return
	}
	u := clamp01(s.move.elapsed / s.move.duration)
	v := s.cfg.Easing.Apply(u)
	s.setAxis(s.move.from + (s.move.to-s.move.from)*v)
}

// startMove begins a timed move from the live axis value. A non-positive
// duration completes within the same call.
func (s *Sequencer) startMove(to float64) {
	from := to
	if s.hooks.AxisValue != nil {
		from = s.hooks.AxisValue()
	}
	s.move = moveOp{running: true, duration: s.cfg.MoveDurS, from: from, to: to}
	if s.move.duration <= 0 {
		s.finishMove()
	}
}

// finishMove pins the axis exactly to the target coordinate. Only natural
// completion reaches here; a superseded move is simply overwritten.
func (s *Sequencer) finishMove() {
	s.setAxis(s.move.to)
	s.move.running = false
}

func (s *Sequencer) setAxis(v float64) {
	if s.hooks.SetAxis != nil {
		s.hooks.SetAxis(v)
	}
}

// refreshMusic fades toward the clip of the group containing the current
// slide, but only when the resolved group index changed since the last
// evaluation. Moving between slides that share a group stays silent at
// the mixer.
func (s *Sequencer) refreshMusic(force bool) {
	g := GroupIndexFor(s.cfg.Groups, s.slide)
	if !force && g == s.lastGroup {
		return
	}
	s.lastGroup = g
	clip := ""
	if g >= 0 {
		clip = s.cfg.Groups[g].Clip
	}
	if s.hooks.FadeTo != nil {
		s.hooks.FadeTo(clip, s.cfg.FadeDurS)
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

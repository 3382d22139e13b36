package audio

// fadeOp is the in-flight crossfade. Starting a new fade overwrites the
// record in place; the superseded fade never runs its completion step,
// so channels keep whatever intermediate volumes they held. A new fade
// reads its from-volumes from that live state rather than canonical
// endpoints — rapid retriggering can therefore produce audible volume
// steps. That behavior is load-bearing for callers and kept as is.
type fadeOp struct {
	running  bool
	elapsed  float64
	duration float64
	out      int     // ramping down; -1 when only ramping back up
	in       int     // ramping up; -1 for fade-to-silence
	outFrom  float64 // outgoing volume at fade start
	inFrom   float64 // incoming volume at fade start
	restore  float64 // pre-fade volume, re-applied after fade-to-silence
}

// Mixer owns a pair of channels, exactly one of which is active at a
// time. FadeTo retargets audible output; Tick advances the in-flight
// ramp once per frame. Single-threaded, like everything on the frame
// loop.
type Mixer struct {
	ch     [2]Channel
	active int
	fade   fadeOp
}

func NewMixer(a, b Channel) *Mixer {
	return &Mixer{ch: [2]Channel{a, b}}
}

// Active returns the index of the channel currently considered the
// canonical output.
func (m *Mixer) Active() int { return m.active }

// Channel returns one of the two channels by index.
func (m *Mixer) Channel(i int) Channel { return m.ch[i&1] }

// Fading reports whether a fade is in flight.
func (m *Mixer) Fading() bool { return m.fade.running }

// FadeProgress returns normalized fade time in [0,1]; 1 when idle.
func (m *Mixer) FadeProgress() float64 {
	if !m.fade.running {
		return 1
	}
	if m.fade.duration <= 0 {
		return 1
	}
	return clamp01(m.fade.elapsed / m.fade.duration)
}

// FadeTo transitions audible output to the named clip over dur seconds.
// The empty name targets silence. Any fade already in flight is
// cancelled immediately, with no completion step for the old fade.
func (m *Mixer) FadeTo(clip string, dur float64) {
	act := m.ch[m.active]

	// Already the fully active, playing clip: nothing to do. A fade to
	// silence still counts as a transition away from the clip, so a
	// request arriving mid-silence-fade cancels it and ramps the channel
	// back to full volume instead of letting the silence complete.
	if clip != "" && act.Clip() == clip && act.Playing() {
		if !m.fade.running || m.fade.in >= 0 {
			return
		}
		m.fade = fadeOp{}
		if dur <= 0 {
			act.SetVolume(1)
			return
		}
		m.fade = fadeOp{running: true, duration: dur, out: -1, in: m.active, inFrom: act.Volume()}
		return
	}

	if clip == "" {
		m.fade = fadeOp{}
		if dur <= 0 || act.Clip() == "" || !act.Playing() {
			act.Stop()
			act.SetClip("")
			return
		}
		v := act.Volume()
		m.fade = fadeOp{running: true, duration: dur, out: m.active, in: -1, outFrom: v, restore: v}
		return
	}

	in := 1 - m.active
	inCh := m.ch[in]
	// The incoming channel normally starts silent from rest. When it
	// already holds the target clip mid-transition (a cancelled fade on
	// its way out), its live volume is kept and the ramp continues from
	// there.
	if inCh.Clip() != clip || !inCh.Playing() {
		inCh.SetClip(clip)
		inCh.SetVolume(0)
		inCh.Play()
	}

	if dur <= 0 {
		act.Stop()
		act.SetClip("")
		inCh.SetVolume(1)
		m.active = in
		m.fade = fadeOp{}
		return
	}

	m.fade = fadeOp{
		running:  true,
		duration: dur,
		out:      m.active,
		in:       in,
		outFrom:  act.Volume(),
		inFrom:   inCh.Volume(),
	}
	// The incoming channel is the canonical output from here on; the
	// completion step below only stops the leftover outgoing channel.
	m.active = in
}

// Tick advances the in-flight fade by dt seconds. Completion pins the
// endpoint volumes and stops the outgoing channel; a cancelled fade
// never reaches its completion step.
func (m *Mixer) Tick(dt float64) {
	if !m.fade.running {
		return
	}
	m.fade.elapsed += dt
	u := clamp01(m.fade.elapsed / m.fade.duration)
	done := m.fade.elapsed >= m.fade.duration

	if m.fade.out >= 0 {
		out := m.ch[m.fade.out]
		out.SetVolume(m.fade.outFrom * (1 - u))
	}

	if m.fade.in < 0 { // fading to silence
		if done {
			out := m.ch[m.fade.out]
			out.Stop()
			out.SetClip("")
			out.SetVolume(m.fade.restore)
			m.fade = fadeOp{}
		}
		return
	}

	in := m.ch[m.fade.in]
	in.SetVolume(m.fade.inFrom + (1-m.fade.inFrom)*u)
	if done {
		if m.fade.out >= 0 {
			out := m.ch[m.fade.out]
			out.Stop()
			out.SetClip("")
		}
		in.SetVolume(1)
		m.fade = fadeOp{}
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

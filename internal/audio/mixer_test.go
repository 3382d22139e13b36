package audio

import (
	"math"
	"testing"
)

func newTestMixer() (*Mixer, *FakeChannel, *FakeChannel) {
	a := NewFakeChannel("a")
	b := NewFakeChannel("b")
	return NewMixer(a, b), a, b
}

// settle runs an instant fade so the named clip is fully active.
func settle(m *Mixer, clip string) {
	m.FadeTo(clip, 0)
}

func TestCrossfadeCompletionInvariant(t *testing.T) {
	m, a, b := newTestMixer()
	settle(m, "one.ogg")
	m.FadeTo("two.ogg", 1)
	m.Tick(0.5)
	m.Tick(0.5)

	if m.Fading() {
		t.Fatal("fade should have completed")
	}
	// settle put one.ogg on channel b; the crossfade lands two.ogg on a.
	if !a.Playing() || a.Clip() != "two.ogg" || a.Volume() != 1 {
		t.Fatalf("incoming: playing=%v clip=%q vol=%v", a.Playing(), a.Clip(), a.Volume())
	}
	if b.Playing() || b.Clip() != "" {
		t.Fatalf("outgoing must be stopped and cleared: playing=%v clip=%q", b.Playing(), b.Clip())
	}
	if m.Active() != 0 {
		t.Fatalf("active=%d, want 0", m.Active())
	}
}

func TestFadeToSilenceRestoresVolume(t *testing.T) {
	m, _, b := newTestMixer()
	settle(m, "one.ogg") // lands on channel b
	b.SetVolume(0.8)

	m.FadeTo("", 2)
	m.Tick(1)
	if math.Abs(b.Volume()-0.4) > 1e-12 {
		t.Fatalf("mid-fade volume=%v, want 0.4", b.Volume())
	}
	m.Tick(1)
	if b.Playing() || b.Clip() != "" {
		t.Fatalf("channel must be stopped and cleared: playing=%v clip=%q", b.Playing(), b.Clip())
	}
	if b.Volume() != 0.8 {
		t.Fatalf("volume must be restored to pre-fade level, got %v", b.Volume())
	}
}

func TestFadeToSilenceWhenAlreadySilentIsInstant(t *testing.T) {
	m, a, b := newTestMixer()
	m.FadeTo("", 2)
	if m.Fading() {
		t.Fatal("nothing to fade; must resolve instantly")
	}
	if a.Playing() || b.Playing() {
		t.Fatal("no channel should be playing")
	}
}

func TestIdempotentReentry(t *testing.T) {
	m, a, b := newTestMixer()
	settle(m, "one.ogg") // lands on channel b
	aOps, bOps := len(a.Ops), len(b.Ops)

	m.FadeTo("one.ogg", 1)
	if m.Fading() {
		t.Fatal("refading the active playing clip must be a no-op")
	}
	if len(a.Ops) != aOps || len(b.Ops) != bOps {
		t.Fatalf("no channel mutation expected; a=%v b=%v", a.Ops[aOps:], b.Ops[bOps:])
	}
}

func TestZeroDurationCrossfade(t *testing.T) {
	m, a, b := newTestMixer()
	settle(m, "one.ogg")
	m.FadeTo("two.ogg", 0)
	if m.Fading() {
		t.Fatal("zero duration must resolve within the call")
	}
	if !a.Playing() || a.Clip() != "two.ogg" || a.Volume() != 1 {
		t.Fatalf("incoming: playing=%v clip=%q vol=%v", a.Playing(), a.Clip(), a.Volume())
	}
	if b.Playing() || b.Clip() != "" {
		t.Fatalf("outgoing: playing=%v clip=%q", b.Playing(), b.Clip())
	}
}

// The cancellation quirk: a fade started mid-fade reads live volumes and
// never runs the cancelled fade's completion.
func TestCancelMidFadeKeepsLiveVolumes(t *testing.T) {
	m, a, b := newTestMixer()
	settle(m, "one.ogg") // one.ogg on channel b, volume 1

	m.FadeTo("two.ogg", 1) // two.ogg starts on channel a at 0
	m.Tick(0.3)
	if math.Abs(b.Volume()-0.7) > 1e-9 || math.Abs(a.Volume()-0.3) > 1e-9 {
		t.Fatalf("mid-fade volumes a=%v b=%v", a.Volume(), b.Volume())
	}

	// Fade back to one.ogg: channel b still holds it mid-ramp, so its
	// live volume is kept, not reset to zero.
	m.FadeTo("one.ogg", 1)
	if !b.Playing() || b.Clip() != "one.ogg" {
		t.Fatalf("channel b must keep its in-flight clip: playing=%v clip=%q", b.Playing(), b.Clip())
	}
	if math.Abs(b.Volume()-0.7) > 1e-9 {
		t.Fatalf("live volume must carry into the new fade, got %v", b.Volume())
	}

	m.Tick(0.5)
	if math.Abs(a.Volume()-0.15) > 1e-9 {
		t.Fatalf("outgoing ramps from its live 0.3: got %v", a.Volume())
	}
	if math.Abs(b.Volume()-0.85) > 1e-9 {
		t.Fatalf("incoming ramps from its live 0.7: got %v", b.Volume())
	}

	m.Tick(0.5)
	if a.Playing() || a.Clip() != "" {
		t.Fatalf("cancelled fade's incoming must end stopped: playing=%v clip=%q", a.Playing(), a.Clip())
	}
	if !b.Playing() || b.Clip() != "one.ogg" || b.Volume() != 1 {
		t.Fatalf("final: playing=%v clip=%q vol=%v", b.Playing(), b.Clip(), b.Volume())
	}
}

// Requesting the active clip back while its fade to silence is in
// flight must cancel the silence fade and ramp the channel back up, not
// fall into the idempotent no-op and let the silence complete.
func TestRefadeDuringSilenceFade(t *testing.T) {
	m, _, b := newTestMixer()
	settle(m, "one.ogg") // lands on channel b

	m.FadeTo("", 1)
	m.Tick(0.3)
	if math.Abs(b.Volume()-0.7) > 1e-9 {
		t.Fatalf("mid-silence volume=%v, want 0.7", b.Volume())
	}

	m.FadeTo("one.ogg", 1)
	if !m.Fading() {
		t.Fatal("re-request must replace the silence fade with a ramp up")
	}
	m.Tick(0.5)
	if math.Abs(b.Volume()-0.85) > 1e-9 {
		t.Fatalf("ramp up from live 0.7: got %v", b.Volume())
	}
	m.Tick(0.5)
	if m.Fading() {
		t.Fatal("ramp up should have completed")
	}
	if !b.Playing() || b.Clip() != "one.ogg" || b.Volume() != 1 {
		t.Fatalf("clip must stay audible: playing=%v clip=%q vol=%v", b.Playing(), b.Clip(), b.Volume())
	}
}

func TestRefadeDuringSilenceFadeInstant(t *testing.T) {
	m, _, b := newTestMixer()
	settle(m, "one.ogg")

	m.FadeTo("", 1)
	m.Tick(0.3)
	m.FadeTo("one.ogg", 0)
	if m.Fading() {
		t.Fatal("zero duration must resolve within the call")
	}
	if !b.Playing() || b.Clip() != "one.ogg" || b.Volume() != 1 {
		t.Fatalf("clip must snap back: playing=%v clip=%q vol=%v", b.Playing(), b.Clip(), b.Volume())
	}
}

func TestFadeProgress(t *testing.T) {
	m, _, _ := newTestMixer()
	if m.FadeProgress() != 1 {
		t.Fatalf("idle progress=%v, want 1", m.FadeProgress())
	}
	settle(m, "one.ogg")
	m.FadeTo("two.ogg", 2)
	m.Tick(0.5)
	if math.Abs(m.FadeProgress()-0.25) > 1e-12 {
		t.Fatalf("progress=%v, want 0.25", m.FadeProgress())
	}
}

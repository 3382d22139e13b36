package sequence

// Group associates a closed slide-index interval [Start, End] with one
// music clip. An empty Clip means the group is silent.
type Group struct {
	Name  string
	Start int
	End   int
	Clip  string
}

// GroupIndexFor returns the index of the first group in slice order whose
// interval contains slide, or -1 if none matches. Slice order, not range
// precedence, resolves overlaps.
func GroupIndexFor(groups []Group, slide int) int {
	for i, g := range groups {
		if slide >= g.Start && slide <= g.End {
			return i
		}
	}
	return -1
}

// Triggers polls the two discrete navigation signals once per frame.
// Implementations answer true only on the frame the signal fired.
type Triggers interface {
	Advance() bool
	Retreat() bool
}

// Hooks are dependency-injected callbacks into the host scene and mixer.
type Hooks struct {
	// AxisValue reads the live coordinate of the animated axis.
	AxisValue func() float64
	// SetAxis writes the animated axis, holding all other axes fixed.
	SetAxis func(v float64)
	// FadeTo starts a music transition to the named clip ("" = silence).
	FadeTo func(clip string, durS float64)
}

// Config is the sequencer's immutable setup, supplied once before the
// deck starts.
type Config struct {
	Table    []float64 // slide index -> axis coordinate
	Groups   []Group
	MoveDurS float64
	FadeDurS float64
	Easing   Ease
}

// Package audio owns the two playback channels of the presentation and
// the crossfade state machine that moves audible output between clips.
package audio

// Channel abstracts one playback channel of the host engine. A clip is
// identified by name; the empty name means no clip is assigned.
type Channel interface {
	SetClip(name string)
	Clip() string
	SetVolume(v float64)
	Volume() float64
	Play()
	Stop()
	Playing() bool
}

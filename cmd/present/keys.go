package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyNames maps the config's key binding names to Ebitengine keys.
var keyNames = map[string]ebiten.Key{
	"ArrowRight": ebiten.KeyArrowRight,
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"Space":      ebiten.KeySpace,
	"Enter":      ebiten.KeyEnter,
	"Backspace":  ebiten.KeyBackspace,
	"PageUp":     ebiten.KeyPageUp,
	"PageDown":   ebiten.KeyPageDown,
	"N":          ebiten.KeyN,
	"P":          ebiten.KeyP,
}

func keyByName(name string, fallback ebiten.Key) ebiten.Key {
	if k, ok := keyNames[name]; ok {
		return k
	}
	return fallback
}

// keyTriggers answers the discrete advance/retreat signals from the
// keyboard, true only on the frame the key went down.
type keyTriggers struct {
	advance ebiten.Key
	retreat ebiten.Key
}

func (t keyTriggers) Advance() bool { return inpututil.IsKeyJustPressed(t.advance) }
func (t keyTriggers) Retreat() bool { return inpututil.IsKeyJustPressed(t.retreat) }

//go:build !ebiten

package app

import "errors"

// ErrNoGUI is returned by Run when the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("the GUI requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*Controller) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Run reports that the GUI build tag is missing.
func Run(*Controller, int) error { return ErrNoGUI }

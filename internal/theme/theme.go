// Package theme provides the light and dark palettes and the animated switch
// between them.
package theme

import (
	"fmt"
	"image/color"
	"strings"
	"time"
)

// Kind identifies a palette.
type Kind int

const (
	Light Kind = iota // dark cells on a white background
	Dark              // light cells on a near-black background
)

func (k Kind) String() string {
	if k == Light {
		return "light"
	}
	return "dark"
}

// Parse accepts "light" or "dark" in any case.
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return Light, nil
	case "dark", "":
		return Dark, nil
	}
	return Dark, fmt.Errorf("unknown theme %q", name)
}

// Palette holds the colors used to draw the board.
type Palette struct {
	Alive    color.RGBA
	Dead     color.RGBA
	GridLine color.RGBA
}

// PaletteFor returns the fixed palette of k.
func PaletteFor(k Kind) Palette {
	if k == Light {
		return Palette{
			Alive:    color.RGBA{A: 255},
			Dead:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
			GridLine: color.RGBA{R: 160, G: 160, B: 160, A: 255},
		}
	}
	return Palette{
		Alive:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Dead:     color.RGBA{R: 30, G: 30, B: 30, A: 255},
		GridLine: color.RGBA{R: 60, G: 60, B: 60, A: 255},
	}
}

// TransitionDuration is how long a theme switch animates.
const TransitionDuration = 300 * time.Millisecond

// Manager tracks the active theme and any running transition.
type Manager struct {
	current Kind
	target  Kind
	start   time.Time
}

// NewManager starts on k with no transition.
func NewManager(k Kind) *Manager {
	return &Manager{current: k, target: k}
}

// Current returns the settled theme. During a transition it is the theme
// being left.
func (m *Manager) Current() Kind { return m.current }

// Target returns the theme being moved towards.
func (m *Manager) Target() Kind { return m.target }

// Toggle begins a transition to the other theme.
func (m *Manager) Toggle(now time.Time) {
	next := Dark
	if m.target == Dark {
		next = Light
	}
	m.SwitchTo(next, now)
}

// SwitchTo begins a transition to k. Switching to the settled theme is a no-op.
func (m *Manager) SwitchTo(k Kind, now time.Time) {
	if k == m.current && !m.Transitioning() {
		return
	}
	m.target = k
	m.start = now
}

// Transitioning reports whether a switch is still animating.
func (m *Manager) Transitioning() bool { return !m.start.IsZero() }

// Update settles a finished transition.
func (m *Manager) Update(now time.Time) {
	if !m.Transitioning() {
		return
	}
	if m.progress(now) >= 1 {
		m.current = m.target
		m.start = time.Time{}
	}
}

func (m *Manager) progress(now time.Time) float64 {
	if !m.Transitioning() {
		return 1
	}
	t := float64(now.Sub(m.start)) / float64(TransitionDuration)
	return EaseInOutCubic(clamp01(t))
}

// Colors returns the palette to draw with at now, blended while a transition
// is running.
func (m *Manager) Colors(now time.Time) Palette {
	if !m.Transitioning() {
		return PaletteFor(m.current)
	}
	from, to := PaletteFor(m.current), PaletteFor(m.target)
	t := m.progress(now)
	return Palette{
		Alive:    Lerp(from.Alive, to.Alive, t),
		Dead:     Lerp(from.Dead, to.Dead, t),
		GridLine: Lerp(from.GridLine, to.GridLine, t),
	}
}

// EaseInOutCubic maps linear progress in [0,1] onto an ease-in-out curve.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Lerp blends a towards b by t in [0,1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

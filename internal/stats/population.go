package stats

// DefaultHistory is the number of generations Default keeps.
const DefaultHistory = 200

// Population records live-cell counts for the most recent generations.
type Population struct {
	history []int
	max     int
	visible bool
}

// New returns a tracker keeping at most max samples. Non-positive limits fall
// back to DefaultHistory.
func New(max int) *Population {
	if max <= 0 {
		max = DefaultHistory
	}
	return &Population{max: max, visible: true}
}

// Default keeps DefaultHistory samples.
func Default() *Population { return New(DefaultHistory) }

// Add appends a sample, dropping the oldest once the limit is reached.
func (p *Population) Add(n int) {
	p.history = append(p.history, n)
	if over := len(p.history) - p.max; over > 0 {
		p.history = append(p.history[:0], p.history[over:]...)
	}
}

// Clear drops every sample.
func (p *Population) Clear() { p.history = p.history[:0] }

// History returns the samples oldest first. The slice is owned by p.
func (p *Population) History() []int { return p.history }

// Len returns the number of samples held.
func (p *Population) Len() int { return len(p.history) }

// Limit returns the maximum number of samples kept.
func (p *Population) Limit() int { return p.max }

// HasData reports whether any sample has been recorded.
func (p *Population) HasData() bool { return len(p.history) > 0 }

// Current returns the latest sample.
func (p *Population) Current() (int, bool) {
	if len(p.history) == 0 {
		return 0, false
	}
	return p.history[len(p.history)-1], true
}

// Max returns the largest sample.
func (p *Population) Max() (int, bool) {
	if len(p.history) == 0 {
		return 0, false
	}
	m := p.history[0]
	for _, v := range p.history[1:] {
		if v > m {
			m = v
		}
	}
	return m, true
}

// Min returns the smallest sample.
func (p *Population) Min() (int, bool) {
	if len(p.history) == 0 {
		return 0, false
	}
	m := p.history[0]
	for _, v := range p.history[1:] {
		if v < m {
			m = v
		}
	}
	return m, true
}

// Average returns the mean of all samples.
func (p *Population) Average() (float64, bool) {
	if len(p.history) == 0 {
		return 0, false
	}
	return float64(sum(p.history)) / float64(len(p.history)), true
}

// Trend compares the mean of the last window samples with the window before
// it: 1 when it grew by more than one cell, -1 when it shrank by more than
// one, 0 otherwise. It needs 2*window samples.
func (p *Population) Trend(window int) (int, bool) {
	n := len(p.history)
	if window <= 0 || n < window*2 {
		return 0, false
	}
	recent := float64(sum(p.history[n-window:])) / float64(window)
	previous := float64(sum(p.history[n-2*window:n-window])) / float64(window)
	switch diff := recent - previous; {
	case diff > 1:
		return 1, true
	case diff < -1:
		return -1, true
	}
	return 0, true
}

// Stable reports whether the last window samples vary by at most threshold.
func (p *Population) Stable(window, threshold int) bool {
	n := len(p.history)
	if window <= 0 || n < window {
		return false
	}
	recent := p.history[n-window:]
	lo, hi := recent[0], recent[0]
	for _, v := range recent[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return hi-lo <= threshold
}

// Visible reports whether the statistics panel is shown.
func (p *Population) Visible() bool { return p.visible }

// SetVisible shows or hides the statistics panel.
func (p *Population) SetVisible(v bool) { p.visible = v }

func sum(vs []int) int {
	t := 0
	for _, v := range vs {
		t += v
	}
	return t
}

package pywave

type (
	// Mixer is an ordered sequence of cues plus the playback pointer,
	// modeling one show or act. Current is always in [0, len(Cues)]: cues
	// before it have been executed, the cue at it (if any) is the next one
	// to fire, cues after it are pending.
	Mixer struct {
		Name    string
		Cues    []*Cue
		Current int
	}

	// CueStatus classifies a cue relative to the playback pointer, for the
	// operator view.
	CueStatus int
)

const (
	CueExecuted CueStatus = iota
	CueCurrent
	CuePending
)

// WindowMargin is how many cues before and after the current one must stay
// visible when the view scrolls.
const WindowMargin = 4

func NewMixer() *Mixer {
	return &Mixer{Name: "Mixer"}
}

// ClampCurrent forces the pointer back into [0, len(Cues)] after structural
// edits changed the cue count.
func (m *Mixer) ClampCurrent() {
	m.Current = clamp(m.Current, 0, len(m.Cues))
}

// CurrentCue returns the cue under the playback pointer, or nil when the
// pointer is at the end of the stack.
func (m *Mixer) CurrentCue() *Cue {
	if m.Current >= 0 && m.Current < len(m.Cues) {
		return m.Cues[m.Current]
	}
	return nil
}

// Go executes the cue under the pointer and advances past it. At the end of
// the stack it does nothing. Go is a live action: it is never recorded for
// undo. Reports whether a cue was executed.
func (m *Mixer) Go() bool {
	if m.Current >= len(m.Cues) {
		return false
	}
	m.Cues[m.Current].Execute()
	m.Current++
	return true
}

// Back retreats the pointer by one without executing anything. Reports
// whether the pointer moved.
func (m *Mixer) Back() bool {
	if m.Current <= 0 {
		return false
	}
	m.Current--
	return true
}

// Reset moves the pointer back to the top of the cue stack.
func (m *Mixer) Reset() {
	m.Current = 0
}

// Status classifies the cue at index relative to the playback pointer.
func (m *Mixer) Status(index int) CueStatus {
	switch {
	case index < m.Current:
		return CueExecuted
	case index == m.Current:
		return CueCurrent
	default:
		return CuePending
	}
}

// Window returns the half-open index range [first, last) of cues that must
// be kept visible around the pointer: margin cues on either side, clamped to
// the stack.
func (m *Mixer) Window(margin int) (first, last int) {
	first = clamp(m.Current-margin, 0, len(m.Cues))
	last = clamp(m.Current+margin+1, 0, len(m.Cues))
	return first, last
}

func clamp(a, min, max int) int {
	if a < min {
		return min
	}
	if a > max {
		return max
	}
	return a
}

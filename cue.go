package pywave

type (
	// CueAction tells what a cue does to its sound when executed. The
	// integer values are part of the project file format.
	CueAction int

	// Cue is a single triggerable action: play or stop a sound, with a fade.
	// Sound is a non-owning reference into the project's sound list and may
	// be nil, in which case executing the cue does nothing.
	Cue struct {
		Name   string
		Action CueAction
		Sound  *Sound
		Fade   Duration
	}
)

const (
	CueNone CueAction = iota
	CuePlay
	CueStop
)

var cueActionNames = [...]string{"None", "Play", "Stop"}

func (a CueAction) String() string {
	if a < 0 || int(a) >= len(cueActionNames) {
		return "None"
	}
	return cueActionNames[a]
}

func NewCue(name string) *Cue {
	return &Cue{Name: name, Fade: Duration{Unit: Seconds}}
}

// Execute plays or stops the target sound, evaluating the fade against the
// sound's length so relative fades work. A cue without a sound is a no-op,
// not an error: the operator may well fire through half-built cue stacks.
func (c *Cue) Execute() {
	if c.Sound == nil {
		return
	}
	fade := int(c.Fade.Eval(c.Sound.LengthMs()))
	switch c.Action {
	case CuePlay:
		c.Sound.Play(fade)
	case CueStop:
		c.Sound.Stop(fade)
	}
}

package board

import (
	"fmt"

	"golang.org/x/exp/slices"

	pywave "github.com/BenjaminSchaaf/PyWave"
)

// AddCue appends a new cue to mixer as a reversible command.
func (m *Model) AddCue(mixer *pywave.Mixer) *pywave.Cue {
	cue := pywave.NewCue(fmt.Sprintf("Cue %d", len(mixer.Cues)+1))
	attach, detach := m.cueCommands(mixer, cue, len(mixer.Cues))
	m.log.Add(attach, detach)
	return cue
}

// RemoveCue removes cue from mixer. Undo restores the same cue instance at
// its old position.
func (m *Model) RemoveCue(mixer *pywave.Mixer, cue *pywave.Cue) {
	index := slices.Index(mixer.Cues, cue)
	if index < 0 {
		return
	}
	attach, detach := m.cueCommands(mixer, cue, index)
	m.log.Add(detach, attach)
}

// cueCommands builds the attach/detach pair shared by add and remove. Both
// directions reclamp the playback pointer: removing the last cue while the
// pointer sits past it must not leave the pointer out of range.
func (m *Model) cueCommands(mixer *pywave.Mixer, cue *pywave.Cue, index int) (attach, detach func()) {
	attach = func() {
		mixer.Cues = slices.Insert(mixer.Cues, index, cue)
		mixer.ClampCurrent()
		if m.editing == mixer {
			TrySend(m.broker.ToView, MsgToView{Kind: CueAdded, Mixer: mixer, Cue: cue})
		} else {
			m.notifyMixer(mixer)
		}
		m.notifySelection(mixer)
	}
	detach = func() {
		mixer.Cues = slices.Delete(mixer.Cues, index, index+1)
		mixer.ClampCurrent()
		if m.editing == mixer {
			TrySend(m.broker.ToView, MsgToView{Kind: CueRemoved, Mixer: mixer, Cue: cue})
		} else {
			m.notifyMixer(mixer)
		}
		m.notifySelection(mixer)
	}
	return attach, detach
}

func (m *Model) SetCueName(mixer *pywave.Mixer, cue *pywave.Cue, name string) {
	old := cue.Name
	if old == name {
		return
	}
	m.log.Add(func() {
		cue.Name = name
		m.notifyCue(mixer, cue)
	}, func() {
		cue.Name = old
		m.notifyCue(mixer, cue)
	})
}

func (m *Model) SetCueAction(mixer *pywave.Mixer, cue *pywave.Cue, action pywave.CueAction) {
	old := cue.Action
	if old == action {
		return
	}
	m.log.Add(func() {
		cue.Action = action
		m.notifyCue(mixer, cue)
	}, func() {
		cue.Action = old
		m.notifyCue(mixer, cue)
	})
}

// SetCueSound points cue at sound; nil clears the reference.
func (m *Model) SetCueSound(mixer *pywave.Mixer, cue *pywave.Cue, sound *pywave.Sound) {
	old := cue.Sound
	if old == sound {
		return
	}
	m.log.Add(func() {
		cue.Sound = sound
		m.notifyCue(mixer, cue)
	}, func() {
		cue.Sound = old
		m.notifyCue(mixer, cue)
	})
}

// SetCueFade parses value and sets it as the cue's fade time. A value that
// does not parse leaves the cue untouched and adds nothing to the log.
func (m *Model) SetCueFade(mixer *pywave.Mixer, cue *pywave.Cue, value string) error {
	fade, err := pywave.ParseDuration(value)
	if err != nil {
		return err
	}
	old := cue.Fade
	if old == fade {
		return nil
	}
	m.log.Add(func() {
		cue.Fade = fade
		m.notifyCue(mixer, cue)
	}, func() {
		cue.Fade = old
		m.notifyCue(mixer, cue)
	})
	return nil
}

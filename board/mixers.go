package board

import (
	"golang.org/x/exp/slices"

	pywave "github.com/BenjaminSchaaf/PyWave"
)

// AddMixer appends a new empty mixer to the project as a reversible command.
func (m *Model) AddMixer() *pywave.Mixer {
	mixer := pywave.NewMixer()
	attach, detach := m.mixerCommands(mixer, len(m.project.Mixers))
	m.log.Add(attach, detach)
	return mixer
}

// RemoveMixer removes mixer from the project. Undo restores it, cues and
// playback pointer intact, at its old position.
func (m *Model) RemoveMixer(mixer *pywave.Mixer) {
	index := m.project.MixerIndex(mixer)
	if index < 0 {
		return
	}
	attach, detach := m.mixerCommands(mixer, index)
	m.log.Add(detach, attach)
}

// mixerCommands builds the attach/detach pair shared by add and remove.
// Detaching the mixer open in the cue editor closes the editor; that close
// is part of the command, so redoing a remove closes it again.
func (m *Model) mixerCommands(mixer *pywave.Mixer, index int) (attach, detach func()) {
	attach = func() {
		m.project.Mixers = slices.Insert(m.project.Mixers, index, mixer)
		TrySend(m.broker.ToView, MsgToView{Kind: ProjectChanged})
	}
	detach = func() {
		m.project.Mixers = slices.Delete(m.project.Mixers, index, index+1)
		if m.editing == mixer {
			m.editing = nil
		}
		TrySend(m.broker.ToView, MsgToView{Kind: ProjectChanged})
	}
	return attach, detach
}

func (m *Model) SetMixerName(mixer *pywave.Mixer, name string) {
	old := mixer.Name
	if old == name {
		return
	}
	m.log.Add(func() {
		mixer.Name = name
		m.notifyMixer(mixer)
	}, func() {
		mixer.Name = old
		m.notifyMixer(mixer)
	})
}

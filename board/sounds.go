package board

import (
	"path/filepath"

	"golang.org/x/exp/slices"

	pywave "github.com/BenjaminSchaaf/PyWave"
)

// AddSound loads the clip at path and appends it to the project's sounds as
// a reversible command. The clip itself is loaded up front, outside the
// command, so undoing and redoing never touches the filesystem.
func (m *Model) AddSound(path string) (*pywave.Sound, error) {
	sound := &pywave.Sound{Name: filepath.Base(path), Path: path}
	if m.loader != nil {
		clip, err := m.loader.Load(path)
		if err != nil {
			return nil, err
		}
		clip.SetVolume(m.project.MasterVolume)
		sound.Clip = clip
	}
	attach, detach := m.soundCommands(sound, len(m.project.Sounds))
	m.log.Add(attach, detach)
	return sound, nil
}

// RemoveSound removes sound from the project, detaching it from every cue
// that references it. Undo re-inserts it and reattaches exactly the cues
// that referenced it at removal time.
func (m *Model) RemoveSound(sound *pywave.Sound) {
	index := m.project.SoundIndex(sound)
	if index < 0 {
		return
	}
	attach, detach := m.soundCommands(sound, index)
	m.log.Add(detach, attach)
}

// soundCommands builds the symmetric attach/detach pair shared by add and
// remove (whose do/undo are each other's mirror). The affected cue set is
// captured here, at command construction time, so the cascade acts on a
// fixed set of live cues no matter what happens to other cues in between.
func (m *Model) soundCommands(sound *pywave.Sound, index int) (attach, detach func()) {
	affected := m.project.CuesReferencing(sound)
	attach = func() {
		m.project.Sounds = slices.Insert(m.project.Sounds, index, sound)
		for _, cue := range affected {
			cue.Sound = sound
		}
		m.notifySounds()
	}
	detach = func() {
		m.project.Sounds = slices.Delete(m.project.Sounds, index, index+1)
		for _, cue := range affected {
			cue.Sound = nil
		}
		m.notifySounds()
	}
	return attach, detach
}

// SetSoundName renames a sound; open cue editors are told to refresh their
// sound choices.
func (m *Model) SetSoundName(sound *pywave.Sound, name string) {
	old := sound.Name
	if old == name {
		return
	}
	m.log.Add(func() {
		sound.Name = name
		m.notifySounds()
	}, func() {
		sound.Name = old
		m.notifySounds()
	})
}

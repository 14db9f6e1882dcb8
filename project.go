package pywave

import (
	"golang.org/x/exp/slices"
)

// Project aggregates the mixers, the sounds they draw from, and the master
// volume. It is the single owner of every entity in the tree; cue→sound
// references are non-owning back-references, so removing a sound must
// proactively detach it from every cue instead of relying on anything
// counting references.
type Project struct {
	Mixers       []*Mixer
	Sounds       []*Sound
	MasterVolume float64
}

func NewProject() *Project {
	return &Project{MasterVolume: 1}
}

// CuesReferencing returns every cue across every mixer whose target is
// sound, in mixer then cue order. Used to capture the affected set of a
// sound removal before it happens.
func (p *Project) CuesReferencing(sound *Sound) []*Cue {
	var affected []*Cue
	for _, mixer := range p.Mixers {
		for _, cue := range mixer.Cues {
			if cue.Sound == sound {
				affected = append(affected, cue)
			}
		}
	}
	return affected
}

// SoundIndex returns the current position of sound in the sound list, or -1
// if it is not present.
func (p *Project) SoundIndex(sound *Sound) int {
	return slices.Index(p.Sounds, sound)
}

// MixerIndex returns the current position of mixer, or -1 if not present.
func (p *Project) MixerIndex(mixer *Mixer) int {
	return slices.Index(p.Mixers, mixer)
}

// SetMasterVolume clamps volume to [0, 1], stores it and pushes it to every
// loaded clip.
func (p *Project) SetMasterVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	p.MasterVolume = volume
	for _, sound := range p.Sounds {
		sound.SetVolume(volume)
	}
}

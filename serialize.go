package pywave

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// fileNotice is prepended to every saved project file. It consists of YAML
// comments only, so parsers never see it.
const fileNotice = `##==================NOTICE==================##
# This is a auto-generated PyWave save file. #
# Editing this file is dangerous and might   #
# cause problems with PyWave.                #
# Unless you know what you're going, please  #
# DO NOT TOUCH THIS FILE!                    #
##==================NOTICE==================##

`

type (
	projectData struct {
		Mixers []mixerData `yaml:"mixers"`
		Sounds []soundData `yaml:"sounds"`
		Master masterData  `yaml:"master"`
	}

	mixerData struct {
		Name string    `yaml:"name"`
		Cues []cueData `yaml:"cues"`
	}

	// cueData.Sound is a positional index into the serialized sound list,
	// -1 meaning no sound. It is resolved into a direct reference once at
	// load time and recomputed from the live reference on save.
	cueData struct {
		Type  int    `yaml:"type"`
		Name  string `yaml:"name"`
		Sound int    `yaml:"sound"`
		Fade  string `yaml:"fade"`
	}

	soundData struct {
		Path string `yaml:"path"`
		Name string `yaml:"name"`
	}

	masterData struct {
		Volume float64 `yaml:"volume"`
	}
)

func (p *Project) serialize() projectData {
	var data projectData
	for _, mixer := range p.Mixers {
		md := mixerData{Name: mixer.Name}
		for _, cue := range mixer.Cues {
			soundIndex := -1
			if cue.Sound != nil {
				soundIndex = p.SoundIndex(cue.Sound)
			}
			md.Cues = append(md.Cues, cueData{
				Type:  int(cue.Action),
				Name:  cue.Name,
				Sound: soundIndex,
				Fade:  cue.Fade.String(),
			})
		}
		data.Mixers = append(data.Mixers, md)
	}
	for _, sound := range p.Sounds {
		data.Sounds = append(data.Sounds, soundData{Path: sound.Path, Name: sound.Name})
	}
	data.Master = masterData{Volume: p.MasterVolume}
	return data
}

// Marshal renders the project to its on-disk form, file notice included.
func (p *Project) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(p.serialize())
	if err != nil {
		return nil, err
	}
	return append([]byte(fileNotice), out...), nil
}

// UnmarshalProject parses a project file and resolves every serialized sound
// index into a direct reference. Clips are loaded through loader; a nil
// loader leaves all clips absent. The returned warnings describe recoverable
// problems: a cue whose sound index is out of range loads with no sound, and
// a sound whose file cannot be decoded loads without a clip. Only a
// malformed document fails the load as a whole.
func UnmarshalProject(b []byte, loader ClipLoader) (*Project, []string, error) {
	var data projectData
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, nil, fmt.Errorf("unmarshal project: %w", err)
	}
	project := NewProject()
	var warnings []string
	for _, sd := range data.Sounds {
		sound := &Sound{Name: sd.Name, Path: sd.Path}
		if loader != nil {
			clip, err := loader.Load(sd.Path)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("sound %q: %v", sd.Name, err))
			} else {
				sound.Clip = clip
			}
		}
		project.Sounds = append(project.Sounds, sound)
	}
	for _, md := range data.Mixers {
		mixer := NewMixer()
		mixer.Name = md.Name
		for _, cd := range md.Cues {
			cue := NewCue(cd.Name)
			cue.Action = CueAction(cd.Type)
			if cd.Sound >= 0 {
				if cd.Sound < len(project.Sounds) {
					cue.Sound = project.Sounds[cd.Sound]
				} else {
					warnings = append(warnings, fmt.Sprintf(
						"cue %q refers to missing sound %d; reference dropped", cd.Name, cd.Sound))
				}
			}
			if fade, err := ParseDuration(cd.Fade); err == nil {
				cue.Fade = fade
			} else {
				warnings = append(warnings, fmt.Sprintf("cue %q: %v; fade reset", cd.Name, err))
			}
			mixer.Cues = append(mixer.Cues, cue)
		}
		project.Mixers = append(project.Mixers, mixer)
	}
	project.SetMasterVolume(data.Master.Volume)
	return project, warnings, nil
}

// EqualsSerialized reports whether b parses into the same document this
// project would save. Both sides are normalized through the encoder, so the
// comparison is structural rather than byte-for-byte.
func (p *Project) EqualsSerialized(b []byte) bool {
	var data projectData
	if yaml.Unmarshal(b, &data) != nil {
		return false
	}
	theirs, err := yaml.Marshal(data)
	if err != nil {
		return false
	}
	ours, err := yaml.Marshal(p.serialize())
	if err != nil {
		return false
	}
	return bytes.Equal(ours, theirs)
}

package pywave

type (
	// Clip is the playable audio behind a Sound. Implementations live in the
	// audio subsystem; the data model only ever fires calls into it and never
	// waits for playback. Fades are given in milliseconds.
	Clip interface {
		Play(fadeMs int)
		Stop(fadeMs int)
		LengthMs() float64
		SetVolume(volume float64)
	}

	// ClipLoader decodes an audio file into a playable Clip. A nil loader is
	// allowed everywhere a loader is taken; sounds then simply have no clip.
	ClipLoader interface {
		Load(path string) (Clip, error)
	}

	// Sound is a named reference to a playable clip. The Clip may be nil,
	// e.g. when the project was loaded without an audio subsystem or the
	// source file has gone missing; all playback helpers are no-ops then.
	// The *Sound pointer is the stable handle cues refer to, independent of
	// the sound's position in the project's sound list.
	Sound struct {
		Name string
		Path string
		Clip Clip
	}
)

func (s *Sound) LengthMs() float64 {
	if s.Clip == nil {
		return 0
	}
	return s.Clip.LengthMs()
}

func (s *Sound) Play(fadeMs int) {
	if s.Clip != nil {
		s.Clip.Play(fadeMs)
	}
}

func (s *Sound) Stop(fadeMs int) {
	if s.Clip != nil {
		s.Clip.Stop(fadeMs)
	}
}

func (s *Sound) SetVolume(volume float64) {
	if s.Clip != nil {
		s.Clip.SetVolume(volume)
	}
}

package board

import (
	pywave "github.com/BenjaminSchaaf/PyWave"
)

type (
	// Broker carries messages from the model to whatever front end is
	// attached. The model never calls into a view directly; commands emit
	// domain events and the presentation layer decides how to react. The
	// channel is buffered and sends never block, so the model works fine
	// with no front end at all (e.g. in tests).
	Broker struct {
		ToView chan MsgToView
	}

	// MsgToView is a single model-to-view event. Mixer and Cue are set for
	// the kinds that concern one; they are live references into the model.
	MsgToView struct {
		Kind  ViewMessageKind
		Mixer *pywave.Mixer
		Cue   *pywave.Cue
	}

	ViewMessageKind int
)

const (
	// ProjectChanged: the whole project was replaced or reshaped; rebuild
	// everything.
	ProjectChanged ViewMessageKind = iota
	// MixerChanged: rebuild the views of a single mixer.
	MixerChanged
	// CueChanged: a field of Cue changed while its mixer is open in the cue
	// editor; patch that one row in place instead of rebuilding.
	CueChanged
	// CueAdded, CueRemoved: structural cue edits on the mixer open in the
	// editor; insert or drop that one editor row.
	CueAdded
	CueRemoved
	// SoundsChanged: the sound list changed; refresh sound choices.
	SoundsChanged
	// SelectionChanged: the playback pointer of Mixer moved; update the
	// current-cue highlight and scroll window.
	SelectionChanged
	// MasterChanged: the master volume changed.
	MasterChanged
)

func NewBroker() *Broker {
	return &Broker{ToView: make(chan MsgToView, 1024)}
}

// TrySend sends a value to a channel unless it is full. Guaranteed to be
// non-blocking; reports whether the value was sent.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

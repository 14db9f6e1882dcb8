package board

import (
	pywave "github.com/BenjaminSchaaf/PyWave"
)

type (
	// Action describes a user action that can be performed on the model,
	// initiated by calling the Do() method. Action advertises whether it is
	// enabled, so a front end can e.g. gray out buttons when the underlying
	// action is not allowed. The underlying Doer can optionally implement the
	// Enabler interface to decide if the action is enabled or not; if it does
	// not implement the Enabler interface, the action is always allowed.
	Action struct {
		doer Doer
	}

	// Doer is an interface that defines a single Do() method, which is
	// called when an action is performed.
	Doer interface {
		Do()
	}

	// Enabler is an interface that defines a single Enabled() method, used
	// to check if an Action is currently allowed.
	Enabler interface {
		Enabled() bool
	}
)

// Action methods

func MakeAction(doer Doer) Action {
	return Action{doer: doer}
}

func (a Action) Do() {
	e, ok := a.doer.(Enabler)
	if ok && !e.Enabled() {
		return
	}
	if a.doer != nil {
		a.doer.Do()
	}
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false // no doer, not allowed
	}
	e, ok := a.doer.(Enabler)
	if !ok {
		return true // not enabler, always allowed
	}
	return e.Enabled()
}

// undo
type undo Model

func (m *Model) Undo() Action { return MakeAction((*undo)(m)) }
func (m *undo) Enabled() bool { return m.log.CanUndo() }
func (m *undo) Do()           { m.log.Undo() }

// redo
type redo Model

func (m *Model) Redo() Action { return MakeAction((*redo)(m)) }
func (m *redo) Enabled() bool { return m.log.CanRedo() }
func (m *redo) Do()           { m.log.Redo() }

// addMixer
type addMixer Model

func (m *Model) AddMixerAction() Action { return MakeAction((*addMixer)(m)) }
func (m *addMixer) Do()                 { (*Model)(m).AddMixer() }

// goCue executes the current cue of a mixer and advances the pointer. Live
// playback control, not undoable.
type goCue struct {
	*Model
	mixer *pywave.Mixer
}

func (m *Model) Go(mixer *pywave.Mixer) Action { return MakeAction(goCue{m, mixer}) }
func (g goCue) Enabled() bool                  { return g.mixer.Current < len(g.mixer.Cues) }
func (g goCue) Do() {
	if g.mixer.Go() {
		g.notifySelection(g.mixer)
	}
}

// backCue moves the pointer back one cue without executing anything.
type backCue struct {
	*Model
	mixer *pywave.Mixer
}

func (m *Model) Back(mixer *pywave.Mixer) Action { return MakeAction(backCue{m, mixer}) }
func (b backCue) Enabled() bool                  { return b.mixer.Current > 0 }
func (b backCue) Do() {
	if b.mixer.Back() {
		b.notifySelection(b.mixer)
	}
}

// resetPointer rewinds the pointer to the first cue.
type resetPointer struct {
	*Model
	mixer *pywave.Mixer
}

func (m *Model) ResetPointer(mixer *pywave.Mixer) Action { return MakeAction(resetPointer{m, mixer}) }
func (r resetPointer) Enabled() bool                     { return r.mixer.Current > 0 }
func (r resetPointer) Do() {
	r.mixer.Reset()
	r.notifySelection(r.mixer)
}

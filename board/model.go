package board

import (
	pywave "github.com/BenjaminSchaaf/PyWave"
)

// Model implements the mutable state of the cue board for one operator
// session. It owns the open project, the project's command log (created
// with the model, reset whenever the project is swapped), the editing
// focus and the broker through which views learn about changes.
//
// The model is single-threaded by design: every operation runs to
// completion on the calling goroutine. The only concurrency in the program
// lives behind the Clip interface, where playback is fire-and-forget.
type Model struct {
	project  *pywave.Project
	log      CommandLog
	broker   *Broker
	loader   pywave.ClipLoader
	alerts   Alerts
	editing  *pywave.Mixer
	filePath string
}

func NewModel(broker *Broker, loader pywave.ClipLoader) *Model {
	return &Model{
		project: pywave.NewProject(),
		broker:  broker,
		loader:  loader,
	}
}

func (m *Model) Project() *pywave.Project { return m.project }
func (m *Model) Alerts() *Alerts          { return &m.alerts }
func (m *Model) FilePath() string         { return m.filePath }
func (m *Model) CanUndo() bool            { return m.log.CanUndo() }
func (m *Model) CanRedo() bool            { return m.log.CanRedo() }

// Editing returns the mixer currently open in the cue editor, or nil.
func (m *Model) Editing() *pywave.Mixer { return m.editing }

// EditMixer opens mixer in the cue editor. While a mixer is being edited,
// cue mutations on it are patched in place (CueChanged/CueAdded/CueRemoved)
// instead of rebuilding the whole mixer view.
func (m *Model) EditMixer(mixer *pywave.Mixer) {
	m.editing = mixer
	TrySend(m.broker.ToView, MsgToView{Kind: MixerChanged, Mixer: mixer})
}

// FinishEditing closes the cue editor; the edited mixer's view must be
// rebuilt since it changed behind its back.
func (m *Model) FinishEditing() {
	mixer := m.editing
	m.editing = nil
	if mixer != nil {
		TrySend(m.broker.ToView, MsgToView{Kind: MixerChanged, Mixer: mixer})
	}
}

// SelectCue moves the playback pointer directly onto the cue at index, as
// when the operator clicks a cue. Live navigation, not undoable.
func (m *Model) SelectCue(mixer *pywave.Mixer, index int) {
	mixer.Current = index
	mixer.ClampCurrent()
	m.notifySelection(mixer)
}

// SetMasterVolume changes the project master volume as a reversible
// command; the new level is pushed to every loaded clip on apply and the
// old one on revert.
func (m *Model) SetMasterVolume(volume float64) {
	old := m.project.MasterVolume
	if old == volume {
		return
	}
	m.log.Add(func() {
		m.project.SetMasterVolume(volume)
		TrySend(m.broker.ToView, MsgToView{Kind: MasterChanged})
	}, func() {
		m.project.SetMasterVolume(old)
		TrySend(m.broker.ToView, MsgToView{Kind: MasterChanged})
	})
}

// notifyCue routes a cue field change to the view along the dual path: a
// cue on the mixer open in the editor is patched in place, any other cue
// triggers a rebuild of its mixer.
func (m *Model) notifyCue(mixer *pywave.Mixer, cue *pywave.Cue) {
	if m.editing == mixer {
		TrySend(m.broker.ToView, MsgToView{Kind: CueChanged, Mixer: mixer, Cue: cue})
	} else {
		TrySend(m.broker.ToView, MsgToView{Kind: MixerChanged, Mixer: mixer})
	}
}

func (m *Model) notifyMixer(mixer *pywave.Mixer) {
	TrySend(m.broker.ToView, MsgToView{Kind: MixerChanged, Mixer: mixer})
}

func (m *Model) notifySounds() {
	TrySend(m.broker.ToView, MsgToView{Kind: SoundsChanged})
}

func (m *Model) notifySelection(mixer *pywave.Mixer) {
	TrySend(m.broker.ToView, MsgToView{Kind: SelectionChanged, Mixer: mixer})
}

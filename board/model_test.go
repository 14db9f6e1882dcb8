package board_test

import (
	"testing"

	pywave "github.com/BenjaminSchaaf/PyWave"
	"github.com/BenjaminSchaaf/PyWave/board"
)

type stubClip struct {
	lengthMs float64
	volume   float64
	playing  bool
}

func (c *stubClip) Play(fadeMs int)          { c.playing = true }
func (c *stubClip) Stop(fadeMs int)          { c.playing = false }
func (c *stubClip) LengthMs() float64        { return c.lengthMs }
func (c *stubClip) SetVolume(volume float64) { c.volume = volume }

type stubLoader struct{}

func (stubLoader) Load(path string) (pywave.Clip, error) {
	return &stubClip{lengthMs: 1000, volume: 1}, nil
}

func newTestModel(t *testing.T) (*board.Model, *board.Broker) {
	t.Helper()
	broker := board.NewBroker()
	return board.NewModel(broker, stubLoader{}), broker
}

func drain(broker *board.Broker) []board.MsgToView {
	var msgs []board.MsgToView
	for {
		select {
		case msg := <-broker.ToView:
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}

func TestRemoveSoundCascade(t *testing.T) {
	m, _ := newTestModel(t)
	sound, err := m.AddSound("sounds/rain.wav")
	if err != nil {
		t.Fatalf("AddSound error: %v", err)
	}
	mx1 := m.AddMixer()
	mx2 := m.AddMixer()
	cue1 := m.AddCue(mx1)
	cue2 := m.AddCue(mx2)
	other := m.AddCue(mx2)
	m.SetCueSound(mx1, cue1, sound)
	m.SetCueSound(mx2, cue2, sound)

	m.RemoveSound(sound)
	if len(m.Project().Sounds) != 0 {
		t.Fatal("sound should be removed from the project")
	}
	if cue1.Sound != nil || cue2.Sound != nil {
		t.Error("removing a sound should detach it from every referencing cue")
	}
	if other.Sound != nil {
		t.Error("unrelated cues must stay untouched")
	}

	m.Undo().Do()
	if len(m.Project().Sounds) != 1 || m.Project().Sounds[0] != sound {
		t.Fatal("undo should restore the same sound instance at its old position")
	}
	if cue1.Sound != sound || cue2.Sound != sound {
		t.Error("undo should reattach exactly the cues that referenced the sound")
	}

	m.Redo().Do()
	if cue1.Sound != nil || cue2.Sound != nil || len(m.Project().Sounds) != 0 {
		t.Error("redo should detach again")
	}
}

func TestAddSoundUsesMasterVolume(t *testing.T) {
	m, _ := newTestModel(t)
	m.SetMasterVolume(0.5)
	sound, err := m.AddSound("sounds/rain.wav")
	if err != nil {
		t.Fatalf("AddSound error: %v", err)
	}
	if sound.Clip.(*stubClip).volume != 0.5 {
		t.Errorf("clip volume = %v, expected 0.5", sound.Clip.(*stubClip).volume)
	}
}

func TestRemoveCueClampsPointer(t *testing.T) {
	m, _ := newTestModel(t)
	mx := m.AddMixer()
	m.AddCue(mx)
	last := m.AddCue(mx)
	mx.Go()
	mx.Go()
	if mx.Current != 2 {
		t.Fatalf("Current = %d, expected 2", mx.Current)
	}
	m.RemoveCue(mx, last)
	if mx.Current != 1 {
		t.Errorf("Current = %d after removing the last cue, expected 1", mx.Current)
	}
	m.Undo().Do()
	if len(mx.Cues) != 2 || mx.Cues[1] != last {
		t.Error("undo should restore the same cue instance at its old position")
	}
}

func TestSetCueFadeRejectsGarbage(t *testing.T) {
	m, _ := newTestModel(t)
	mx := m.AddMixer()
	cue := m.AddCue(mx)
	if err := m.SetCueFade(mx, cue, "2s"); err != nil {
		t.Fatalf("SetCueFade(2s) error: %v", err)
	}
	canUndo := m.CanUndo()
	if err := m.SetCueFade(mx, cue, "wibble"); err == nil {
		t.Fatal("SetCueFade(wibble) should return an error")
	}
	if cue.Fade != (pywave.Duration{Number: 2, Unit: pywave.Seconds}) {
		t.Errorf("fade = %v, a failed parse should keep the previous value", cue.Fade)
	}
	if m.CanUndo() != canUndo {
		t.Error("a failed parse should not add a command")
	}
}

func TestCueChangeNotificationPaths(t *testing.T) {
	m, broker := newTestModel(t)
	mx := m.AddMixer()
	cue := m.AddCue(mx)
	drain(broker)

	// mixer not open in the editor: rebuild the whole mixer
	m.SetCueName(mx, cue, "lights up")
	msgs := drain(broker)
	if len(msgs) != 1 || msgs[0].Kind != board.MixerChanged || msgs[0].Mixer != mx {
		t.Errorf("msgs = %v, expected one MixerChanged for the mixer", msgs)
	}

	// mixer open in the editor: patch the one cue in place
	m.EditMixer(mx)
	drain(broker)
	m.SetCueName(mx, cue, "lights down")
	msgs = drain(broker)
	if len(msgs) != 1 || msgs[0].Kind != board.CueChanged || msgs[0].Cue != cue {
		t.Errorf("msgs = %v, expected one CueChanged for the cue", msgs)
	}

	// undo re-emits along the path valid at undo time
	m.FinishEditing()
	drain(broker)
	m.Undo().Do()
	msgs = drain(broker)
	if len(msgs) != 1 || msgs[0].Kind != board.MixerChanged {
		t.Errorf("msgs = %v, expected one MixerChanged after undo", msgs)
	}
}

func TestStructuralCueEventsInEditor(t *testing.T) {
	m, broker := newTestModel(t)
	mx := m.AddMixer()
	m.EditMixer(mx)
	drain(broker)

	cue := m.AddCue(mx)
	msgs := drain(broker)
	if len(msgs) < 1 || msgs[0].Kind != board.CueAdded || msgs[0].Cue != cue {
		t.Errorf("msgs = %v, expected CueAdded first", msgs)
	}

	m.RemoveCue(mx, cue)
	msgs = drain(broker)
	if len(msgs) < 1 || msgs[0].Kind != board.CueRemoved || msgs[0].Cue != cue {
		t.Errorf("msgs = %v, expected CueRemoved first", msgs)
	}
}

func TestRemoveMixerClosesEditor(t *testing.T) {
	m, _ := newTestModel(t)
	mx := m.AddMixer()
	m.EditMixer(mx)
	m.RemoveMixer(mx)
	if m.Editing() != nil {
		t.Error("removing the edited mixer should close the editor")
	}
	m.Undo().Do()
	if m.Project().MixerIndex(mx) != 0 {
		t.Error("undo should restore the mixer")
	}
	if m.Editing() != nil {
		t.Error("undo does not reopen the editor")
	}
}

func TestMasterVolumeUndo(t *testing.T) {
	m, _ := newTestModel(t)
	sound, err := m.AddSound("sounds/rain.wav")
	if err != nil {
		t.Fatalf("AddSound error: %v", err)
	}
	m.SetMasterVolume(0.3)
	if m.Project().MasterVolume != 0.3 {
		t.Fatalf("MasterVolume = %v, expected 0.3", m.Project().MasterVolume)
	}
	if sound.Clip.(*stubClip).volume != 0.3 {
		t.Errorf("clip volume = %v, expected 0.3", sound.Clip.(*stubClip).volume)
	}
	m.Undo().Do()
	if m.Project().MasterVolume != 1 {
		t.Errorf("MasterVolume = %v after undo, expected 1", m.Project().MasterVolume)
	}
	if sound.Clip.(*stubClip).volume != 1 {
		t.Errorf("clip volume = %v after undo, expected 1", sound.Clip.(*stubClip).volume)
	}
}

func TestActionEnabled(t *testing.T) {
	m, _ := newTestModel(t)
	if m.Undo().Enabled() || m.Redo().Enabled() {
		t.Error("a fresh model has nothing to undo or redo")
	}
	mx := m.AddMixer()
	if !m.Undo().Enabled() {
		t.Error("Undo should be enabled after a command")
	}
	if m.Go(mx).Enabled() {
		t.Error("Go on an empty mixer should be disabled")
	}
	if m.Back(mx).Enabled() || m.ResetPointer(mx).Enabled() {
		t.Error("Back and Reset at the top of the stack should be disabled")
	}
	m.AddCue(mx)
	if !m.Go(mx).Enabled() {
		t.Error("Go should be enabled with a pending cue")
	}
	m.Go(mx).Do()
	if m.Go(mx).Enabled() {
		t.Error("Go at the end of the stack should be disabled")
	}
	if !m.Back(mx).Enabled() || !m.ResetPointer(mx).Enabled() {
		t.Error("Back and Reset should be enabled after a Go")
	}
}

func TestSelectCueClamps(t *testing.T) {
	m, _ := newTestModel(t)
	mx := m.AddMixer()
	m.AddCue(mx)
	m.AddCue(mx)
	canUndo := m.CanUndo()
	m.SelectCue(mx, 7)
	if mx.Current != 2 {
		t.Errorf("Current = %d, expected 2", mx.Current)
	}
	m.SelectCue(mx, 1)
	if mx.Current != 1 {
		t.Errorf("Current = %d, expected 1", mx.Current)
	}
	if m.CanUndo() != canUndo {
		t.Error("pointer moves are live, not commands")
	}
}

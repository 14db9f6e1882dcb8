package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	pywave "github.com/BenjaminSchaaf/PyWave"
	"github.com/BenjaminSchaaf/PyWave/audio"
	"github.com/BenjaminSchaaf/PyWave/board"
)

func main() {
	preferences := board.MakePreferences()
	if preferences.YmlError != nil {
		fmt.Fprintf(os.Stderr, "preferences.yml failed to load: %v\n", preferences.YmlError)
	}
	var loader pywave.ClipLoader
	if l, err := audio.NewLoader(); err != nil {
		fmt.Fprintf(os.Stderr, "audio unavailable, sounds will not play: %v\n", err)
	} else {
		loader = l
	}
	broker := board.NewBroker()
	model := board.NewModel(broker, loader)

	path := preferences.LastProject
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path != "" {
		model.OpenProject(path)
	}

	rl, err := readline.New("pywave> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	c := &console{model: model, broker: broker, out: rl.Stdout()}
	c.drain()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if !c.dispatch(strings.Fields(line)) {
			break
		}
		c.drain()
	}

	preferences.LastProject = model.FilePath()
	if err := preferences.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to save preferences: %v\n", err)
	}
}

// console drives the model from a line-based prompt. The editing focus of
// the model doubles as the selected mixer: cue commands and playback act on
// the mixer opened with "edit".
type console struct {
	model      *board.Model
	broker     *board.Broker
	out        io.Writer
	quitWarned bool
}

// dispatch runs one command line; reports false when the program should
// exit.
func (c *console) dispatch(args []string) bool {
	if len(args) == 0 {
		return true
	}
	verb, args := args[0], args[1:]
	switch verb {
	case "help":
		c.help()
	case "mixers":
		c.listMixers()
	case "sounds":
		c.listSounds()
	case "cues":
		c.listCues()
	case "edit":
		if mx := c.mixerArg(args, 0); mx != nil {
			c.model.EditMixer(mx)
			c.listCues()
		}
	case "done":
		c.model.FinishEditing()
	case "addmixer":
		c.model.AddMixer()
		c.listMixers()
	case "rmmixer":
		if mx := c.mixerArg(args, 0); mx != nil {
			c.model.RemoveMixer(mx)
		}
	case "addsound":
		if len(args) < 1 {
			c.errorf("usage: addsound <path>")
			break
		}
		if _, err := c.model.AddSound(args[0]); err != nil {
			c.errorf("failed to load sound: %v", err)
		}
	case "rmsound":
		if s := c.soundArg(args, 0); s != nil {
			c.model.RemoveSound(s)
		}
	case "addcue":
		if mx := c.editedMixer(); mx != nil {
			c.model.AddCue(mx)
			c.listCues()
		}
	case "rmcue":
		if mx, cue := c.cueArg(args, 0); cue != nil {
			c.model.RemoveCue(mx, cue)
		}
	case "name":
		if len(args) < 2 {
			c.errorf("usage: name <cue#> <name>")
			break
		}
		if mx, cue := c.cueArg(args, 0); cue != nil {
			c.model.SetCueName(mx, cue, strings.Join(args[1:], " "))
		}
	case "action":
		c.setAction(args)
	case "sound":
		c.setSound(args)
	case "fade":
		if len(args) < 2 {
			c.errorf("usage: fade <cue#> <duration, e.g. 500ms, 2s, 50%%>")
			break
		}
		if mx, cue := c.cueArg(args, 0); cue != nil {
			if err := c.model.SetCueFade(mx, cue, args[1]); err != nil {
				c.errorf("%v", err)
			}
		}
	case "volume":
		if len(args) < 1 {
			c.errorf("usage: volume <0..1>")
			break
		}
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			c.errorf("not a number: %v", args[0])
			break
		}
		c.model.SetMasterVolume(v)
	case "go":
		if mx := c.editedMixer(); mx != nil {
			c.model.Go(mx).Do()
			c.listCues()
		}
	case "back":
		if mx := c.editedMixer(); mx != nil {
			c.model.Back(mx).Do()
			c.listCues()
		}
	case "reset":
		if mx := c.editedMixer(); mx != nil {
			c.model.ResetPointer(mx).Do()
			c.listCues()
		}
	case "undo":
		c.model.Undo().Do()
	case "redo":
		c.model.Redo().Do()
	case "save":
		if !c.model.SaveProject() {
			c.errorf("no project file yet, use: saveas <path>")
		}
	case "saveas":
		if len(args) < 1 {
			c.errorf("usage: saveas <path>")
			break
		}
		c.model.SaveProjectAs(args[0])
	case "open":
		if len(args) < 1 {
			c.errorf("usage: open <path>")
			break
		}
		c.model.OpenProject(args[0])
	case "new":
		c.model.NewProject()
	case "quit", "exit":
		if c.model.ChangedSinceSave() && !c.quitWarned {
			c.quitWarned = true
			fmt.Fprintln(c.out, "unsaved changes; quit again to discard them")
			return true
		}
		return false
	default:
		c.errorf("unknown command %q, try: help", verb)
	}
	return true
}

func (c *console) help() {
	fmt.Fprint(c.out, `project   new | open <path> | save | saveas <path>
mixers    mixers | addmixer | rmmixer <#> | edit <#> | done
sounds    sounds | addsound <path> | rmsound <#>
cues      cues | addcue | rmcue <#> | name <#> <name> | action <#> none|play|stop
          sound <#> <sound#|-> | fade <#> <duration>
playback  go | back | reset | volume <0..1>
history   undo | redo
`)
}

func (c *console) listMixers() {
	for i, mx := range c.model.Project().Mixers {
		fmt.Fprintf(c.out, "%d: %s (%d cues)\n", i, mx.Name, len(mx.Cues))
	}
}

func (c *console) listSounds() {
	for i, s := range c.model.Project().Sounds {
		fmt.Fprintf(c.out, "%d: %s (%s)\n", i, s.Name, s.Path)
	}
}

// listCues prints the cue stack of the edited mixer, scrolled so the
// playback pointer stays visible with cues of margin around it.
func (c *console) listCues() {
	mx := c.editedMixer()
	if mx == nil {
		return
	}
	first, last := mx.Window(pywave.WindowMargin)
	if first > 0 {
		fmt.Fprintf(c.out, "  ... %d more\n", first)
	}
	for i := first; i < last; i++ {
		cue := mx.Cues[i]
		mark := ' '
		switch mx.Status(i) {
		case pywave.CueExecuted:
			mark = 'x'
		case pywave.CueCurrent:
			mark = '>'
		}
		sound := "-"
		if cue.Sound != nil {
			sound = cue.Sound.Name
		}
		fmt.Fprintf(c.out, "%c %d: %s [%s %s fade %s]\n", mark, i, cue.Name, cue.Action, sound, cue.Fade)
	}
	if last < len(mx.Cues) {
		fmt.Fprintf(c.out, "  ... %d more\n", len(mx.Cues)-last)
	}
}

func (c *console) setAction(args []string) {
	if len(args) < 2 {
		c.errorf("usage: action <cue#> none|play|stop")
		return
	}
	mx, cue := c.cueArg(args, 0)
	if cue == nil {
		return
	}
	var action pywave.CueAction
	switch args[1] {
	case "none":
		action = pywave.CueNone
	case "play":
		action = pywave.CuePlay
	case "stop":
		action = pywave.CueStop
	default:
		c.errorf("unknown action %q", args[1])
		return
	}
	c.model.SetCueAction(mx, cue, action)
}

func (c *console) setSound(args []string) {
	if len(args) < 2 {
		c.errorf("usage: sound <cue#> <sound#|->")
		return
	}
	mx, cue := c.cueArg(args, 0)
	if cue == nil {
		return
	}
	if args[1] == "-" {
		c.model.SetCueSound(mx, cue, nil)
		return
	}
	if s := c.soundArg(args, 1); s != nil {
		c.model.SetCueSound(mx, cue, s)
	}
}

func (c *console) editedMixer() *pywave.Mixer {
	mx := c.model.Editing()
	if mx == nil {
		c.errorf("no mixer selected, use: edit <#>")
	}
	return mx
}

func (c *console) mixerArg(args []string, i int) *pywave.Mixer {
	mixers := c.model.Project().Mixers
	if n, ok := c.indexArg(args, i, len(mixers), "mixer"); ok {
		return mixers[n]
	}
	return nil
}

func (c *console) soundArg(args []string, i int) *pywave.Sound {
	sounds := c.model.Project().Sounds
	if n, ok := c.indexArg(args, i, len(sounds), "sound"); ok {
		return sounds[n]
	}
	return nil
}

func (c *console) cueArg(args []string, i int) (*pywave.Mixer, *pywave.Cue) {
	mx := c.editedMixer()
	if mx == nil {
		return nil, nil
	}
	if n, ok := c.indexArg(args, i, len(mx.Cues), "cue"); ok {
		return mx, mx.Cues[n]
	}
	return nil, nil
}

func (c *console) indexArg(args []string, i, count int, what string) (int, bool) {
	if i >= len(args) {
		c.errorf("missing %s number", what)
		return 0, false
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n < 0 || n >= count {
		c.errorf("no such %s: %v", what, args[i])
		return 0, false
	}
	return n, true
}

func (c *console) errorf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// drain prints pending alerts and discards view events; the prompt reprints
// state on demand instead of reacting to each event.
func (c *console) drain() {
	for {
		select {
		case <-c.broker.ToView:
			continue
		default:
		}
		break
	}
	for {
		alert, ok := c.model.Alerts().Pop()
		if !ok {
			break
		}
		switch alert.Priority {
		case board.Error:
			fmt.Fprintf(c.out, "error: %s\n", alert.Message)
		case board.Warning:
			fmt.Fprintf(c.out, "warning: %s\n", alert.Message)
		default:
			fmt.Fprintln(c.out, alert.Message)
		}
	}
}

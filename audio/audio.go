// Package audio implements sound playback on top of the beep library. It
// decodes wav files into memory buffers and plays them through the speaker
// with linear fade in and fade out.
package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	pywave "github.com/BenjaminSchaaf/PyWave"
)

const sampleRate = beep.SampleRate(44100)

// Loader loads wav files into playable clips. NewLoader initializes the
// speaker, so construct at most one per process.
type Loader struct{}

func NewLoader() (*Loader, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	return &Loader{}, nil
}

// Load decodes the wav file at path fully into memory, resampling to the
// speaker's rate. Cue boards trigger sounds on a keypress; decoding ahead
// of time keeps playback start instant.
func (l *Loader) Load(path string) (pywave.Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode %v: %w", path, err)
	}
	buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buffer.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	if err := streamer.Close(); err != nil {
		return nil, err
	}
	return &clip{buffer: buffer, volume: 1}, nil
}

// clip is one loaded sound. At most one playback of a clip is active at a
// time: playing again replaces the active playback. All mutable fields are
// accessed under the speaker lock.
type clip struct {
	buffer *beep.Buffer
	volume float64
	active *fader
}

func (c *clip) LengthMs() float64 {
	return float64(sampleRate.D(c.buffer.Len())) / float64(time.Millisecond)
}

func (c *clip) Play(fadeMs int) {
	f := &fader{
		clip:     c,
		streamer: c.buffer.Streamer(0, c.buffer.Len()),
		gain:     1,
	}
	if fadeMs > 0 {
		f.gain = 0
		f.rampTo(1, sampleRate.N(time.Duration(fadeMs)*time.Millisecond))
	}
	speaker.Lock()
	if c.active != nil {
		c.active.stop(0)
	}
	c.active = f
	speaker.Unlock()
	// speaker.Play takes the lock itself
	speaker.Play(f)
}

func (c *clip) Stop(fadeMs int) {
	speaker.Lock()
	if c.active != nil {
		c.active.stop(sampleRate.N(time.Duration(fadeMs) * time.Millisecond))
	}
	speaker.Unlock()
}

func (c *clip) SetVolume(volume float64) {
	speaker.Lock()
	c.volume = volume
	speaker.Unlock()
}

// fader wraps one playback of a clip, scaling samples by the clip volume
// and a linear ramp. The ramp fades in at start and out on stop; when a
// fade out completes the playback ends even if samples remain.
type fader struct {
	clip     *clip
	streamer beep.StreamSeeker
	gain     float64
	target   float64
	step     float64
	stopping bool
	done     bool
}

// rampTo starts a linear ramp from the current gain to target over n
// samples. Called only from the speaker goroutine or under the speaker
// lock.
func (f *fader) rampTo(target float64, n int) {
	f.target = target
	if n <= 0 {
		f.gain = target
		f.step = 0
		return
	}
	f.step = (target - f.gain) / float64(n)
}

// stop begins a fade out over n samples; zero cuts immediately.
func (f *fader) stop(n int) {
	f.stopping = true
	f.rampTo(0, n)
}

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	if f.done {
		return 0, false
	}
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if f.step != 0 {
			f.gain += f.step
			if (f.step > 0 && f.gain >= f.target) || (f.step < 0 && f.gain <= f.target) {
				f.gain = f.target
				f.step = 0
			}
		}
		v := f.gain * f.clip.volume
		samples[i][0] *= v
		samples[i][1] *= v
	}
	if f.stopping && f.step == 0 && f.gain == 0 {
		// finished fading out; report drained on the next call
		f.done = true
	}
	if !ok || f.done {
		f.done = true
		if f.clip.active == f {
			f.clip.active = nil
		}
	}
	if n == 0 {
		return 0, false
	}
	return n, true
}

func (f *fader) Err() error { return nil }

package term

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"gridsnake/snake"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays short tones for game events. It stays silent until Init
// succeeds, so a machine without audio still plays.
type Sound struct {
	ready bool
	play  func(s ...beep.Streamer)
}

// NewSound returns a silent Sound
func NewSound() *Sound {
	return &Sound{}
}

// Init opens the speaker with a 100ms buffer
func (s *Sound) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.ready = true
	s.play = speaker.Play
	return nil
}

// Close releases the speaker if it was opened
func (s *Sound) Close() {
	if s.ready {
		speaker.Close()
		s.ready = false
	}
}

// OnEvent is a snake event hook
func (s *Sound) OnEvent(ev snake.Event) {
	if !s.ready {
		return
	}
	if t := Tone(ev.Kind); t != nil {
		s.play(t)
	}
}

// Tone returns the streamer for an event kind, nil when the event is silent
func Tone(kind snake.EventKind) beep.Streamer {
	switch kind {
	case snake.EventAte:
		return tone(880, 50*time.Millisecond)
	case snake.EventFailed:
		return beep.Seq(tone(220, 120*time.Millisecond), tone(165, 200*time.Millisecond))
	}
	return nil
}

func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}

package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	hitFreq      = 880.0
	hitDuration  = 50 * time.Millisecond
	roundNote1   = 987.77
	roundNote2   = 1318.51
	roundNoteLen = 90 * time.Millisecond
)

// Player plays the game's sound effects. Until Init succeeds every Play call is a no-op,
// so the game runs silently on machines without an audio device.
type Player struct {
	mu     sync.Mutex
	volume float64
	ready  bool
	muted  bool
}

// New returns a Player at the given volume in [0, 1].
func New(volume float64) *Player {
	return &Player{volume: volume}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.ready = true
	return nil
}

// SetMuted silences or restores playback.
func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	p.muted = m
	p.mu.Unlock()
}

// Close releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}

// PlayHit plays the short brick-hit blip.
func (p *Player) PlayHit() { p.play(HitSound(sampleRate, p.volume)) }

// PlayRound plays the two-note round-complete chime.
func (p *Player) PlayRound() { p.play(RoundSound(sampleRate, p.volume)) }

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	ok := p.ready && !p.muted
	p.mu.Unlock()
	if ok && s != nil {
		speaker.Play(s)
	}
}

// HitSound is a 50ms 880Hz sine blip.
func HitSound(rate beep.SampleRate, volume float64) beep.Streamer {
	return tone(rate, hitFreq, hitDuration, volume)
}

// RoundSound is two rising notes.
func RoundSound(rate beep.SampleRate, volume float64) beep.Streamer {
	n1 := tone(rate, roundNote1, roundNoteLen, volume)
	n2 := tone(rate, roundNote2, roundNoteLen, volume)
	if n1 == nil || n2 == nil {
		return nil
	}
	return beep.Seq(n1, n2)
}

func tone(rate beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil
	}
	return withVolume(beep.Take(rate.N(d), sine), volume)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

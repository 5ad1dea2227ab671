// Package audio turns game events into short synthesized sound effects.
// Nothing here feeds back into the simulation.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Sound identifies one of the effects.
type Sound int

const (
	SoundFlap Sound = iota
	SoundScore
	SoundDeath
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundFlap:
		return "flap"
	case SoundScore:
		return "score"
	case SoundDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Effect timing
const (
	flapDuration  = 90 * time.Millisecond
	scoreNote     = 70 * time.Millisecond
	deathDuration = 450 * time.Millisecond
	attack        = 5 * time.Millisecond
)

// sweep is a sine oscillator whose frequency glides linearly from one
// value to another over a fixed number of samples.
type sweep struct {
	from, to float64
	phase    float64
	pos      int
	length   int
	rate     beep.SampleRate
}

// NewSweep creates a sine glide from one frequency to another.
func NewSweep(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, length: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.length {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.length)
		freq := s.from + (s.to-s.from)*progress

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// buzz is a decaying square wave with a little noise mixed in.
type buzz struct {
	freq   float64
	phase  float64
	pos    int
	length int
	rate   beep.SampleRate
	seed   uint32
}

// NewBuzz creates a harsh decaying tone.
func NewBuzz(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &buzz{freq: freq, length: rate.N(d), rate: rate, seed: 1}
}

func (b *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.length {
			return i, i > 0
		}
		t := float64(b.pos) / float64(b.rate)
		env := math.Exp(-t * 6)

		square := 1.0
		if b.phase >= 0.5 {
			square = -1.0
		}
		// xorshift keeps the noise deterministic for tests
		b.seed ^= b.seed << 13
		b.seed ^= b.seed >> 17
		b.seed ^= b.seed << 5
		noise := float64(b.seed)/float64(math.MaxUint32)*2 - 1

		val := env * (0.7*square + 0.3*noise)
		samples[i][0] = val
		samples[i][1] = val

		b.phase += b.freq / float64(b.rate)
		b.phase -= math.Floor(b.phase)
		b.pos++
	}
	return len(samples), true
}

func (b *buzz) Err() error { return nil }

// fade applies a linear attack and a linear release to a finite stream.
type fade struct {
	streamer beep.Streamer
	pos      int
	attack   int
	total    int
}

// NewFade shapes s, which must last d, so it neither clicks in nor out.
func NewFade(s beep.Streamer, d, attackTime time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, attack: rate.N(attackTime), total: rate.N(d)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.pos < f.attack {
			vol = float64(f.pos) / float64(f.attack)
		} else if f.total > f.attack {
			vol = float64(f.total-f.pos) / float64(f.total-f.attack)
		}
		vol = math.Max(0, math.Min(1, vol))
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// volume scales a stream linearly; 0 silences it.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// NewEffect builds the streamer for a sound at the given linear volume.
// Returns nil for unknown sounds.
func NewEffect(s Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	switch s {
	case SoundFlap:
		chirp := NewFade(NewSweep(420, 880, flapDuration, rate), flapDuration, attack, rate)
		return volume(chirp, 0.35*vol)
	case SoundScore:
		// Two rising notes, E6 then A6
		first := NewFade(NewSweep(1318.5, 1318.5, scoreNote, rate), scoreNote, attack, rate)
		second := NewFade(NewSweep(1760, 1760, 2*scoreNote, rate), 2*scoreNote, attack, rate)
		return volume(beep.Seq(first, second), 0.3*vol)
	case SoundDeath:
		return volume(NewBuzz(110, deathDuration, rate), 0.4*vol)
	default:
		return nil
	}
}

package audio

import (
	"log"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gordonklaus/portaudio"
	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

const (
	SampleRate = 44100
	BufferSize = 512

	// MaxVoices bounds polyphony; the oldest voice is dropped first.
	MaxVoices = 8

	DefaultMinSpeed = 60.0
	fullSpeed       = 1500.0
	decayTime       = 0.25
	silence         = 1e-4
)

// Pitch per surface: floor G3, side walls D4, ceiling G4. Order decides
// which tones survive when a corner hit overflows MaxVoices.
var pitches = []struct {
	contact physics.Contact
	freq    float64
}{
	{physics.ContactFloor, 196.00},
	{physics.ContactLeft, 293.66},
	{physics.ContactRight, 293.66},
	{physics.ContactCeiling, 392.00},
}

type voice struct {
	freq  float64
	amp   float64
	phase float64
	age   float64
}

// Processor turns wall impacts into short decaying tones. Trigger and
// OnFrame may be called from the frame loop while ProcessAudio runs on
// the portaudio callback thread.
type Processor struct {
	Stream   *portaudio.Stream
	MinSpeed float64

	mu      sync.Mutex
	pending []voice

	// callback-owned
	voices      []voice
	filterState [2]float64
	delayLine   [2][]float64
	delayHead   int
	sounding    atomic.Int32

	Active bool
}

func NewProcessor() *Processor {
	// 0.15 second slap-back echo
	delayLen := int(float64(SampleRate) * 0.15)

	return &Processor{
		MinSpeed:  DefaultMinSpeed,
		voices:    make([]voice, 0, MaxVoices),
		delayLine: [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
	}
}

func (a *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		log.Printf("audio: init failed: %v", err)
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.ProcessAudio)
	if err != nil {
		log.Printf("audio: open stream failed: %v", err)
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		log.Printf("audio: start stream failed: %v", err)
		stream.Close()
		portaudio.Terminate()
		return err
	}

	log.Println("audio: output started")

	a.Stream = stream
	a.Active = true
	return nil
}

func (a *Processor) Stop() {
	if !a.Active {
		return
	}
	if a.Stream != nil {
		a.Stream.Stop()
		a.Stream.Close()
	}
	portaudio.Terminate()
	a.Active = false
}

// OnFrame makes Processor a sim.Observer.
func (a *Processor) OnFrame(f sim.Frame) {
	a.Trigger(f.Impact)
}

// Trigger queues one tone per touched surface. Impacts slower than
// MinSpeed, such as a ball resting on the floor, are silent.
func (a *Processor) Trigger(imp physics.Impact) {
	if imp.Contact == 0 || imp.Speed < a.MinSpeed {
		return
	}
	amp := 0.8 * math.Min(imp.Speed/fullSpeed, 1)

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, p := range pitches {
		if imp.Contact.Has(p.contact) {
			a.pending = append(a.pending, voice{freq: p.freq, amp: amp})
		}
	}
	if len(a.pending) > MaxVoices {
		a.pending = a.pending[len(a.pending)-MaxVoices:]
	}
}

// Voices reports how many tones were sounding after the last buffer.
func (a *Processor) Voices() int { return int(a.sounding.Load()) }

// Triangle Wave: Smooth, flute-like, no harsh buzz
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// Low Pass Filter (One Pole)
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

// ProcessAudio fills a stereo buffer. It is the portaudio callback and
// can be driven directly in tests.
func (a *Processor) ProcessAudio(out [][]float32) {
	a.mu.Lock()
	a.voices = append(a.voices, a.pending...)
	a.pending = a.pending[:0]
	a.mu.Unlock()
	if len(a.voices) > MaxVoices {
		a.voices = a.voices[len(a.voices)-MaxVoices:]
	}

	dt := 1.0 / float64(SampleRate)
	const cutoff = 2400.0

	for i := 0; i < len(out[0]); i++ {
		sample := 0.0
		for j := range a.voices {
			v := &a.voices[j]
			env := v.amp * math.Exp(-v.age/decayTime)
			sample += triangle(v.phase) * env
			v.phase += v.freq * dt
			v.age += dt
		}

		var outL, outR float64
		outL, a.filterState[0] = lpf(sample, cutoff, dt, a.filterState[0])
		outR, a.filterState[1] = lpf(sample, cutoff, dt, a.filterState[1])

		delayL := a.delayLine[0][a.delayHead]
		delayR := a.delayLine[1][a.delayHead]

		// Ping Pong
		mixL := outL + delayR*0.35
		mixR := outR + delayL*0.35

		a.delayLine[0][a.delayHead] = mixL
		a.delayLine[1][a.delayHead] = mixR
		a.delayHead = (a.delayHead + 1) % len(a.delayLine[0])

		out[0][i] = float32(mixL)
		if len(out) > 1 {
			out[1][i] = float32(mixR)
		}
	}

	live := a.voices[:0]
	for _, v := range a.voices {
		if v.amp*math.Exp(-v.age/decayTime) > silence {
			live = append(live, v)
		}
	}
	a.voices = live
	a.sounding.Store(int32(len(live)))
}

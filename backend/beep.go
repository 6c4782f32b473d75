package backend

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sfxpool/audio"
	"github.com/lixenwraith/sfxpool/constant"
)

// device is the output the mixer plays into
// speakerDevice is the real one, tests pull samples through a fake
type device interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Clear()
}

type speakerDevice struct{}

func (speakerDevice) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerDevice) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerDevice) Lock()                   { speaker.Lock() }
func (speakerDevice) Unlock()                 { speaker.Unlock() }
func (speakerDevice) Clear()                  { speaker.Clear() }

// beepSample is a fully decoded sound held in memory at the device rate
type beepSample struct {
	path string
	buf  *beep.Buffer
}

func (s *beepSample) Path() string { return s.path }

// voice is one playback on a channel
// done is set from the speaker goroutine when the sound runs out
type voice struct {
	ctrl *beep.Ctrl
	done atomic.Bool
}

// stop detaches the voice from the mix, caller holds the device lock
func (v *voice) stop() {
	v.ctrl.Streamer = nil
	v.done.Store(true)
}

// BeepMixer plays samples through a single beep.Mixer on the speaker
// Each channel holds at most one voice
type BeepMixer struct {
	dev        device
	sampleRate beep.SampleRate
	bufferSize time.Duration

	mixer  *beep.Mixer
	voices []*voice
	opened bool
}

// NewBeepMixer creates a mixer for the system speaker
func NewBeepMixer(sampleRate int, bufferSize time.Duration) *BeepMixer {
	return newBeepMixer(speakerDevice{}, sampleRate, bufferSize)
}

func newBeepMixer(dev device, sampleRate int, bufferSize time.Duration) *BeepMixer {
	return &BeepMixer{
		dev:        dev,
		sampleRate: beep.SampleRate(sampleRate),
		bufferSize: bufferSize,
		mixer:      &beep.Mixer{},
	}
}

// Open initializes the speaker and starts the shared mixer on it
func (m *BeepMixer) Open(channels int) error {
	if m.opened {
		return ErrAlreadyOpen
	}

	if err := m.dev.Init(m.sampleRate, m.sampleRate.N(m.bufferSize)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	m.voices = make([]*voice, channels)
	m.dev.Play(m.mixer)
	m.opened = true
	return nil
}

// Close silences everything and detaches the mixer from the speaker
func (m *BeepMixer) Close() error {
	if !m.opened {
		return nil
	}

	m.dev.Lock()
	for _, v := range m.voices {
		if v != nil {
			v.stop()
		}
	}
	m.mixer.Clear()
	m.voices = nil
	m.dev.Unlock()

	m.dev.Clear()
	m.opened = false
	return nil
}

// LoadSample decodes a file into memory, resampling to the device rate when needed
func (m *BeepMixer) LoadSample(path string) (audio.Sample, error) {
	dec, format, err := decodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer dec.Close()

	var src beep.Streamer = dec
	if format.SampleRate != m.sampleRate {
		src = beep.Resample(constant.AudioResampleQuality, format.SampleRate, m.sampleRate, dec)
		format.SampleRate = m.sampleRate
	}

	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	// beep.Loop over an empty buffer never returns from Stream
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySample, path)
	}

	return &beepSample{path: path, buf: buf}, nil
}

// ReleaseSample drops the decoded audio
// Voices already playing it keep their own streamer over the buffer
func (m *BeepMixer) ReleaseSample(s audio.Sample) {
	if bs, ok := s.(*beepSample); ok {
		bs.buf = nil
	}
}

// Play replaces whatever channel holds with s
func (m *BeepMixer) Play(channel int, s audio.Sample, loop bool) error {
	if !m.opened {
		return ErrNotOpen
	}
	if channel < 0 || channel >= len(m.voices) {
		return ErrChannelRange
	}
	bs, ok := s.(*beepSample)
	if !ok {
		return ErrForeignSample
	}
	if bs.buf == nil {
		return ErrReleasedSample
	}

	v := &voice{}
	var src beep.Streamer = bs.buf.Streamer(0, bs.buf.Len())
	if loop {
		src = beep.Loop(-1, bs.buf.Streamer(0, bs.buf.Len()))
	}
	v.ctrl = &beep.Ctrl{
		Streamer: beep.Seq(src, beep.Callback(func() {
			v.done.Store(true)
		})),
	}

	m.dev.Lock()
	if old := m.voices[channel]; old != nil {
		old.stop()
	}
	m.voices[channel] = v
	m.mixer.Add(v.ctrl)
	m.dev.Unlock()
	return nil
}

// Halt stops the channel immediately
func (m *BeepMixer) Halt(channel int) {
	v := m.voice(channel)
	if v == nil {
		return
	}

	m.dev.Lock()
	v.stop()
	m.voices[channel] = nil
	m.dev.Unlock()
}

func (m *BeepMixer) Pause(channel int) {
	m.setPaused(channel, true)
}

func (m *BeepMixer) Resume(channel int) {
	m.setPaused(channel, false)
}

func (m *BeepMixer) setPaused(channel int, paused bool) {
	v := m.voice(channel)
	if v == nil || v.ctrl.Paused == paused {
		return
	}

	m.dev.Lock()
	v.ctrl.Paused = paused
	m.dev.Unlock()
}

// IsActive is true until the channel's voice runs out or is halted; paused voices are active
func (m *BeepMixer) IsActive(channel int) bool {
	v := m.voice(channel)
	return v != nil && !v.done.Load()
}

func (m *BeepMixer) voice(channel int) *voice {
	if channel < 0 || channel >= len(m.voices) {
		return nil
	}
	return m.voices[channel]
}

package backend

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/sfxpool/audio"
)

// fileSample only remembers where the sound lives
type fileSample struct {
	path string
}

func (s *fileSample) Path() string { return s.path }

type headlessChannel struct {
	playing bool
	loop    bool
	paused  bool
	started time.Time     // start of the current unpaused stretch
	played  time.Duration // unpaused time before started
}

// HeadlessMixer emulates a device without producing sound
// One-shots finish after oneShot of unpaused time, loops run until halted
type HeadlessMixer struct {
	oneShot  time.Duration
	now      func() time.Time
	channels []headlessChannel
	opened   bool
}

// NewHeadlessMixer creates a silent mixer
func NewHeadlessMixer(oneShot time.Duration) *HeadlessMixer {
	return &HeadlessMixer{
		oneShot: oneShot,
		now:     time.Now,
	}
}

func (m *HeadlessMixer) Open(channels int) error {
	if m.opened {
		return ErrAlreadyOpen
	}
	m.channels = make([]headlessChannel, channels)
	m.opened = true
	return nil
}

func (m *HeadlessMixer) Close() error {
	m.channels = nil
	m.opened = false
	return nil
}

// LoadSample checks that the file exists and is readable, nothing is decoded
func (m *HeadlessMixer) LoadSample(path string) (audio.Sample, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	f.Close()
	return &fileSample{path: path}, nil
}

func (m *HeadlessMixer) ReleaseSample(audio.Sample) {}

func (m *HeadlessMixer) Play(channel int, s audio.Sample, loop bool) error {
	if !m.opened {
		return ErrNotOpen
	}
	if channel < 0 || channel >= len(m.channels) {
		return ErrChannelRange
	}
	if _, ok := s.(*fileSample); !ok {
		return ErrForeignSample
	}

	m.channels[channel] = headlessChannel{
		playing: true,
		loop:    loop,
		started: m.now(),
	}
	return nil
}

func (m *HeadlessMixer) Halt(channel int) {
	if c := m.channel(channel); c != nil {
		*c = headlessChannel{}
	}
}

// Pause on a one-shot that already ran out settles it as finished instead
func (m *HeadlessMixer) Pause(channel int) {
	c := m.channel(channel)
	if c == nil || !c.playing || c.paused {
		return
	}
	if m.expired(c) {
		*c = headlessChannel{}
		return
	}
	c.played += m.now().Sub(c.started)
	c.paused = true
}

func (m *HeadlessMixer) Resume(channel int) {
	c := m.channel(channel)
	if c == nil || !c.playing || !c.paused {
		return
	}
	c.started = m.now()
	c.paused = false
}

func (m *HeadlessMixer) IsActive(channel int) bool {
	c := m.channel(channel)
	if c == nil || !c.playing {
		return false
	}
	if c.loop || c.paused {
		return true
	}
	return !m.expired(c)
}

// expired reports whether an unpaused one-shot has used up its duration
func (m *HeadlessMixer) expired(c *headlessChannel) bool {
	return !c.loop && c.played+m.now().Sub(c.started) >= m.oneShot
}

func (m *HeadlessMixer) channel(channel int) *headlessChannel {
	if channel < 0 || channel >= len(m.channels) {
		return nil
	}
	return &m.channels[channel]
}

package audio

import (
	"errors"
	"fmt"
	"path/filepath"
)

var errFakeLoad = errors.New("fake: no such sample")

type fakeSample struct {
	path     string
	released bool
}

func (s *fakeSample) Path() string { return s.path }

// fakeChannel mirrors what a device would hold on one channel
type fakeChannel struct {
	sample *fakeSample
	loop   bool
	paused bool
	active bool
}

// fakeMixer records every call; loadable paths must be registered with allow
type fakeMixer struct {
	channels []fakeChannel
	known    map[string]bool
	loaded   []*fakeSample
	calls    []string
	opened   bool
	closed   bool
	openErr  error
	playErr  error
}

func newFakeMixer(names ...string) *fakeMixer {
	m := &fakeMixer{known: make(map[string]bool)}
	m.allow(names...)
	return m
}

// allow registers logical names under the default sound directory
func (m *fakeMixer) allow(names ...string) {
	for _, n := range names {
		m.known[filepath.Join(DefaultConfig().SoundDir, n)] = true
	}
}

func (m *fakeMixer) record(format string, args ...any) {
	m.calls = append(m.calls, fmt.Sprintf(format, args...))
}

func (m *fakeMixer) resetCalls() { m.calls = nil }

// finish simulates a channel running out of samples
func (m *fakeMixer) finish(ch int) { m.channels[ch].active = false }

func (m *fakeMixer) Open(channels int) error {
	m.record("open %d", channels)
	if m.openErr != nil {
		return m.openErr
	}
	m.channels = make([]fakeChannel, channels)
	m.opened = true
	return nil
}

func (m *fakeMixer) Close() error {
	m.record("close")
	for _, s := range m.loaded {
		if !s.released {
			return fmt.Errorf("fake: closed with %s still loaded", s.path)
		}
	}
	m.closed = true
	return nil
}

func (m *fakeMixer) LoadSample(path string) (Sample, error) {
	m.record("load %s", path)
	if !m.known[path] {
		return nil, errFakeLoad
	}
	s := &fakeSample{path: path}
	m.loaded = append(m.loaded, s)
	return s, nil
}

func (m *fakeMixer) ReleaseSample(s Sample) {
	m.record("release %s", s.Path())
	s.(*fakeSample).released = true
}

func (m *fakeMixer) Play(ch int, s Sample, loop bool) error {
	m.record("play %d %s %v", ch, s.Path(), loop)
	if m.playErr != nil {
		return m.playErr
	}
	m.channels[ch] = fakeChannel{sample: s.(*fakeSample), loop: loop, active: true}
	return nil
}

func (m *fakeMixer) Halt(ch int) {
	m.record("halt %d", ch)
	m.channels[ch] = fakeChannel{}
}

func (m *fakeMixer) Pause(ch int) {
	m.record("pause %d", ch)
	m.channels[ch].paused = true
}

func (m *fakeMixer) Resume(ch int) {
	m.record("resume %d", ch)
	m.channels[ch].paused = false
}

func (m *fakeMixer) IsActive(ch int) bool {
	return m.channels[ch].active
}

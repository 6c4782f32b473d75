package audio

import (
	"fmt"
	"log"
	"time"
)

// System shares a fixed pool of mixer channels between sound requests
// All methods must be called from the same goroutine, typically the game loop
type System struct {
	mixer    Mixer
	cache    *soundCache
	channels []SoundHandle
	handles  map[SoundHandle]*handleInfo

	// lastHandle is the most recently issued handle; the next one is lastHandle+1
	lastHandle SoundHandle
	closed     bool
}

// New opens the mixer with cfg.Channels physical channels
// A nil cfg uses DefaultConfig
func New(m Mixer, cfg *Config) (*System, error) {
	if m == nil {
		return nil, ErrNilMixer
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := m.Open(cfg.Channels); err != nil {
		return nil, fmt.Errorf("failed to open mixer with %d channels: %w", cfg.Channels, err)
	}

	return &System{
		mixer:    m,
		cache:    newSoundCache(m, cfg.SoundDir, cfg.Extensions),
		channels: make([]SoundHandle, cfg.Channels),
		handles:  make(map[SoundHandle]*handleInfo, cfg.Channels),
	}, nil
}

// Close stops everything, releases cached samples and closes the mixer
func (s *System) Close() error {
	if s.closed {
		return nil
	}
	s.StopAll()
	s.cache.release()
	s.closed = true
	return s.mixer.Close()
}

// Update retires sounds that finished on their own since the last frame
// dt is accepted for game-loop symmetry, the sweep does not depend on it
// Returns the number of retired handles
func (s *System) Update(dt time.Duration) int {
	if s.closed {
		return 0
	}

	// Collect first so the registry is not mutated while scanning
	var finished []SoundHandle
	for i, h := range s.channels {
		if h.IsValid() && !s.mixer.IsActive(i) {
			finished = append(finished, h)
		}
	}

	for _, h := range finished {
		s.retire(h)
	}
	return len(finished)
}

// Play starts the named sound and returns its handle
// name is relative to the sound directory, e.g. "ChompLoop.wav"
// Returns InvalidHandle if the sound cannot be loaded or started
func (s *System) Play(name string, looping bool) SoundHandle {
	if s.closed {
		return InvalidHandle
	}

	sample, ok := s.cache.get(name)
	if !ok {
		log.Printf("[audio] Play couldn't find sound for %s", name)
		return InvalidHandle
	}

	ch := s.acquireChannel(name)
	if ch < 0 {
		return InvalidHandle
	}

	if err := s.mixer.Play(ch, sample, looping); err != nil {
		log.Printf("[audio] Play failed for %s on channel %d: %v", name, ch, err)
		return InvalidHandle
	}

	s.lastHandle++
	h := s.lastHandle

	s.handles[h] = &handleInfo{
		name:    name,
		channel: ch,
		looping: looping,
	}
	s.channels[ch] = h
	return h
}

// Stop halts the sound if it is still live
func (s *System) Stop(h SoundHandle) {
	info, ok := s.handles[h]
	if !ok {
		log.Printf("[audio] Stop couldn't find handle %s", h)
		return
	}

	s.mixer.Halt(info.channel)
	s.retire(h)
}

// Pause pauses the sound if it is playing
func (s *System) Pause(h SoundHandle) {
	info, ok := s.handles[h]
	if !ok {
		log.Printf("[audio] Pause couldn't find handle %s", h)
		return
	}
	if info.paused {
		return
	}

	s.mixer.Pause(info.channel)
	info.paused = true
}

// Resume resumes the sound if it is paused
func (s *System) Resume(h SoundHandle) {
	info, ok := s.handles[h]
	if !ok {
		log.Printf("[audio] Resume couldn't find handle %s", h)
		return
	}
	if !info.paused {
		return
	}

	s.mixer.Resume(info.channel)
	info.paused = false
}

// State reports the sound's state, Stopped for any handle that is not live
func (s *System) State(h SoundHandle) SoundState {
	info, ok := s.handles[h]
	if !ok {
		return Stopped
	}
	if info.paused {
		return Paused
	}
	return Playing
}

// StopAll halts every channel and forgets every handle
func (s *System) StopAll() {
	for i := range s.channels {
		s.mixer.Halt(i)
		s.channels[i] = InvalidHandle
	}
	clear(s.handles)
}

// CacheSound loads a sound ahead of its first Play
func (s *System) CacheSound(name string) bool {
	if s.closed {
		return false
	}
	_, ok := s.cache.get(name)
	return ok
}

// CacheAll loads every recognised file in the sound directory
func (s *System) CacheAll() (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	return s.cache.preloadDir()
}

// Sounds returns the names of loaded samples, sorted
func (s *System) Sounds() []string {
	return s.cache.names()
}

// Cached returns the number of loaded samples
func (s *System) Cached() int {
	return s.cache.len()
}

// Channels returns the pool size
func (s *System) Channels() int {
	return len(s.channels)
}

// ActiveCount returns the number of live handles
func (s *System) ActiveCount() int {
	return len(s.handles)
}

// Info returns the channel view of a live handle
func (s *System) Info(h SoundHandle) (ChannelInfo, bool) {
	info, ok := s.handles[h]
	if !ok {
		return ChannelInfo{}, false
	}
	return ChannelInfo{
		Channel: info.channel,
		Handle:  h,
		Name:    info.name,
		Looping: info.looping,
		Paused:  info.paused,
	}, true
}

// Active returns occupied channels in index order
func (s *System) Active() []ChannelInfo {
	out := make([]ChannelInfo, 0, len(s.handles))
	for _, h := range s.channels {
		if !h.IsValid() {
			continue
		}
		if ci, ok := s.Info(h); ok {
			out = append(out, ci)
		}
	}
	return out
}

// LogActive writes the channel table to the log
func (s *System) LogActive() {
	log.Printf("[audio] Active Sounds:")
	for i, h := range s.channels {
		if !h.IsValid() {
			continue
		}
		info, ok := s.handles[h]
		if !ok {
			log.Printf("Channel %d: %s INVALID", i, h)
			continue
		}
		log.Printf("Channel %d: %s, %s, looping = %v, paused = %v", i, h, info.name, info.looping, info.paused)
	}
}

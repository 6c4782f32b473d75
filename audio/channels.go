package audio

import "log"

// handleInfo is the registry entry of a live handle
type handleInfo struct {
	name    string // logical name, the cache key
	channel int
	looping bool
	paused  bool
}

// freeChannel returns the lowest-index empty slot, or -1 when the pool is full
func (s *System) freeChannel() int {
	for i, h := range s.channels {
		if !h.IsValid() {
			return i
		}
	}
	return -1
}

// evictionVictim picks the sound to interrupt for a new request of name
// Tiers, each choosing the oldest handle: same name, then any one-shot, then anything
func (s *System) evictionVictim(name string) SoundHandle {
	var sameName, oneShot, oldest SoundHandle

	for _, h := range s.channels {
		if !h.IsValid() {
			continue
		}
		info, ok := s.handles[h]
		if !ok {
			continue
		}

		if olderThan(h, oldest) {
			oldest = h
		}
		if info.name == name && olderThan(h, sameName) {
			sameName = h
		}
		if !info.looping && olderThan(h, oneShot) {
			oneShot = h
		}
	}

	switch {
	case sameName.IsValid():
		return sameName
	case oneShot.IsValid():
		return oneShot
	default:
		return oldest
	}
}

// olderThan reports whether h should replace the current best candidate
func olderThan(h, best SoundHandle) bool {
	return !best.IsValid() || h < best
}

// acquireChannel returns a channel for a new request, evicting a live sound when the pool is full
// Returns -1 only if the table holds no live handle to evict
func (s *System) acquireChannel(name string) int {
	if ch := s.freeChannel(); ch >= 0 {
		return ch
	}

	victim := s.evictionVictim(name)
	if !victim.IsValid() {
		return -1
	}

	info := s.handles[victim]
	log.Printf("[audio] evicting %s (%s, looping=%v) from channel %d for %s",
		victim, info.name, info.looping, info.channel, name)

	s.mixer.Halt(info.channel)
	s.retire(victim)
	return info.channel
}

// retire removes a live handle from both the channel table and the registry
func (s *System) retire(h SoundHandle) {
	info, ok := s.handles[h]
	if !ok {
		return
	}
	if s.channels[info.channel] == h {
		s.channels[info.channel] = InvalidHandle
	}
	delete(s.handles, h)
}

package audio

import (
	"errors"
	"strconv"
)

// SoundHandle identifies one playback instance
// Handles are allocated in increasing order and never reused, so a smaller handle is an older sound
type SoundHandle uint64

// InvalidHandle is returned when a sound could not be started
const InvalidHandle SoundHandle = 0

// IsValid reports whether h could refer to a sound
func (h SoundHandle) IsValid() bool {
	return h != InvalidHandle
}

func (h SoundHandle) String() string {
	if !h.IsValid() {
		return "[SoundHandle invalid]"
	}
	return "[SoundHandle " + strconv.FormatUint(uint64(h), 10) + "]"
}

// SoundState is the caller-visible state of a handle
type SoundState int

const (
	Stopped SoundState = iota
	Playing
	Paused
)

func (s SoundState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// ChannelInfo is a read-only view of one occupied channel
type ChannelInfo struct {
	Channel int
	Handle  SoundHandle
	Name    string
	Looping bool
	Paused  bool
}

// Sentinel errors
var (
	ErrInvalidChannelCount = errors.New("channel count must be at least 1")
	ErrNilMixer            = errors.New("mixer is nil")
	ErrClosed              = errors.New("audio system closed")
)

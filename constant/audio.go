package constant

import "time"

// Channel pool
const (
	// AudioChannelCount is the default number of physical mixer channels
	AudioChannelCount = 8

	// AudioSoundDir is the root directory logical sound names are resolved against
	AudioSoundDir = "Assets/Sounds"
)

// AudioExtensions lists sample file extensions picked up by a bulk preload
var AudioExtensions = []string{".ogg", ".wav"}

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length, trades latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// AudioResampleQuality is passed to beep.Resample when a sample's rate differs from the device
	AudioResampleQuality = 4
)

// Headless backend
const (
	// AudioHeadlessOneShot is how long a non-looping sound "plays" without a device
	AudioHeadlessOneShot = 500 * time.Millisecond
)

// Frame timing for the per-frame sweep in cmd tools
const (
	FrameUpdateInterval = 16 * time.Millisecond
)

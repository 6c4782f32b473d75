package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/sfxpool/constant"
)

// Config holds audio system settings
type Config struct {
	Enabled bool

	// Channels is the fixed size of the channel pool
	Channels int

	// SoundDir is prepended to logical sound names to build file paths
	SoundDir string

	// Extensions recognised by CacheAll, including the leading dot
	Extensions []string

	SampleRate     int
	BufferDuration time.Duration

	// Headless selects the device-less backend
	Headless bool

	// OneShotDuration is the simulated length of non-looping sounds on the headless backend
	OneShotDuration time.Duration
}

// DefaultConfig returns the default audio configuration
func DefaultConfig() *Config {
	exts := make([]string, len(constant.AudioExtensions))
	copy(exts, constant.AudioExtensions)

	return &Config{
		Enabled:         true,
		Channels:        constant.AudioChannelCount,
		SoundDir:        constant.AudioSoundDir,
		Extensions:      exts,
		SampleRate:      constant.AudioSampleRate,
		BufferDuration:  constant.AudioBufferDuration,
		OneShotDuration: constant.AudioHeadlessOneShot,
	}
}

// LoadConfig loads audio configuration from environment variables over the defaults
// Malformed or out-of-range values are ignored
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("SFXPOOL_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if channels := os.Getenv("SFXPOOL_CHANNELS"); channels != "" {
		if val, err := strconv.Atoi(channels); err == nil && val > 0 {
			cfg.Channels = val
		}
	}

	if dir := os.Getenv("SFXPOOL_SOUND_DIR"); dir != "" {
		cfg.SoundDir = dir
	}

	// Extensions as a JSON array, e.g. [".ogg", ".wav", ".flac"]
	if exts := os.Getenv("SFXPOOL_EXTENSIONS"); exts != "" {
		var list []string
		if err := json.Unmarshal([]byte(exts), &list); err == nil && len(list) > 0 {
			cfg.Extensions = list
		}
	}

	if sampleRate := os.Getenv("SFXPOOL_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if bufMs := os.Getenv("SFXPOOL_BUFFER_MS"); bufMs != "" {
		if val, err := strconv.Atoi(bufMs); err == nil && val > 0 {
			cfg.BufferDuration = time.Duration(val) * time.Millisecond
		}
	}

	if headless := os.Getenv("SFXPOOL_HEADLESS"); headless != "" {
		if val, err := strconv.ParseBool(headless); err == nil {
			cfg.Headless = val
		}
	}

	return cfg
}

// Validate checks settings the System depends on
func (c *Config) Validate() error {
	if c.Channels < 1 {
		return ErrInvalidChannelCount
	}
	return nil
}

package backend

import "github.com/lixenwraith/sfxpool/audio"

// Compile-time interface checks
var (
	_ audio.Mixer = (*BeepMixer)(nil)
	_ audio.Mixer = (*HeadlessMixer)(nil)
)

// New returns the mixer cfg asks for
func New(cfg *audio.Config) (audio.Mixer, BackendType) {
	if cfg.Headless {
		return NewHeadlessMixer(cfg.OneShotDuration), BackendHeadless
	}
	return NewBeepMixer(cfg.SampleRate, cfg.BufferDuration), BackendBeep
}

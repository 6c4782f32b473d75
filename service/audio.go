package service

import (
	"log"

	"github.com/lixenwraith/sfxpool/audio"
	"github.com/lixenwraith/sfxpool/backend"
)

// AudioService owns the channel pool and the mixer behind it
// Falls back to the headless backend when the audio device can't be opened
type AudioService struct {
	cfg      *audio.Config
	system   *audio.System
	kind     backend.BackendType
	disabled bool

	newMixer func(*audio.Config) (audio.Mixer, backend.BackendType)
}

// NewAudioService creates a new audio service
func NewAudioService() *AudioService {
	return &AudioService{
		newMixer: backend.New,
	}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: *audio.Config, defaults to audio.LoadConfig()
func (s *AudioService) Init(args ...any) error {
	s.cfg = nil
	if len(args) > 0 {
		if cfg, ok := args[0].(*audio.Config); ok && cfg != nil {
			s.cfg = cfg
		}
	}
	if s.cfg == nil {
		s.cfg = audio.LoadConfig()
	}
	return s.cfg.Validate()
}

// Start implements Service
// Opens the mixer and warms the sound cache
func (s *AudioService) Start() error {
	if s.system != nil {
		return nil
	}
	if !s.cfg.Enabled {
		s.disabled = true
		log.Printf("[audio] disabled by configuration")
		return nil
	}

	m, kind := s.newMixer(s.cfg)
	sys, err := audio.New(m, s.cfg)
	if err != nil && kind != backend.BackendHeadless {
		log.Printf("[audio] %s backend unavailable: %v (continuing without sound)", kind, err)
		m, kind = backend.NewHeadlessMixer(s.cfg.OneShotDuration), backend.BackendHeadless
		sys, err = audio.New(m, s.cfg)
	}
	if err != nil {
		return err
	}

	if _, err := sys.CacheAll(); err != nil {
		log.Printf("[audio] preload failed: %v", err)
	}

	s.system = sys
	s.kind = kind
	s.disabled = false
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.system == nil {
		return nil
	}
	err := s.system.Close()
	s.system = nil
	return err
}

// System returns the channel pool, nil when disabled or not started
func (s *AudioService) System() *audio.System {
	return s.system
}

// Backend returns the mixer kind chosen by Start
func (s *AudioService) Backend() backend.BackendType {
	return s.kind
}

// IsDisabled returns true if audio was turned off by configuration
func (s *AudioService) IsDisabled() bool {
	return s.disabled
}

package audio

// Sample is a loaded sound resource owned by the mixer that produced it
type Sample interface {
	// Path returns the file the sample was loaded from
	Path() string
}

// Mixer is the device-side collaborator: it owns physical channels, decodes samples and mixes them
// Channel indices are in [0, channels) as passed to Open
// Implementations are driven from a single goroutine; they may mix on their own goroutine internally
type Mixer interface {
	// Open initializes the device with the given number of physical channels
	Open(channels int) error

	// Close tears down the device, all samples must have been released first
	Close() error

	LoadSample(path string) (Sample, error)
	ReleaseSample(s Sample)

	// Play starts s on channel, replacing whatever the channel held
	// loop=true repeats the sample until halted
	Play(channel int, s Sample, loop bool) error

	Halt(channel int)
	Pause(channel int)
	Resume(channel int)

	// IsActive is true while the channel is producing sound or is paused, false once it finished on its own
	IsActive(channel int) bool
}

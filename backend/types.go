package backend

import "errors"

// BackendType identifies a mixer implementation
type BackendType int

const (
	BackendBeep BackendType = iota
	BackendHeadless
)

func (b BackendType) String() string {
	switch b {
	case BackendBeep:
		return "beep"
	case BackendHeadless:
		return "headless"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrNotOpen           = errors.New("mixer not open")
	ErrAlreadyOpen       = errors.New("mixer already open")
	ErrChannelRange      = errors.New("channel index out of range")
	ErrForeignSample     = errors.New("sample was not loaded by this mixer")
	ErrReleasedSample    = errors.New("sample already released")
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	ErrNotRegularFile    = errors.New("sample path is not a regular file")
	ErrEmptySample       = errors.New("sample has no frames")
)

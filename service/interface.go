package service

// Service defines the lifecycle interface for long-lived subsystems
// The audio device, the terminal screen and similar resources are services
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration passed at registration
//  3. Start() - acquire devices, launch goroutines if any
//  4. [runtime operation]
//  5. Stop() - release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init and Start before this one
	Dependencies() []string

	// Init configures the service from optional args
	Init(args ...any) error

	// Start begins service operation
	// Called after all services have initialized
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

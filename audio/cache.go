package audio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// soundCache maps logical sound names to loaded samples
// Entries are never evicted; release drops them all at teardown
type soundCache struct {
	mu      sync.RWMutex
	mixer   Mixer
	dir     string
	exts    []string
	samples map[string]Sample
}

func newSoundCache(m Mixer, dir string, exts []string) *soundCache {
	return &soundCache{
		mixer:   m,
		dir:     dir,
		exts:    exts,
		samples: make(map[string]Sample),
	}
}

// path resolves a logical name against the sound root
func (c *soundCache) path(name string) string {
	return filepath.Join(c.dir, name)
}

// get returns the cached sample or loads it on demand
// Failed loads are logged and not cached, so a later call retries
func (c *soundCache) get(name string) (Sample, bool) {
	c.mu.RLock()
	s, ok := c.samples[name]
	c.mu.RUnlock()
	if ok {
		return s, true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if s, ok := c.samples[name]; ok {
		return s, true
	}

	path := c.path(name)
	s, err := c.mixer.LoadSample(path)
	if err != nil || s == nil {
		log.Printf("[audio] failed to load sound file %s: %v", path, err)
		return nil, false
	}

	c.samples[name] = s
	return s, true
}

// preloadDir loads every recognised file directly under the sound root
// A missing root is not an error, there is simply nothing to preload
func (c *soundCache) preloadDir() (int, error) {
	if _, err := os.Stat(c.dir); os.IsNotExist(err) {
		log.Printf("[audio] sound directory '%s' does not exist, nothing cached", c.dir)
		return 0, nil
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read sound directory: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !c.recognised(name) {
			continue
		}

		if _, ok := c.get(name); ok {
			loaded++
		}
	}

	log.Printf("[audio] cached %d sound(s) from %s", loaded, c.dir)
	return loaded, nil
}

func (c *soundCache) recognised(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range c.exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

func (c *soundCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.samples)
}

func (c *soundCache) names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.samples))
	for name := range c.samples {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// release hands every sample back to the mixer and empties the cache
func (c *soundCache) release() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for name, s := range c.samples {
		c.mixer.ReleaseSample(s)
		delete(c.samples, name)
	}
}

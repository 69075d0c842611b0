package langs

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is the process-wide table mapping language names to plugins.
// Mutated only by Register, which is expected to happen at process startup;
// the lock exists to guard against dynamic registration from a plugin
// loaded later in the process lifetime.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

// Register adds or replaces the plugin for its own Name().
func (r *Registry) Register(p Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins[p.Name()] = p
}

// Get looks up a plugin by language name.
func (r *Registry) Get(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[name]
	return p, ok
}

// Names returns every registered language name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.plugins))
	for n := range r.plugins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Default returns a registry pre-populated with the four built-in plugins:
// ecmascript-variant-A, ecmascript-variant-B, python, and shell.
func Default() *Registry {
	r := NewRegistry()
	r.Register(newEcmaScriptPlain())
	r.Register(newEcmaScriptTyped())
	r.Register(newPython())
	r.Register(newShell())
	return r
}

// NewUnknownLanguageError builds the error callers return when a requested
// language has no registered plugin.
func NewUnknownLanguageError(name string) error {
	return fmt.Errorf("langs: unknown language %q", name)
}

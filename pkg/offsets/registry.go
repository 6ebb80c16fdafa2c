package offsets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/fsnotify.v1"
	"gopkg.in/yaml.v3"

	"github.com/coolbeans/tempo/pkg/temporal"
)

// Registry manages a collection of named fixed offsets.
type Registry interface {
	// Register adds a definition to the registry
	Register(def *Definition) error

	// Unregister removes a definition from the registry
	Unregister(name string) error

	// Get returns a definition by name (case-insensitive)
	Get(name string) (*Definition, bool)

	// List returns all registered definitions
	List() []*Definition

	// Resolve maps a name or literal offset string to an offset value
	Resolve(s string) (temporal.UtcOffset, error)

	// Reload reloads all definitions from the configured directory
	Reload() error

	// Watch starts watching the definition directory for changes
	Watch() error

	// StopWatch stops watching the definition directory
	StopWatch()

	// LoadDirectory loads all definition files from a directory
	LoadDirectory(dir string) error

	// LoadFile loads a single definition file
	LoadFile(path string) error
}

// DefaultRegistry is the default implementation of Registry.
type DefaultRegistry struct {
	mu       sync.RWMutex
	defs     map[string]*Definition // keyed by lower-cased name
	dir      string
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	onChange func(event string, def *Definition)
}

// NewRegistry creates a registry seeded with the builtin definitions.
func NewRegistry() *DefaultRegistry {
	r := &DefaultRegistry{defs: make(map[string]*Definition)}
	for _, def := range Builtin() {
		d := def
		r.defs[strings.ToLower(d.Name)] = &d
	}
	return r
}

// NewRegistryWithDirectory creates a registry and loads definitions from
// the directory on top of the builtins.
func NewRegistryWithDirectory(dir string) (*DefaultRegistry, error) {
	r := NewRegistry()
	r.dir = dir

	if err := r.LoadDirectory(dir); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds a definition to the registry. A definition with the same
// name replaces the previous one.
func (r *DefaultRegistry) Register(def *Definition) error {
	if def == nil {
		return fmt.Errorf("definition cannot be nil")
	}
	if err := def.Validate(); err != nil {
		return fmt.Errorf("invalid definition: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[strings.ToLower(def.Name)] = def
	return nil
}

// Unregister removes a definition from the registry.
func (r *DefaultRegistry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, ok := r.defs[key]; !ok {
		return fmt.Errorf("offset %q not found", name)
	}
	delete(r.defs, key)
	return nil
}

// Get returns a definition by name, case-insensitively.
func (r *DefaultRegistry) Get(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[strings.ToLower(name)]
	return def, ok
}

// List returns all registered definitions, sorted by name.
func (r *DefaultRegistry) List() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]*Definition, 0, len(r.defs))
	for _, d := range r.defs {
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool {
		return strings.ToLower(defs[i].Name) < strings.ToLower(defs[j].Name)
	})
	return defs
}

// Count returns the number of registered definitions.
func (r *DefaultRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// Resolve maps a registered name or a literal "Z"/"±HH:MM" string to an
// offset value. Literals win, so a registry entry can never shadow the
// textual forms.
func (r *DefaultRegistry) Resolve(s string) (temporal.UtcOffset, error) {
	if offset, err := temporal.ParseOffset(s); err == nil {
		return offset, nil
	}
	if def, ok := r.Get(s); ok {
		return def.UtcOffset()
	}
	return temporal.UtcOffset{}, fmt.Errorf("unknown offset %q: not a registered name or ±HH:MM literal", s)
}

// LoadDirectory loads all YAML definition files from a directory. A
// missing directory is not an error; the builtins remain available.
func (r *DefaultRegistry) LoadDirectory(dir string) error {
	r.dir = dir

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var loadErrors []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		path := filepath.Join(dir, name)
		if err := r.LoadFile(path); err != nil {
			loadErrors = append(loadErrors, fmt.Sprintf("%s: %v", name, err))
		}
	}

	if len(loadErrors) > 0 {
		return fmt.Errorf("errors loading offset definitions: %s", strings.Join(loadErrors, "; "))
	}
	return nil
}

// LoadFile loads a single YAML definition file.
func (r *DefaultRegistry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	for i := range file.Offsets {
		if err := r.Register(&file.Offsets[i]); err != nil {
			return fmt.Errorf("registering offset: %w", err)
		}
	}
	return nil
}

// Reload clears everything back to the builtins and reloads the configured
// directory.
func (r *DefaultRegistry) Reload() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for reload")
	}

	r.mu.Lock()
	r.defs = make(map[string]*Definition)
	for _, def := range Builtin() {
		d := def
		r.defs[strings.ToLower(d.Name)] = &d
	}
	r.mu.Unlock()

	return r.LoadDirectory(r.dir)
}

// SetOnChange sets a callback invoked when watched definitions change.
func (r *DefaultRegistry) SetOnChange(fn func(event string, def *Definition)) {
	r.onChange = fn
}

// Watch starts watching the definition directory for changes.
func (r *DefaultRegistry) Watch() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	r.watcher = watcher
	r.stopChan = make(chan struct{})

	go r.watchLoop()

	if err := watcher.Add(r.dir); err != nil {
		r.watcher.Close()
		return fmt.Errorf("watching directory %s: %w", r.dir, err)
	}
	return nil
}

// watchLoop handles file system events.
func (r *DefaultRegistry) watchLoop() {
	for {
		select {
		case <-r.stopChan:
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
				continue
			}

			switch {
			case event.Op&fsnotify.Create == fsnotify.Create:
				r.handleFileChange(event.Name, "create")
			case event.Op&fsnotify.Write == fsnotify.Write:
				r.handleFileChange(event.Name, "modify")
			case event.Op&fsnotify.Remove == fsnotify.Remove:
				r.handleFileRemove()
			case event.Op&fsnotify.Rename == fsnotify.Rename:
				r.handleFileRemove()
			}

		case _, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (r *DefaultRegistry) handleFileChange(path, eventType string) {
	if err := r.LoadFile(path); err != nil {
		return
	}
	if r.onChange != nil {
		r.onChange(eventType, nil)
	}
}

// handleFileRemove rebuilds the registry; definitions are not tracked back
// to the file they came from, so a removal means a full reload.
func (r *DefaultRegistry) handleFileRemove() {
	if err := r.Reload(); err != nil {
		return
	}
	if r.onChange != nil {
		r.onChange("remove", nil)
	}
}

// StopWatch stops watching the definition directory.
func (r *DefaultRegistry) StopWatch() {
	if r.stopChan != nil {
		close(r.stopChan)
	}
	if r.watcher != nil {
		r.watcher.Close()
	}
}

package codec

import (
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

// Registry indexes the registered JPEG decoders twice: by human-readable
// name and by DICOM transfer-syntax UID. A decoder registered under an
// already-taken key replaces the previous occupant.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Codec
	byUID  map[string]Codec
}

// NewRegistry creates an empty decoder registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Codec),
		byUID:  make(map[string]Codec),
	}
}

var defaultRegistry = NewRegistry()

// Register adds a codec to the default registry.
func Register(c Codec) {
	defaultRegistry.Register(c)
}

// Get retrieves a codec from the default registry by name or UID.
func Get(nameOrUID string) (Codec, error) {
	return defaultRegistry.Get(nameOrUID)
}

// List returns the codecs in the default registry.
func List() []Codec {
	return defaultRegistry.List()
}

// Register indexes a codec under both its name and its UID.
func (r *Registry) Register(c Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[c.Name()] = c
	r.byUID[c.UID()] = c
}

// Get retrieves a codec by name or UID.
func (r *Registry) Get(nameOrUID string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.byName[nameOrUID]; ok {
		return c, nil
	}
	if c, ok := r.byUID[nameOrUID]; ok {
		return c, nil
	}
	return nil, ErrCodecNotFound
}

// List returns the registered codecs, ordered by name.
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codecs := make([]Codec, 0, len(r.byName))
	for _, c := range r.byName {
		codecs = append(codecs, c)
	}
	slices.SortFunc(codecs, func(a, b Codec) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return codecs
}

package render

import "sync"

// Registry maps template keys to style descriptors. Registration is
// idempotent: re-registering an existing key is a no-op, mirroring the
// guarded customElements.define of the original web components.
type Registry struct {
	mu     sync.RWMutex
	styles map[string]*Style
	keys   []string
}

func NewRegistry() *Registry {
	return &Registry{styles: map[string]*Style{}}
}

// Register adds a style under its key. It reports whether the style was
// actually added; an already-registered key keeps its existing descriptor.
func (r *Registry) Register(st *Style) bool {
	if st == nil || st.Key == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.styles[st.Key]; exists {
		return false
	}
	r.styles[st.Key] = st
	r.keys = append(r.keys, st.Key)
	return true
}

func (r *Registry) Get(key string) (*Style, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.styles[key]
	return st, ok
}

// Keys returns the template keys in registration order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Styles returns the descriptors in registration order.
func (r *Registry) Styles() []*Style {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Style, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.styles[k])
	}
	return out
}

// Builtin returns a fresh registry with every shipped template registered.
// The caller owns the registry; there is no package-level mutable one.
func Builtin() *Registry {
	r := NewRegistry()
	for _, st := range builtinStyles() {
		r.Register(st)
	}
	return r
}

package execlog

import "strconv"

// Registry hands out unique names for apps that are executed more than once
// within a single log.
type Registry struct {
	seen map[string]int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]int)}
}

// Resolve returns base the first time it is called for base and
// base1, base2, ... afterwards.
func (r *Registry) Resolve(base string) string {
	ctr, old := r.seen[base]
	if !old {
		r.seen[base] = 1
		return base
	}
	r.seen[base] = ctr + 1
	return base + strconv.Itoa(ctr)
}

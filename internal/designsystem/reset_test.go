package designsystem

import "github.com/opencode-ai/petal/internal/theme"

// reset returns a registry to the unconfigured state. Test builds only.
func (r *Registry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.theme = theme.ClassicMono()
	r.configured = false
}

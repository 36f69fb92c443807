package adapters

import (
	"log/slog"
	"sync"

	"github.com/finance-pulse/backend/internal/application/adapter"
)

// logNavigator implements adapter.Navigator for the server process. Requests
// carry their own redirects at the HTTP edge; this navigator only tracks the
// logical location of the process-wide session state and logs transitions.
type logNavigator struct {
	mu   sync.RWMutex
	path string
}

// NewLogNavigator creates a navigator starting at the given path.
func NewLogNavigator(initialPath string) adapter.Navigator {
	return &logNavigator{path: initialPath}
}

// Replace records the new location, replacing the current one.
func (n *logNavigator) Replace(path string) {
	n.mu.Lock()
	from := n.path
	n.path = path
	n.mu.Unlock()

	slog.Info("navigation", "from", from, "to", path)
}

// CurrentPath returns the current logical location.
func (n *logNavigator) CurrentPath() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.path
}

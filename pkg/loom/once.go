package loom

import (
	"log/slog"
	"sync"
)

// The debug hook is process-wide and installed at most once, independent of
// any component. It is not required by the reactive core; leaving it
// uninstalled keeps the runtime silent.
var (
	hookOnce      sync.Once
	hookInstalled bool

	logger = slog.New(slog.DiscardHandler)
)

// InstallDebugHook routes the runtime's trace output to l and reports
// whether this call performed the installation. Later calls are no-ops.
func InstallDebugHook(l *slog.Logger) bool {
	first := false
	hookOnce.Do(func() {
		if l != nil {
			logger = l
		}
		hookInstalled = true
		first = true
	})
	return first
}

// DebugHookInstalled reports whether the hook has been installed.
func DebugHookInstalled() bool {
	return hookInstalled
}

func trace(msg string, args ...any) {
	if hookInstalled {
		logger.Debug(msg, args...)
	}
}

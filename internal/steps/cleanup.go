package steps

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mbusb/makeusb/internal/ui"
)

// CleanupStack collects cleanup functions acquired during the run and
// executes them once, in reverse order, on any exit path. Cleanup is
// best-effort: the functions themselves swallow their failures.
type CleanupStack struct {
	mu    sync.Mutex
	funcs []func()
	once  sync.Once
}

// NewCleanupStack creates an empty cleanup stack.
func NewCleanupStack() *CleanupStack {
	return &CleanupStack{}
}

// Push registers a cleanup function. Functions run in LIFO order.
func (s *CleanupStack) Push(f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.funcs = append(s.funcs, f)
}

// Run executes all registered cleanup functions in reverse order, exactly
// once. Later calls are no-ops.
func (s *CleanupStack) Run() {
	s.once.Do(func() {
		s.mu.Lock()
		funcs := s.funcs
		s.funcs = nil
		s.mu.Unlock()

		for i := len(funcs) - 1; i >= 0; i-- {
			funcs[i]()
		}
	})
}

// RunOnSignals arranges for the stack to run before the process dies on
// SIGHUP, SIGINT or SIGTERM. The exit status follows the shell convention
// of 128 plus the signal number.
func (s *CleanupStack) RunOnSignals(u *ui.UI) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-ch
		u.Warningf("received %s, cleaning up", sig)
		s.Run()

		code := 1
		if num, ok := sig.(syscall.Signal); ok {
			code = 128 + int(num)
		}
		os.Exit(code)
	}()
}

package hibp

import (
	"context"
	"sync"
	"time"
)

const DefaultDebounce = 800 * time.Millisecond

// PasswordChecker is anything that can look a password up without failing.
type PasswordChecker interface {
	Check(ctx context.Context, password string) Result
}

type Observation struct {
	Input  string
	Result Result
}

// Watcher checks the latest of a stream of inputs, as typed into a prompt. Every
// Update restarts the debounce timer and cancels the lookup of the previous
// input. Results for inputs that are no longer current are dropped.
type Watcher struct {
	checker  PasswordChecker
	delay    time.Duration
	onResult func(Observation)

	mu     sync.Mutex
	gen    uint64
	timer  *time.Timer
	cancel context.CancelFunc
	latest *Observation
	closed bool
}

// NewWatcher creates a watcher. A zero delay uses DefaultDebounce and onResult may be nil.
func NewWatcher(checker PasswordChecker, delay time.Duration, onResult func(Observation)) *Watcher {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Watcher{checker: checker, delay: delay, onResult: onResult}
}

// Update makes input the current value. An empty input only invalidates pending work.
func (w *Watcher) Update(input string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.stop()
	w.gen++
	if input == "" {
		w.latest = nil
		return
	}

	gen := w.gen
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.timer = time.AfterFunc(w.delay, func() {
		w.run(ctx, gen, input)
	})
}

func (w *Watcher) run(ctx context.Context, gen uint64, input string) {
	res := w.checker.Check(ctx, input)

	w.mu.Lock()
	if w.closed || gen != w.gen {
		w.mu.Unlock()
		return
	}
	obs := Observation{Input: input, Result: res}
	w.latest = &obs
	onResult := w.onResult
	w.mu.Unlock()

	if onResult != nil {
		onResult(obs)
	}
}

// Latest returns the last delivered observation, if any.
func (w *Watcher) Latest() (Observation, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.latest == nil {
		return Observation{}, false
	}
	return *w.latest, true
}

// Generation is the number of updates seen so far.
func (w *Watcher) Generation() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gen
}

func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stop()
	w.closed = true
}

// stop must be called with mu held.
func (w *Watcher) stop() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}

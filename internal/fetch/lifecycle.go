package fetch

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/alexisbeaulieu97/spacedeck/pkg/errors"
)

// State is the position of a Lifecycle in its state machine.
type State int

const (
	Idle State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Token identifies one request. Tokens increase monotonically per Lifecycle.
type Token uint64

// Result is the outcome of one request, delivered as a Bubble Tea message.
type Result[T any] struct {
	Key   string
	Token Token
	Data  T
	Err   error
}

// ResultKey returns the routing key the result is tagged with.
func (r Result[T]) ResultKey() string { return r.Key }

// Func performs the actual request.
type Func[T any] func(ctx context.Context) (T, error)

// Lifecycle tracks one view's relationship to one logical request.
//
// It is not safe for concurrent use; drive it from the Bubble Tea update
// loop. Commands it returns run on other goroutines but only produce
// messages.
type Lifecycle[T any] struct {
	key     string
	failure string

	state   State
	token   Token
	data    T
	message string
	err     error
	cancel  context.CancelFunc
}

// New creates an idle Lifecycle. key routes results back to the owning view;
// failure is the static message shown when a request fails.
func New[T any](key, failure string) *Lifecycle[T] {
	return &Lifecycle[T]{key: key, failure: failure}
}

// Key returns the routing key results are tagged with.
func (l *Lifecycle[T]) Key() string { return l.key }

// State returns the current state.
func (l *Lifecycle[T]) State() State { return l.state }

// Token returns the token of the most recent request.
func (l *Lifecycle[T]) Token() Token { return l.token }

// Data returns the snapshot and whether the lifecycle is Ready.
func (l *Lifecycle[T]) Data() (T, bool) {
	return l.data, l.state == Ready
}

// Message returns the user-facing failure message, or an empty string.
func (l *Lifecycle[T]) Message() string { return l.message }

// Err returns the error behind the last failure.
func (l *Lifecycle[T]) Err() error { return l.err }

// Begin enters Loading for a new request and supersedes the previous one:
// its context is cancelled and its result will be ignored.
func (l *Lifecycle[T]) Begin(parent context.Context) (Token, context.Context) {
	if parent == nil {
		parent = context.Background()
	}
	l.release()

	ctx, cancel := context.WithCancel(parent)
	l.cancel = cancel
	l.token++
	l.state = Loading
	l.message = ""
	l.err = nil
	return l.token, ctx
}

// Resolve commits r if it belongs to the current request and reports whether
// it did. Success replaces the snapshot. Failure discards it.
func (l *Lifecycle[T]) Resolve(r Result[T]) bool {
	if r.Key != l.key || r.Token != l.token || l.state != Loading {
		return false
	}
	l.release()

	if r.Err != nil {
		var zero T
		l.data = zero
		l.state = Failed
		l.message = l.failure
		l.err = r.Err
		return true
	}

	l.data = r.Data
	l.state = Ready
	return true
}

// Cancel abandons the in-flight request, if any. Its result will be ignored.
func (l *Lifecycle[T]) Cancel() {
	l.release()
	if l.state == Loading {
		l.token++
		l.state = Idle
	}
}

func (l *Lifecycle[T]) release() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Fetch begins a request and returns the command that performs it.
func (l *Lifecycle[T]) Fetch(parent context.Context, fn Func[T]) tea.Cmd {
	token, ctx := l.Begin(parent)
	return Command(ctx, l.key, token, fn)
}

// Run performs a request synchronously and commits its result. It is used
// outside the TUI, where there is a single caller.
func (l *Lifecycle[T]) Run(parent context.Context, fn Func[T]) bool {
	token, ctx := l.Begin(parent)
	data, err := fn(ctx)
	return l.Resolve(Result[T]{Key: l.key, Token: token, Data: data, Err: err})
}

// Command wraps fn as a Bubble Tea command producing a Result tagged with key and token.
func Command[T any](ctx context.Context, key string, token Token, fn Func[T]) tea.Cmd {
	return func() tea.Msg {
		data, err := fn(ctx)
		if err == nil && ctx.Err() != nil {
			err = apperrors.NewTransportError(key, ctx.Err())
		}
		return Result[T]{Key: key, Token: token, Data: data, Err: err}
	}
}

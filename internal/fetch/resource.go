// Package fetch models the request lifecycle of one remote resource shown
// on one screen: idle, loading, then exactly one terminal phase.
//
// A Resource is not safe for concurrent use. It is owned by a single UI
// model and mutated only from that model's update loop; loaders run
// elsewhere and report back through Result values, which are applied only
// if they belong to the most recently started request.
package fetch

import (
	"context"
	"time"
)

// Phase is the display state of a Resource.
type Phase int

const (
	PhaseIdle    Phase = iota // never started
	PhaseLoading              // request in flight
	PhaseError                // failed; Message holds the user-facing text
	PhaseEmpty                // succeeded with nothing to show; Message is informational
	PhaseReady                // succeeded; Data is populated
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseEmpty:
		return "empty"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// State is a snapshot of a Resource that views render from.
type State[T any] struct {
	Phase     Phase
	Data      T
	Err       error
	Message   string
	FetchedAt time.Time
}

// Loading reports whether the loading flag is set.
func (s State[T]) Loading() bool { return s.Phase == PhaseLoading }

// Terminal reports whether the state is one of Error, Empty or Ready.
func (s State[T]) Terminal() bool {
	return s.Phase == PhaseError || s.Phase == PhaseEmpty || s.Phase == PhaseReady
}

// Loader performs the remote call for one request.
type Loader[T any] func(ctx context.Context) (T, error)

// Ticket identifies one started request. Tickets increase monotonically
// per Resource; only the latest one may change visible state.
type Ticket uint64

// Result is the outcome of a loader stamped with the ticket it ran under.
type Result[T any] struct {
	Ticket Ticket
	Data   T
	Err    error
}

// Resource tracks the lifecycle of a single remote resource.
type Resource[T any] struct {
	isEmpty  func(T) bool
	emptyMsg string

	latest Ticket
	state  State[T]
}

// NewItem returns a Resource for a single record. A successful load is
// always Ready.
func NewItem[T any]() *Resource[T] {
	return &Resource[T]{}
}

// NewCollection returns a Resource for a list. A successful load with no
// elements resolves to PhaseEmpty carrying emptyMessage.
func NewCollection[E any](emptyMessage string) *Resource[[]E] {
	return &Resource[[]E]{
		isEmpty:  func(items []E) bool { return len(items) == 0 },
		emptyMsg: emptyMessage,
	}
}

// State returns the current snapshot.
func (r *Resource[T]) State() State[T] { return r.state }

// Latest returns the ticket of the most recently started request.
func (r *Resource[T]) Latest() Ticket { return r.latest }

// Start begins a new request: it issues a fresh ticket, discards any data
// or message from earlier requests and enters PhaseLoading. The returned
// function runs load exactly once and must be called off the update loop;
// its Result is then passed back to Apply.
func (r *Resource[T]) Start(ctx context.Context, load Loader[T]) (Ticket, func() Result[T]) {
	ticket := r.next()
	var zero T
	r.state = State[T]{Phase: PhaseLoading, Data: zero}

	var ran bool
	return ticket, func() Result[T] {
		if ran {
			return Result[T]{Ticket: ticket, Err: errAlreadyRan}
		}
		ran = true
		data, err := load(ctx)
		return Result[T]{Ticket: ticket, Data: data, Err: err}
	}
}

// Fail resolves a new request straight to PhaseError without a loader.
// It is used for failures detected before any network call; the fresh
// ticket also invalidates any request still in flight.
func (r *Resource[T]) Fail(err error) Ticket {
	ticket := r.next()
	var zero T
	r.state = State[T]{
		Phase:     PhaseError,
		Data:      zero,
		Err:       err,
		Message:   Describe(err),
		FetchedAt: time.Now(),
	}
	return ticket
}

// Apply moves the Resource to its terminal phase for res. Results from
// superseded tickets, and repeat results for an already-resolved ticket,
// are ignored and Apply returns false.
func (r *Resource[T]) Apply(res Result[T]) bool {
	if res.Ticket != r.latest || r.state.Phase != PhaseLoading {
		return false
	}

	now := time.Now()
	switch {
	case res.Err != nil:
		var zero T
		r.state = State[T]{Phase: PhaseError, Data: zero, Err: res.Err, Message: Describe(res.Err), FetchedAt: now}
	case r.isEmpty != nil && r.isEmpty(res.Data):
		r.state = State[T]{Phase: PhaseEmpty, Data: res.Data, Message: r.emptyMsg, FetchedAt: now}
	default:
		r.state = State[T]{Phase: PhaseReady, Data: res.Data, FetchedAt: now}
	}
	return true
}

func (r *Resource[T]) next() Ticket {
	r.latest++
	return r.latest
}

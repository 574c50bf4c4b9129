package configuration

import (
	"context"

	"github.com/ringtoolkit/ring-toolkit-core/plugins/components"
)

// Kind tells how a configuration entry must be resolved.
type Kind int

const (
	Value Kind = iota
	CallableKind
	AwaitableKind
)

func (k Kind) String() string {
	switch k {
	case CallableKind:
		return "callable"
	case AwaitableKind:
		return "awaitable"
	default:
		return "value"
	}
}

// Callable configuration entries are invoked with the parsed command options.
type Callable func(ctx context.Context, options components.Options) (any, error)

// Awaitable configuration entries produce their value asynchronously.
type Awaitable interface {
	Await(ctx context.Context) (any, error)
}

func KindOf(raw any) Kind {
	switch raw.(type) {
	case Awaitable:
		return AwaitableKind
	case Callable, func(context.Context, components.Options) (any, error):
		return CallableKind
	default:
		return Value
	}
}

// Resolve turns a raw configuration entry into its final value:
// an awaitable is awaited, a callable is invoked, and an awaitable result is awaited again.
func Resolve(ctx context.Context, raw any, options components.Options) (value any, err error) {
	value = raw
	if KindOf(value) == AwaitableKind {
		if value, err = value.(Awaitable).Await(ctx); err != nil {
			return nil, err
		}
	}
	switch fn := value.(type) {
	case Callable:
		value, err = fn(ctx, options)
	case func(context.Context, components.Options) (any, error):
		value, err = fn(ctx, options)
	}
	if err != nil {
		return nil, err
	}
	if KindOf(value) == AwaitableKind {
		return value.(Awaitable).Await(ctx)
	}
	return value, nil
}

// Future is an Awaitable running its function once, in its own goroutine.
type Future struct {
	done  chan struct{}
	value any
	err   error
}

func NewFuture(ctx context.Context, fn func(ctx context.Context) (any, error)) *Future {
	future := &Future{done: make(chan struct{})}
	go func() {
		defer close(future.done)
		future.value, future.err = fn(ctx)
	}()
	return future
}

// Await blocks until the function returned or ctx is done.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

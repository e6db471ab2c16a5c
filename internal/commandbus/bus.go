// Package commandbus is a synchronous in-process message bus. Handlers run
// on the dispatching goroutine and leave a HandledStamp with their result on
// the returned Envelope.
package commandbus

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go-resume-backend/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// Command is a message routed by name.
type Command interface {
	CommandName() string
}

type Handler func(ctx context.Context, cmd Command) (any, error)

// HandledStamp records that a handler processed a command.
type HandledStamp struct {
	HandlerName string
	Result      any
}

// Envelope wraps a dispatched command with the stamps its handlers left.
type Envelope struct {
	Command Command
	stamps  []HandledStamp
}

func (e *Envelope) Stamps() []HandledStamp {
	return e.stamps
}

// Last returns the most recent stamp, or false when no handler ran.
func (e *Envelope) Last() (HandledStamp, bool) {
	if len(e.stamps) == 0 {
		return HandledStamp{}, false
	}
	return e.stamps[len(e.stamps)-1], true
}

type registration struct {
	name    string
	handler Handler
}

type Bus struct {
	mu         sync.RWMutex
	handlers   map[string][]registration
	dispatched *prometheus.CounterVec
}

// New returns an empty bus. The dispatch counter is registered on reg when
// it is not nil; a counter already registered there is reused.
func New(reg prometheus.Registerer) *Bus {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "command_bus_dispatch_total",
			Help: "Commands dispatched on the bus by name and outcome.",
		},
		[]string{"command", "status"},
	)
	if reg != nil {
		if err := reg.Register(counter); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				counter = are.ExistingCollector.(*prometheus.CounterVec)
			}
		}
	}
	return &Bus{
		handlers:   make(map[string][]registration),
		dispatched: counter,
	}
}

// Register subscribes handler to commands named command. Handlers run in
// registration order.
func (b *Bus) Register(command, handlerName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[command] = append(b.handlers[command], registration{name: handlerName, handler: handler})
}

// Dispatch runs every handler of cmd and returns the stamped envelope. The
// first handler error stops the chain. A command without handlers yields an
// envelope without stamps.
func (b *Bus) Dispatch(ctx context.Context, cmd Command) (*Envelope, error) {
	name := cmd.CommandName()

	b.mu.RLock()
	regs := b.handlers[name]
	b.mu.RUnlock()

	env := &Envelope{Command: cmd}
	if len(regs) == 0 {
		b.dispatched.WithLabelValues(name, "unhandled").Inc()
		logger.Log.DebugContext(ctx, "command not handled", "command", name)
		return env, nil
	}

	for _, reg := range regs {
		result, err := reg.handler(ctx, cmd)
		if err != nil {
			b.dispatched.WithLabelValues(name, "error").Inc()
			return env, fmt.Errorf("%s: %w", reg.name, err)
		}
		env.stamps = append(env.stamps, HandledStamp{HandlerName: reg.name, Result: result})
	}

	b.dispatched.WithLabelValues(name, "handled").Inc()
	logger.Log.DebugContext(ctx, "command handled", "command", name, "handlers", len(regs))
	return env, nil
}

// Typed adapts a handler of a concrete command type.
func Typed[C Command](fn func(ctx context.Context, cmd C) (any, error)) Handler {
	return func(ctx context.Context, cmd Command) (any, error) {
		c, ok := cmd.(C)
		if !ok {
			return nil, fmt.Errorf("unexpected command type %T", cmd)
		}
		return fn(ctx, c)
	}
}

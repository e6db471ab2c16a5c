package cache

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedStore counts hits, misses and errors of the wrapped Store.
type InstrumentedStore struct {
	next       Store
	operations *prometheus.CounterVec
}

func Instrument(next Store, reg prometheus.Registerer) (*InstrumentedStore, error) {
	s := &InstrumentedStore{
		next: next,
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_operations_total",
				Help: "Cache lookups and writes by result.",
			},
			[]string{"operation", "result"},
		),
	}
	if err := reg.Register(s.operations); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *InstrumentedStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	hit, err := s.next.Get(ctx, key, dst)
	switch {
	case err != nil:
		s.operations.WithLabelValues("get", "error").Inc()
	case hit:
		s.operations.WithLabelValues("get", "hit").Inc()
	default:
		s.operations.WithLabelValues("get", "miss").Inc()
	}
	return hit, err
}

func (s *InstrumentedStore) Set(ctx context.Context, key string, value any, ttl time.Duration, tags ...string) error {
	err := s.next.Set(ctx, key, value, ttl, tags...)
	s.operations.WithLabelValues("set", result(err)).Inc()
	return err
}

func (s *InstrumentedStore) InvalidateTags(ctx context.Context, tags ...string) error {
	err := s.next.InvalidateTags(ctx, tags...)
	s.operations.WithLabelValues("invalidate", result(err)).Inc()
	return err
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

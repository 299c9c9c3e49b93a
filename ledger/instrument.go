package ledger

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// instrumented decorates a Ledger with Prometheus call counters and
// latencies. It forwards every call unmodified; only observation is added.
type instrumented struct {
	next Ledger

	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Instrument wraps next so that every ledger operation is counted (by
// operation and outcome) and timed on the given registerer. A nil registerer
// falls back to the default Prometheus registry.
func Instrument(next Ledger, reg prometheus.Registerer) Ledger {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &instrumented{
		next: next,
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "coalaip",
			Subsystem:   "ledger",
			Name:        "calls_total",
			Help:        "Ledger operations by operation and outcome.",
			ConstLabels: prometheus.Labels{"ledger": next.Type()},
		}, []string{"op", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "coalaip",
			Subsystem:   "ledger",
			Name:        "call_duration_seconds",
			Help:        "Ledger operation latency.",
			ConstLabels: prometheus.Labels{"ledger": next.Type()},
			Buckets:     prometheus.DefBuckets,
		}, []string{"op"}),
	}
}

func (i *instrumented) observe(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	i.calls.WithLabelValues(op, outcome).Inc()
	i.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (i *instrumented) Type() string { return i.next.Type() }

func (i *instrumented) GenerateUser(ctx context.Context, args ...any) (any, error) {
	start := time.Now()
	user, err := i.next.GenerateUser(ctx, args...)
	i.observe("generate_user", start, err)
	return user, err
}

func (i *instrumented) IsSameUser(a, b any) bool {
	return i.next.IsSameUser(a, b)
}

func (i *instrumented) GetHistory(ctx context.Context, persistID string) ([]OwnershipEvent, error) {
	start := time.Now()
	history, err := i.next.GetHistory(ctx, persistID)
	i.observe("get_history", start, err)
	return history, err
}

func (i *instrumented) GetStatus(ctx context.Context, persistID string) (any, error) {
	start := time.Now()
	status, err := i.next.GetStatus(ctx, persistID)
	i.observe("get_status", start, err)
	return status, err
}

func (i *instrumented) Save(ctx context.Context, payload map[string]any, user any) (string, error) {
	start := time.Now()
	id, err := i.next.Save(ctx, payload, user)
	i.observe("save", start, err)
	return id, err
}

func (i *instrumented) Load(ctx context.Context, persistID string) (map[string]any, error) {
	start := time.Now()
	payload, err := i.next.Load(ctx, persistID)
	i.observe("load", start, err)
	return payload, err
}

func (i *instrumented) Transfer(ctx context.Context, persistID string, payload map[string]any, fromUser, toUser any) (string, error) {
	start := time.Now()
	id, err := i.next.Transfer(ctx, persistID, payload, fromUser, toUser)
	i.observe("transfer", start, err)
	return id, err
}

package services

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	operations *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inspection_operations_total",
			Help: "Inspection form operations by entity, operation and result.",
		}, []string{"entity", "operation", "result"}),
	}
	reg.MustRegister(m.operations)
	return m
}

// Observe counts one operation. A nil Metrics is a no-op.
func (m *Metrics) Observe(entity, operation string, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(entity, operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	var (
		ve *ValidationError
		ce *ConflictError
		se *StorageError
	)
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.As(err, &ve):
		return "invalid"
	case errors.As(err, &ce):
		return "conflict"
	case errors.As(err, &se) && se.Conflict:
		return "conflict"
	default:
		return "error"
	}
}

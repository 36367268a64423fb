package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sequenceOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "steam",
		Subsystem: "lessons",
		Name:      "sequence_operations_total",
		Help:      "Lesson insert/delete operations by outcome.",
	}, []string{"op", "result"})

	replacementOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "steam",
		Subsystem: "lessons",
		Name:      "replacements_total",
		Help:      "Lesson replacement requests by outcome.",
	}, []string{"result"})
)

// outcome buckets an error for the counters: business rejections vs failures.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case isBusinessError(err):
		return "rejected"
	default:
		return "error"
	}
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewCounter registers the service's outcome counter on reg.
// Pass prometheus.DefaultRegisterer to expose it through promhttp.Handler.
func NewCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "usermanager",
			Name:      "general_counters",
			Help:      "Outcomes of user requests and use-cases, by result.",
		},
		[]string{"result"})
}

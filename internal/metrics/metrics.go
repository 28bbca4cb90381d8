package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TranslationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translator_translations_total",
			Help: "Total number of translation requests by outcome",
		},
		[]string{"outcome"},
	)

	LedgerOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translator_ledger_operations_total",
			Help: "Total number of wallet operations by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	LedgerAmountTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translator_ledger_amount_total",
			Help: "Sum of amounts moved through wallets by kind",
		},
		[]string{"kind"},
	)

	TasksEnqueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "translator_tasks_enqueued_total",
			Help: "Total number of translation tasks published to the queue",
		},
	)

	TasksHandledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translator_tasks_handled_total",
			Help: "Total number of queued tasks handled by the worker by result",
		},
		[]string{"result"},
	)

	TranslationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "translator_engine_duration_seconds",
			Help:    "Translation engine call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func RecordTranslation(outcome string) {
	TranslationsTotal.WithLabelValues(outcome).Inc()
}

func RecordLedgerOperation(kind, outcome string, amount int64) {
	LedgerOperationsTotal.WithLabelValues(kind, outcome).Inc()
	if outcome == "ok" {
		LedgerAmountTotal.WithLabelValues(kind).Add(float64(amount))
	}
}

func RecordTaskEnqueued() {
	TasksEnqueuedTotal.Inc()
}

func RecordTaskHandled(result string) {
	TasksHandledTotal.WithLabelValues(result).Inc()
}

func ObserveEngineDuration(seconds float64) {
	TranslationDuration.Observe(seconds)
}

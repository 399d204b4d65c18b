package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Validation metrics
	validationResultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lingoreel_validation_results_total",
		Help: "Validated expressions by resulting status",
	}, []string{"status"}) // status=passed|warning|failed

	validationConfidence = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lingoreel_validation_confidence",
		Help:    "Confidence score distribution of validated expressions",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	})

	// Ledger metrics
	ledgerOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lingoreel_ledger_operations_total",
		Help: "Ledger operations by type and outcome",
	}, []string{"op", "outcome"}) // op=load|save|add|blacklist_add|blacklist_remove outcome=success|failure

	ledgerCorruptLoads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lingoreel_ledger_corrupt_loads_total",
		Help: "Ledger loads that found unreadable data and fell back to an empty ledger",
	})

	ledgerExpressions = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "lingoreel_ledger_expressions",
		Help: "Number of expression records in the loaded ledger",
	}, []string{"channel"})

	// Exclusion metrics
	excludedCandidatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lingoreel_excluded_candidates_total",
		Help: "Candidate expressions excluded before validation, by reason",
	}, []string{"reason"}) // reason=blacklisted|recently_used

	// Pipeline metrics
	pipelineRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lingoreel_pipeline_runs_total",
		Help: "Generation pipeline runs by outcome",
	}, []string{"outcome"}) // outcome=success|failure

	pipelineAcceptedExpressions = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lingoreel_pipeline_accepted_expressions",
		Help:    "Accepted expression pairs per pipeline run",
		Buckets: prometheus.LinearBuckets(0, 5, 10),
	})
)

// RecordValidation tracks one validation verdict.
func RecordValidation(status string, confidence float64) {
	validationResultsTotal.WithLabelValues(status).Inc()
	validationConfidence.Observe(confidence)
}

// RecordLedgerOp tracks a ledger operation outcome.
func RecordLedgerOp(op string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	ledgerOpsTotal.WithLabelValues(op, outcome).Inc()
}

// RecordCorruptLoad tracks a ledger load that fell back to an empty ledger.
func RecordCorruptLoad() {
	ledgerCorruptLoads.Inc()
}

// SetLedgerSize publishes the record count of a loaded channel ledger.
func SetLedgerSize(channel string, count int) {
	ledgerExpressions.WithLabelValues(channel).Set(float64(count))
}

// RecordExclusion tracks a candidate removed by the exclusion filter.
func RecordExclusion(reason string) {
	excludedCandidatesTotal.WithLabelValues(reason).Inc()
}

// RecordPipelineRun tracks one full generation run.
func RecordPipelineRun(err error, accepted int) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	pipelineRunsTotal.WithLabelValues(outcome).Inc()
	if err == nil {
		pipelineAcceptedExpressions.Observe(float64(accepted))
	}
}

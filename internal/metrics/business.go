package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Имена операций для метки operation.
const (
	OperationInt     = "int"
	OperationPick    = "pick"
	OperationShuffle = "shuffle"
	OperationCoin    = "coin"
	OperationDice    = "dice"
	OperationTeams   = "teams"
	OperationSpin    = "spin"
)

var (
	draws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "randomizer_draws_total",
			Help: "Total number of successful randomization operations",
		},
		[]string{"operation"},
	)
	rejectedDraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "randomizer_rejected_draws_total",
			Help: "Total number of operations rejected by argument validation",
		},
		[]string{"operation"},
	)
	wheelsCreated = promauto.NewCounter(
		prometheusCounterOpts("wheels_created_total", "Total number of created wheels"),
	)
	entriesRemoved = promauto.NewCounter(
		prometheusCounterOpts("wheel_entries_removed_total", "Total number of winners removed from wheels after a spin"),
	)
)

// IncDraws увеличивает счётчик успешных операций.
func IncDraws(operation string) {
	draws.WithLabelValues(operation).Inc()
}

// IncRejectedDraws увеличивает счётчик операций, отклонённых валидацией.
func IncRejectedDraws(operation string) {
	rejectedDraws.WithLabelValues(operation).Inc()
}

// IncWheelsCreated увеличивает счётчик созданных колёс.
func IncWheelsCreated() {
	wheelsCreated.Inc()
}

// IncEntriesRemoved увеличивает счётчик удалённых победителей.
func IncEntriesRemoved() {
	entriesRemoved.Inc()
}

func prometheusCounterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Name: name,
		Help: help,
	}
}

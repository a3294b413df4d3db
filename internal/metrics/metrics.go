package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	redirectsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkrotator_redirects_total",
			Help: "Total redirect requests by resolution mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	refreshesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkrotator_table_refreshes_total",
			Help: "Total mapping table refresh attempts by outcome",
		},
		[]string{"outcome"},
	)

	groupPicksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkrotator_group_picks_total",
			Help: "Total weighted group selections by redirect id and 1-based group index",
		},
		[]string{"redirect_id", "group_index"},
	)

	cachedRows = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "linkrotator_cached_rows",
		Help: "Number of mapping rows in the current cache generation",
	})

	registerOnce sync.Once
)

// Resolution modes.
const (
	ModeDirect = "direct"
	ModeKeyed  = "keyed"
)

// Redirect outcomes.
const (
	OutcomeRedirect     = "redirect"
	OutcomeFallback     = "fallback"
	OutcomeBadRequest   = "bad_request"
	OutcomeNotFound     = "not_found"
	OutcomeMappingError = "mapping_error"
	OutcomeError        = "error"
)

// Init registers the collectors with reg. Must be called once at startup;
// later calls are ignored. Recording works without registration.
func Init(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(redirectsTotal, refreshesTotal, groupPicksTotal, cachedRows)
	})
}

// RecordRedirect counts one handled redirect request.
func RecordRedirect(mode, outcome string) {
	redirectsTotal.WithLabelValues(mode, outcome).Inc()
}

// RecordRefresh counts one table refresh attempt.
func RecordRefresh(outcome string) {
	refreshesTotal.WithLabelValues(outcome).Inc()
}

// RecordGroupPick counts a weighted selection of the 1-based group index.
func RecordGroupPick(redirectID string, index int) {
	groupPicksTotal.WithLabelValues(redirectID, strconv.Itoa(index)).Inc()
}

// SetCachedRows reports the size of the current cache generation.
func SetCachedRows(n int) {
	cachedRows.Set(float64(n))
}

// Package metrics exposes a running search's statistics as Prometheus
// gauges. A Reporter attaches as a cp.DFSListener, so a search reports
// through the same solution/fail/branch hooks the core already
// defines rather than through a bespoke polling API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gitrdm/corecp/pkg/cp"
)

// Reporter is a cp.DFSListener that counts branch points, failures and
// solutions into Prometheus gauges as they happen. The node gauge
// counts Branch callbacks (one per node with children), not the
// children entered that SearchStatistics.Nodes counts. The counts are
// never reset, so they accumulate over every search the Reporter is
// attached to.
type Reporter struct {
	nodes     prometheus.Gauge
	failures  prometheus.Gauge
	solutions prometheus.Gauge

	nodeCount, failCount, solCount int
}

// NewReporter creates a Reporter and registers its gauges with reg.
// The three gauges are named corecp_search_nodes_total,
// corecp_search_failures_total and corecp_search_solutions_total.
func NewReporter(reg prometheus.Registerer) *Reporter {
	r := &Reporter{
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "corecp_search_nodes_total",
			Help: "Number of branching search nodes reported since the reporter was created.",
		}),
		failures: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "corecp_search_failures_total",
			Help: "Number of backtracks caused by inconsistency.",
		}),
		solutions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "corecp_search_solutions_total",
			Help: "Number of solutions found.",
		}),
	}
	reg.MustRegister(r.nodes, r.failures, r.solutions)
	return r
}

// Solution implements cp.DFSListener.
func (r *Reporter) Solution(parentID, nodeID, position int) {
	r.solCount++
	r.solutions.Set(float64(r.solCount))
}

// Fail implements cp.DFSListener.
func (r *Reporter) Fail(parentID, nodeID, position int) {
	r.failCount++
	r.failures.Set(float64(r.failCount))
}

// Branch implements cp.DFSListener.
func (r *Reporter) Branch(parentID, nodeID, position, nChildren int) {
	r.nodeCount++
	r.nodes.Set(float64(r.nodeCount))
}

var _ cp.DFSListener = (*Reporter)(nil)

// Snapshot reports a search's live StatisticsSnapshot into a one-shot
// set of gauges, for a caller that only wants the final numbers rather
// than per-event updates.
func Snapshot(reg prometheus.Registerer, s cp.StatisticsSnapshot) {
	g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "corecp_search_run_summary",
		Help: "Final per-run search counters, labeled by kind.",
	}, []string{"kind"})
	reg.MustRegister(g)
	g.WithLabelValues("nodes").Set(float64(s.Nodes))
	g.WithLabelValues("failures").Set(float64(s.Failures))
	g.WithLabelValues("solutions").Set(float64(s.Solutions))
}

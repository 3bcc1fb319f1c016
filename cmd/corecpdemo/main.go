// Command corecpdemo is a thin driver over pkg/cp: it builds the
// classic n-queens model, solves it with the core engine, and prints
// the resulting search statistics. A YAML config file selects the
// board size and search mode; an optional metrics listener exposes
// live search counters.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/corecp/internal/metrics"
	"github.com/gitrdm/corecp/pkg/cp"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var metricsAddr string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "corecpdemo",
		Short: "Solve the n-queens model with the corecp finite-domain engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			logger := zap.NewNop().Sugar()
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = l.Sugar()
			}

			var reg *prometheus.Registry
			var reporter *metrics.Reporter
			if metricsAddr != "" {
				reg = prometheus.NewRegistry()
				reporter = metrics.NewReporter(reg)
				srv := &http.Server{Addr: metricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
				go func() {
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						logger.Errorw("metrics server exited", "err", err)
					}
				}()
				logger.Infow("metrics listening", "addr", metricsAddr)
			}

			stats, err := solveNQueens(cfg, logger, reporter)
			if err != nil {
				return err
			}
			fmt.Println(stats)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML run config (optional)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on (empty disables)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable development-mode logging")
	return cmd
}

func solveNQueens(cfg runConfig, logger *zap.SugaredLogger, reporter *metrics.Reporter) (*cp.SearchStatistics, error) {
	n := cfg.Board.Size
	solver := cp.NewSolver(false, cp.WithLogger(logger))

	q, err := cp.NewIntVarArrayRange(solver, n, 0, n-1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := solver.Post(cp.NotEqualVar(q[i], q[j], 0), true); err != nil {
				return nil, err
			}
			if err := solver.Post(cp.NotEqualVar(q[i], q[j], j-i), true); err != nil {
				return nil, err
			}
			if err := solver.Post(cp.NotEqualVar(q[i], q[j], i-j), true); err != nil {
				return nil, err
			}
		}
	}

	search := cp.NewDFS(solver, cp.FirstFail(q))
	if reporter != nil {
		search.AddListener(reporter)
	}

	var limit cp.LimitFunc
	if cfg.Search.LimitNodes > 0 {
		limit = func(s *cp.SearchStatistics) bool { return s.Nodes() >= cfg.Search.LimitNodes }
	}

	if !cfg.Search.Maximize {
		return search.Solve(limit)
	}

	sumVar, err := cp.SumVar(q)
	if err != nil {
		return nil, err
	}
	obj := cp.NewMaximize(sumVar)
	return search.Optimize(obj, limit)
}

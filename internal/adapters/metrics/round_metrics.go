package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RoundMetricsCollector exposes the scoreboard of every running game plus
// the round-advance throughput of the daemon
type RoundMetricsCollector struct {
	// Scoreboard per game
	accountBalance       *prometheus.GaugeVec
	customerSatisfaction *prometheus.GaugeVec
	currentRound         *prometheus.GaugeVec

	// Per-round money flow
	roundCosts  *prometheus.GaugeVec
	roundIncome *prometheus.GaugeVec

	// Advance throughput
	roundsTotal     *prometheus.CounterVec
	advanceDuration *prometheus.HistogramVec
}

// NewRoundMetricsCollector creates a new round metrics collector
func NewRoundMetricsCollector() *RoundMetricsCollector {
	return &RoundMetricsCollector{
		accountBalance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "account_balance",
				Help:      "Account balance of each game after the latest round",
			},
			[]string{"game_id"},
		),

		customerSatisfaction: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "customer_satisfaction",
				Help:      "Customer satisfaction percentage of each game",
			},
			[]string{"game_id"},
		),

		currentRound: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "current_round",
				Help:      "Round number each game currently stands at",
			},
			[]string{"game_id"},
		),

		roundCosts: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "round_costs",
				Help:      "Total costs booked in the latest round of each game",
			},
			[]string{"game_id"},
		),

		roundIncome: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "round_income",
				Help:      "Total income booked in the latest round of each game",
			},
			[]string{"game_id"},
		),

		roundsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "rounds_total",
				Help:      "Total number of round advances computed",
			},
			[]string{"game_id"},
		),

		advanceDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "advance_duration_seconds",
				Help:      "Wall time of one round advance including persistence",
				Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"game_id"},
		),
	}
}

// Register registers all round metrics with the Prometheus registry
func (c *RoundMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.accountBalance,
		c.customerSatisfaction,
		c.currentRound,
		c.roundCosts,
		c.roundIncome,
		c.roundsTotal,
		c.advanceDuration,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordRound records the result of one round advance
func (c *RoundMetricsCollector) RecordRound(
	gameID string,
	round int,
	balance, satisfaction, costs, income float64,
	duration time.Duration,
) {
	c.accountBalance.WithLabelValues(gameID).Set(balance)
	c.customerSatisfaction.WithLabelValues(gameID).Set(satisfaction)
	c.currentRound.WithLabelValues(gameID).Set(float64(round))
	c.roundCosts.WithLabelValues(gameID).Set(costs)
	c.roundIncome.WithLabelValues(gameID).Set(income)
	c.roundsTotal.WithLabelValues(gameID).Inc()
	c.advanceDuration.WithLabelValues(gameID).Observe(duration.Seconds())
}

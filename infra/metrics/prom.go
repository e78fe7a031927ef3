package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/examdist/core/metrics"
)

// PromSink keeps the figures of the last plan in Prometheus collectors. A
// CLI run is short lived, so the registry is dumped to a node-exporter
// text file instead of being scraped.
type PromSink struct {
	reg      *prometheus.Registry
	textfile string

	items    prometheus.Gauge
	days     prometheus.Gauge
	capacity prometheus.Gauge
	daily    prometheus.Gauge
	slots    *prometheus.GaugeVec
	runs     prometheus.Counter
	duration prometheus.Histogram
}

// NewPromSink creates a sink on a private registry. An empty textfile keeps
// the metrics in memory only.
func NewPromSink(textfile string) (*PromSink, error) {
	s := &PromSink{
		reg:      prometheus.NewRegistry(),
		textfile: textfile,
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "examdist_items_total",
			Help: "Number of examinees in the last plan",
		}),
		days: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "examdist_days_needed",
			Help: "Days required by the last plan",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "examdist_capacity_per_round",
			Help: "Seats available in one round across all labs",
		}),
		daily: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "examdist_daily_capacity",
			Help: "Seats available in one day",
		}),
		slots: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "examdist_slot_items",
			Help: "Examinees placed per day and round",
		}, []string{"day", "round"}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "examdist_plans_total",
			Help: "Number of plans recorded",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "examdist_plan_duration_seconds",
			Help:    "Time spent computing a plan",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	for _, c := range []prometheus.Collector{s.items, s.days, s.capacity, s.daily, s.slots, s.runs, s.duration} {
		if err := s.reg.Register(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Registry exposes the underlying registry, mainly for tests.
func (s *PromSink) Registry() *prometheus.Registry { return s.reg }

// RecordPlan replaces the gauges with the figures of ev and writes the text
// file when configured.
func (s *PromSink) RecordPlan(ev coremetrics.PlanEvent) error {
	s.items.Set(float64(ev.TotalItems))
	s.days.Set(float64(ev.DaysNeeded))
	s.capacity.Set(float64(ev.CapacityPerRound))
	s.daily.Set(float64(ev.DailyCapacity))
	s.slots.Reset()
	for d, counts := range ev.SlotCounts {
		for r, c := range counts {
			s.slots.WithLabelValues(strconv.Itoa(d+1), strconv.Itoa(r+1)).Set(float64(c))
		}
	}
	s.runs.Inc()
	s.duration.Observe(ev.Duration.Seconds())
	if s.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(s.textfile, s.reg)
}

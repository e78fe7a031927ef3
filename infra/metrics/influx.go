package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/examdist/core/metrics"
	"github.com/kilianp07/examdist/infra/logger"
)

// InfluxSink writes plan figures to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopRecorder if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.PlanRecorder {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Warnf("influx health check error: %v, metrics disabled", err)
		} else {
			sink.log.Warnf("influx health status: %s, metrics disabled", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopRecorder{}
	}
	return sink
}

// RecordPlan writes one allocation_plan point and one allocation_slot point
// per (day, round).
func (s *InfluxSink) RecordPlan(ev coremetrics.PlanEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	points := []*write.Point{planPoint(ev)}
	for d, counts := range ev.SlotCounts {
		for r, c := range counts {
			p := write.NewPointWithMeasurement("allocation_slot").
				AddTag("day", strconv.Itoa(d+1)).
				AddTag("round", strconv.Itoa(r+1)).
				AddTag("run_id", ev.RunID).
				AddField("items", c).
				SetTime(ev.Time)
			points = append(points, p)
		}
	}
	return s.writeAPI.WritePoint(ctx, points...)
}

// Close releases the client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func planPoint(ev coremetrics.PlanEvent) *write.Point {
	return write.NewPointWithMeasurement("allocation_plan").
		AddTag("run_id", ev.RunID).
		AddField("items", ev.TotalItems).
		AddField("centers", ev.Centers).
		AddField("labs", ev.Units).
		AddField("rounds_per_day", ev.RoundsPerDay).
		AddField("capacity_per_round", ev.CapacityPerRound).
		AddField("daily_capacity", ev.DailyCapacity).
		AddField("days_needed", ev.DaysNeeded).
		AddField("duration_ms", float64(ev.Duration.Microseconds())/1000).
		SetTime(ev.Time)
}

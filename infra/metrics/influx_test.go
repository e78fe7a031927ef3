package metrics

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/stretchr/testify/assert"

	coremetrics "github.com/kilianp07/examdist/core/metrics"
	"github.com/kilianp07/examdist/infra/logger"
)

func TestInfluxSink_RecordPlan(t *testing.T) {
	var (
		mu   sync.Mutex
		body string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		mu.Lock()
		body = string(data)
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()
	ev := sampleEvent()
	if err := sink.RecordPlan(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %s", len(lines), body)
	}
	expected := strings.TrimSpace(write.PointToLineProtocol(planPoint(ev), time.Nanosecond))
	assert.Equal(t, expected, lines[0])
	assert.Contains(t, lines[2], "allocation_slot,day=1,round=2,run_id=run-1 items=2i")
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			called = true
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}))
	defer srv.Close()

	var logs bytes.Buffer
	logger.Configure(logger.Options{Format: "json", Out: &logs})
	t.Cleanup(func() { logger.Configure(logger.Options{}) })

	rec := NewInfluxSinkWithFallback(srv.URL+"/api/v2/write", "tok", "org", "bucket")
	if _, ok := rec.(*InfluxSink); ok {
		t.Fatalf("expected NopRecorder on failing health check")
	}
	if _, ok := rec.(coremetrics.NopRecorder); !ok {
		t.Fatalf("unexpected recorder %T", rec)
	}
	if !called {
		t.Fatalf("health endpoint not queried")
	}
	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.NotContains(t, logs.String(), `"level":"error"`)
	assert.Contains(t, logs.String(), "metrics disabled")
}

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/examdist/config"
	"github.com/kilianp07/examdist/core/allocation"
	"github.com/kilianp07/examdist/core/catalog"
	coremetrics "github.com/kilianp07/examdist/core/metrics"
	"github.com/kilianp07/examdist/infra/logger"
	_ "github.com/kilianp07/examdist/infra/metrics" // registers recorders
	"github.com/kilianp07/examdist/infra/roster"
	"github.com/kilianp07/examdist/pkg/export"
)

// Service runs the read, plan and export steps described by a Config.
type Service struct {
	cfg      *config.Config
	log      logger.Logger
	recorder coremetrics.PlanRecorder
	exporter export.Exporter
	now      func() time.Time
}

// Run is the outcome of one planning pass.
type Run struct {
	ID     string
	Roster *roster.Roster
	Plan   *allocation.Plan
}

// Report renders the text summary of the run.
func (r *Run) Report() string {
	return allocation.Report(r.Plan)
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	rec, err := coremetrics.NewRecorder(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	exp, err := export.New(cfg.Export.Sinks, cfg.Export.Dir)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return &Service{
		cfg:      cfg,
		log:      logger.New("service"),
		recorder: rec,
		exporter: exp,
		now:      time.Now,
	}, nil
}

// Plan reads the configured workbook and computes the allocation.
func (s *Service) Plan(ctx context.Context) (*Run, error) {
	if s.cfg.Input.Path == "" {
		return nil, fmt.Errorf("no input workbook configured")
	}
	r, err := roster.Read(s.cfg.Input.Path, s.cfg.Input.Sheet)
	if err != nil {
		return nil, err
	}
	s.log.Infow("roster loaded", map[string]any{
		"path":      s.cfg.Input.Path,
		"sheet":     r.Sheet,
		"examinees": r.Len(),
	})
	return s.PlanRoster(ctx, r)
}

// PlanRoster computes the allocation for an already loaded roster.
func (s *Service) PlanRoster(ctx context.Context, r *roster.Roster) (*Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cat, err := catalog.Build(s.cfg.CenterModels())
	if err != nil {
		return nil, err
	}
	start := s.now()
	plan, err := allocation.ComputePlan(cat, s.cfg.Schedule(r.Len()))
	if err != nil {
		return nil, err
	}
	run := &Run{ID: uuid.NewString(), Roster: r, Plan: plan}
	took := s.now().Sub(start)
	s.log.Infow("plan computed", map[string]any{
		"run_id":             run.ID,
		"examinees":          plan.TotalItems,
		"labs":               len(plan.Units),
		"capacity_per_round": plan.CapacityPerRound,
		"days":               plan.DaysNeeded,
	})
	if err := s.recorder.RecordPlan(coremetrics.NewPlanEvent(run.ID, plan, took, s.now())); err != nil {
		s.log.Warnf("record plan metrics: %v", err)
	}
	return run, nil
}

// Export writes the rosters of run with the configured exporters.
func (s *Service) Export(ctx context.Context, run *Run) error {
	b, err := export.NewBatch(run.ID, run.Plan, run.Roster)
	if err != nil {
		return err
	}
	if err := s.exporter.Export(ctx, b); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	s.log.Infow("export done", map[string]any{
		"run_id":   run.ID,
		"exporter": s.exporter.Name(),
		"slots":    len(b.Groups),
	})
	return nil
}

type closer interface{ Close() }

// Close releases resources held by the recorders.
func (s *Service) Close() error {
	recs := []coremetrics.PlanRecorder{s.recorder}
	if m, ok := s.recorder.(*coremetrics.MultiRecorder); ok {
		recs = m.Recorders
	}
	for _, r := range recs {
		if c, ok := r.(closer); ok {
			c.Close()
		}
	}
	return nil
}

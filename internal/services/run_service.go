// Package services orchestrates the sanitization run: read the raw
// table, run the pipeline, write both output views, persist the run
// and announce it.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"umsatz/internal/amqp"
	"umsatz/internal/core"
	"umsatz/internal/log"
	"umsatz/internal/pipeline"
	"umsatz/internal/storage"
	"umsatz/internal/table"
)

// RunService wires one sanitization run end to end. Store and notifier
// are optional; sinks receive both the wide and the long view.
type RunService struct {
	source   table.Source
	sinks    []table.Sink
	store    *storage.Repository
	notifier *amqp.Client
	regions  pipeline.RegionTable
}

func NewRunService(source table.Source, sinks []table.Sink, store *storage.Repository, notifier *amqp.Client) *RunService {
	return &RunService{
		source:   source,
		sinks:    sinks,
		store:    store,
		notifier: notifier,
		regions:  pipeline.DefaultRegionTable(),
	}
}

// Run executes one sanitization run. Pipeline errors and sink write
// failures abort the run; a failed announcement is logged and ignored
// since the run itself already succeeded.
func (s *RunService) Run(ctx context.Context) (pipeline.Output, error) {
	tbl, err := s.source.Read(ctx)
	if err != nil {
		return pipeline.Output{}, fmt.Errorf("read input: %w", err)
	}

	out, err := pipeline.Run(tbl, s.regions)
	if err != nil {
		return pipeline.Output{}, fmt.Errorf("sanitize: %w", err)
	}

	wide := pipeline.WideView(out.Dataset)
	long := pipeline.FactsView(out.Facts)
	for _, sink := range s.sinks {
		if err := sink.WriteView(ctx, table.ViewWide, wide); err != nil {
			return pipeline.Output{}, fmt.Errorf("write %s view: %w", table.ViewWide, err)
		}
		if err := sink.WriteView(ctx, table.ViewFacts, long); err != nil {
			return pipeline.Output{}, fmt.Errorf("write %s view: %w", table.ViewFacts, err)
		}
	}

	var runID int64
	if s.store != nil {
		runID, err = s.store.SaveRun(ctx, out.Dataset, out.Diag)
		if err != nil {
			return pipeline.Output{}, fmt.Errorf("persist run: %w", err)
		}
	}

	if s.notifier != nil {
		msg := amqp.NewRunCompletedMessage(runID, out.Diag)
		if err := s.notifier.PublishRunCompleted(ctx, msg); err != nil {
			slog.WarnContext(ctx, "Failed to announce completed run",
				log.FieldError, err, log.FieldRunID, runID,
				log.FieldComponent, log.ComponentAMQP)
		}
	}

	logRun(ctx, out.Diag)
	return out, nil
}

func logRun(ctx context.Context, diag core.Diagnostics) {
	slog.InfoContext(ctx, "Sanitization run completed",
		log.FieldComponent, log.ComponentPipeline,
		log.FieldRecords, diag.RecordCount,
		log.FieldMonths, diag.MonthCount,
		"first_month", diag.FirstMonth.String(),
		"last_month", diag.LastMonth.String(),
		log.FieldWarnings, diag.Warnings())
}

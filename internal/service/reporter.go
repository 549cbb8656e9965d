package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"auja/internal/domain"
)

// Reporter runs the fetch, format, send pipeline exactly once. The first
// failing stage aborts the remainder; nothing is partially sent.
type Reporter struct {
	source   domain.IssueSource
	notifier domain.Notifier
	now      func() time.Time
}

func NewReporter(source domain.IssueSource, notifier domain.Notifier) *Reporter {
	return &Reporter{
		source:   source,
		notifier: notifier,
		now:      time.Now,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	log.WithField("stage", "fetch").Info("requesting unassigned issues")
	issues, err := r.source.FetchUnassigned(ctx)
	if err != nil {
		return fmt.Errorf("fetching unassigned issues: %w", err)
	}

	log.WithFields(log.Fields{
		"stage":  "format",
		"issues": len(issues),
	}).Info("generating report body")
	report, err := BuildReport(issues, r.now())
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	log.WithField("stage", "send").Info("delivering report")
	if err := r.notifier.Send(ctx, report); err != nil {
		return fmt.Errorf("sending report: %w", err)
	}

	log.WithField("issues", len(issues)).Info("report run completed")
	return nil
}

// Package refresh periodically reloads workspace snapshots so stale
// projections are dropped before a page asks for them.
package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/IamTheLime/airbyte/internal/resources"
)

// SnapshotLoader loads one workspace snapshot.
type SnapshotLoader interface {
	Load(ctx context.Context, workspaceID string) (*resources.Snapshot, error)
}

// Purger drops cached projections of a workspace.
type Purger interface {
	PurgeWorkspace(workspaceID string) int
}

// Refresher reloads a fixed set of workspaces on a cron schedule.
type Refresher struct {
	cronRunner *cron.Cron
	loader     SnapshotLoader
	purger     Purger
	schedule   string
	workspaces []string
	timeout    time.Duration
}

func NewRefresher(loader SnapshotLoader, purger Purger, schedule string, workspaces []string) *Refresher {
	cronLogger := cron.PrintfLogger(logrus.StandardLogger())
	return &Refresher{
		cronRunner: cron.New(
			cron.WithChain(
				cron.SkipIfStillRunning(cronLogger),
				cron.Recover(cronLogger),
			),
		),
		loader:     loader,
		purger:     purger,
		schedule:   schedule,
		workspaces: workspaces,
		timeout:    30 * time.Second,
	}
}

// Start schedules RefreshAll and starts the cron runner. With no workspaces
// configured nothing is scheduled.
func (r *Refresher) Start() error {
	if len(r.workspaces) == 0 {
		logrus.Info("No workspaces to preload, snapshot refresh disabled")
		return nil
	}
	if _, err := r.cronRunner.AddFunc(r.schedule, r.RefreshAll); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", r.schedule, err)
	}
	r.cronRunner.Start()
	logrus.WithFields(logrus.Fields{
		"schedule":   r.schedule,
		"workspaces": len(r.workspaces),
	}).Info("Snapshot refresh scheduled")
	return nil
}

// Stop stops the runner; the returned context is done once running jobs finish.
func (r *Refresher) Stop() context.Context {
	return r.cronRunner.Stop()
}

// RefreshAll reloads every configured workspace. Failures are logged only.
func (r *Refresher) RefreshAll() {
	for _, workspaceID := range r.workspaces {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		if err := r.RefreshWorkspace(ctx, workspaceID); err != nil {
			logrus.WithError(err).WithField("workspace_id", workspaceID).Warn("Snapshot refresh failed")
		}
		cancel()
	}
}

// RefreshWorkspace loads one snapshot and purges the workspace's cached
// projections when its collections changed.
func (r *Refresher) RefreshWorkspace(ctx context.Context, workspaceID string) error {
	snap, err := r.loader.Load(ctx, workspaceID)
	if err != nil {
		return err
	}
	if !snap.Changed {
		return nil
	}
	removed := r.purger.PurgeWorkspace(workspaceID)
	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"generation":   snap.Generation,
		"purged":       removed,
	}).Debug("Workspace snapshot changed")
	return nil
}

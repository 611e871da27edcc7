package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/wahlandcase/attuned.repodash/internal/models"
)

// CommitChanges stages everything and commits it with an operator-supplied message
func (o *Orchestrator) CommitChanges(ctx context.Context) (models.SyncReport, error) {
	var report models.SyncReport

	changes, err := o.git.Porcelain(ctx)
	if err != nil {
		return report, fmt.Errorf("reading working tree status: %w", err)
	}
	if len(changes) == 0 {
		report.Skip(models.PhaseCommit, "nothing to commit")
		return report, nil
	}

	msg, err := o.prompt.Input("Commit message")
	if err != nil {
		return report, err
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return report, ErrEmptyMessage
	}

	if err := o.git.AddAll(ctx); err != nil {
		report.Add(models.PhaseCommit, false, err.Error())
		return report, ctx.Err()
	}
	if err := o.git.Commit(ctx, msg, false); err != nil {
		report.Add(models.PhaseCommit, false, err.Error())
		return report, ctx.Err()
	}

	o.log.Info("Committed changes", "files", len(changes))
	report.Add(models.PhaseCommit, true, fmt.Sprintf("committed %d change(s): %s", len(changes), msg))
	return report, nil
}

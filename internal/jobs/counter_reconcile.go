// Package jobs contains River queue background workers.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"aquafarm.io/steward/ent"
	"aquafarm.io/steward/ent/equipment"
	"aquafarm.io/steward/internal/pkg/logger"
)

// CounterReconcileArgs is a periodic maintenance job that repairs drift in
// the denormalized sub_equipment_count column. The cascade keeps the
// counter exact for deletes it executes, but crashes between the guard
// check and the decrement, or writes from older tooling, can leave it off
// by a few.
type CounterReconcileArgs struct{}

// Kind returns the job kind identifier for counter reconciliation.
func (CounterReconcileArgs) Kind() string { return "counter_reconcile" }

// InsertOpts ensures at most one reconcile job is enqueued per hour.
func (CounterReconcileArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// CounterReconcileWorker recomputes sub_equipment_count from the live
// child rows and rewrites rows that drifted.
type CounterReconcileWorker struct {
	river.WorkerDefaults[CounterReconcileArgs]
	entClient *ent.Client
}

// NewCounterReconcileWorker creates a reconcile worker.
func NewCounterReconcileWorker(entClient *ent.Client) *CounterReconcileWorker {
	return &CounterReconcileWorker{entClient: entClient}
}

// Work recounts children per parent and fixes mismatches.
func (w *CounterReconcileWorker) Work(ctx context.Context, _ *river.Job[CounterReconcileArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("counter reconcile worker is not initialized")
	}

	rows, err := w.entClient.Equipment.Query().
		Where(equipment.IsDeleted(false)).
		Select(equipment.FieldID, equipment.FieldParentEquipmentID, equipment.FieldSubEquipmentCount).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load equipment for reconcile: %w", err)
	}

	childCount := make(map[string]int, len(rows))
	for _, row := range rows {
		if row.ParentEquipmentID != "" {
			childCount[row.ParentEquipmentID]++
		}
	}

	fixed := 0
	for _, row := range rows {
		want := childCount[row.ID]
		if row.SubEquipmentCount == want {
			continue
		}
		if err := w.entClient.Equipment.UpdateOneID(row.ID).
			SetSubEquipmentCount(want).
			Exec(ctx); err != nil {
			return fmt.Errorf("fix counter of equipment %s: %w", row.ID, err)
		}
		logger.Warn("sub_equipment_count drift repaired",
			zap.String("equipment_id", row.ID),
			zap.Int("stored", row.SubEquipmentCount),
			zap.Int("actual", want),
		)
		fixed++
	}

	logger.Info("counter reconcile completed",
		zap.Int("scanned", len(rows)),
		zap.Int("fixed", fixed),
	)
	return nil
}

package reconcile

import (
	"context"
	"fmt"

	"github.com/sw33tLie/chanrotate/internal/utils"
)

// ChannelReconciler is satisfied by *Reconciler.
type ChannelReconciler interface {
	Reconcile(ctx context.Context, channelID int64) (Report, error)
}

// Run reconciles channelIDs one after another, in the given order. The first
// failing channel stops the run; the returned reports cover only the channels
// that completed.
func Run(ctx context.Context, r ChannelReconciler, channelIDs []int64) ([]Report, error) {
	reports := make([]Report, 0, len(channelIDs))
	for i, id := range channelIDs {
		utils.Log.Infof("Processing channel %d (%d/%d)", id, i+1, len(channelIDs))
		rep, err := r.Reconcile(ctx, id)
		if err != nil {
			return reports, fmt.Errorf("channel %d: %w", id, err)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

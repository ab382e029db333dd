package driver

import (
	"context"
	"time"

	"github.com/cmkit/cmkit/internal/core/ports"
)

// react consumes change notifications for the cache path and reloads after
// each one. External tools and manual edits rewrite the cache outside of any
// Configure call; this loop keeps the snapshots honest regardless.
//
// Each reload runs detached from the notification that triggered it: there
// is no caller to propagate to, so failures go to the process-wide reporter
// instead of being dropped. The loop ends when the subscription is released.
func (d *Legacy) react(sub ports.Subscription) {
	defer close(d.reactorDone)

	for range sub.Events() {
		if err := d.Reload(context.Background()); err != nil {
			d.reporter.Report(ports.ReloadFailure{
				BinaryDir: d.opts.BinaryDir,
				Err:       err,
				At:        time.Now(),
			})
			continue
		}
		d.logger.Info("cache file changed on disk, snapshots reloaded")
	}
}

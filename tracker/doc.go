// Package tracker wraps long-running client tasks with progress tracking.
//
// A Tracker records a timestamped, leveled entry for the task's start,
// every progress message, and its completion, and publishes its full state
// into an observable store after each mutation so the UI can re-render the
// task's log live. Panics inside the task never escape Run; they are
// recovered and recorded like any other failure.
//
//	st := store.New(tracker.State{})
//	t := tracker.New("sync feed", st)
//	_ = t.Run(ctx, func(ctx context.Context, p *tracker.Progress) error {
//	    p.Log("fetching %d items", n)
//	    return syncFeed(ctx)
//	})
package tracker

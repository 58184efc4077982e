// Package pipeline provides lazy, pull-based sequences for the client kit.
//
// Pipelines do no work until values are pulled via Collect, ForEach, or
// Iter. Each stage pulls from the previous one on demand, so backpressure
// is implicit.
//
// The centerpiece is Prefetch: an ordered, concurrency-bounded Map. It
// pipelines transform latency against consumption — up to count transforms
// run ahead of the consumer — while yielding results strictly in source
// order. Typical use is fetching and decoding feed items a few steps ahead
// of the UI rendering them:
//
//	items := pipeline.FromChannel(feed)
//	loaded := pipeline.Prefetch(items, 4, loadItem)
//	err := pipeline.ForEach(ctx, loaded, render)
//
// Map and Filter cover the synchronous cases; both preserve order trivially
// by running in the caller's goroutine.
package pipeline

package pipeline

import "context"

// Prefetch applies fn to each value concurrently while preserving source
// order. It keeps a FIFO window of in-flight transforms: each source value
// is submitted as soon as it is pulled, and once the window grows past
// count the oldest transform is awaited and yielded. At most count+1
// transforms are ever outstanding (the bound is enforced after submission).
//
// Results are yielded strictly in source order; a fast-completing later
// transform never overtakes a slow earlier one. With count = 0 processing
// is fully sequential: submit, then immediately await.
//
// A transform error surfaces at the position of the failed value. The rest
// of the window and the unconsumed source are unaffected, so iteration may
// continue past the failure with further Next calls. Collect and ForEach
// stop at the first error as usual.
//
// Abandoning the iterator does not cancel transforms already submitted;
// they run to completion in the background unless ctx is canceled.
func Prefetch[I, O any](p *Pipeline[I], count int, fn func(context.Context, I) (O, error)) *Pipeline[O] {
	if count < 0 {
		count = 0
	}
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &prefetchIter[I, O]{
				source: p.create(ctx),
				count:  count,
				fn:     fn,
			}
		},
	}
}

// pending is the handle for one submitted transform. done is closed once
// val/err are set.
type pending[O any] struct {
	done chan struct{}
	val  O
	err  error
}

type prefetchIter[I, O any] struct {
	source Iterator[I]
	count  int
	fn     func(context.Context, I) (O, error)

	window  []*pending[O] // oldest first
	srcDone bool
	srcErr  error
}

func (it *prefetchIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	// Refill: pull and submit until the window exceeds the bound, then
	// settle the oldest entry. Submission happens before the bound check,
	// which is where the count+1 ceiling comes from.
	for !it.srcDone && len(it.window) <= it.count {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			it.srcDone = true
			it.srcErr = err
			break
		}
		if !ok {
			it.srcDone = true
			break
		}
		it.window = append(it.window, it.submit(ctx, val))
	}

	if len(it.window) == 0 {
		var zero O
		if err := it.srcErr; err != nil {
			it.srcErr = nil
			return zero, false, err
		}
		return zero, false, nil
	}

	oldest := it.window[0]
	it.window = it.window[1:]
	select {
	case <-oldest.done:
	case <-ctx.Done():
		var zero O
		return zero, false, ctx.Err()
	}
	if oldest.err != nil {
		var zero O
		return zero, false, oldest.err
	}
	return oldest.val, true, nil
}

func (it *prefetchIter[I, O]) submit(ctx context.Context, val I) *pending[O] {
	p := &pending[O]{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.val, p.err = it.fn(ctx, val)
	}()
	return p
}

func (it *prefetchIter[I, O]) Close() error {
	// In-flight transforms are not canceled here; see Prefetch docs.
	return it.source.Close()
}

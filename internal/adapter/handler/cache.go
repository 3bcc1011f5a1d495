package handler

import "context"

// SummaryCache caches the rendered action item summary between requests. A
// nil cache disables caching; Invalidate on a nil or failing cache is a
// no-op from the caller's point of view.
type SummaryCache interface {
	Get(ctx context.Context) ([]byte, bool)
	Set(ctx context.Context, payload []byte)
	Invalidate(ctx context.Context)
}

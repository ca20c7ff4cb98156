package engine

import (
	"context"

	"catalog-sync/core/catalog"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Watermarks maps group to catalog to the latest updated value, or nil for
// catalogs without rows.
type Watermarks map[string]map[string]*int64

// Watermarks probes every catalog concurrently. A failing probe yields nil
// for that catalog and never fails the whole result.
func (e *Engine) Watermarks(ctx context.Context) Watermarks {
	descs := e.registry.All()
	marks := make([]*int64, len(descs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.watermarkLimit)
	for i, desc := range descs {
		i, desc := i, desc
		g.Go(func() error {
			marks[i] = e.watermark(gctx, desc)
			return nil
		})
	}
	_ = g.Wait()

	out := make(Watermarks)
	for i, desc := range descs {
		group, ok := out[desc.Group]
		if !ok {
			group = make(map[string]*int64)
			out[desc.Group] = group
		}
		group[desc.Name] = marks[i]
	}
	return out
}

// watermark is the max updated over all watermark sources of desc, deleted
// rows included.
func (e *Engine) watermark(ctx context.Context, desc *catalog.Descriptor) *int64 {
	var best *int64
	for _, table := range desc.WatermarkSources() {
		v, err := e.store.MaxUpdated(ctx, table)
		if err != nil {
			e.logger.Error("Watermark probe failed",
				zap.String("catalog", desc.Name),
				zap.String("table", table),
				zap.Error(err))
			return nil
		}
		if v != nil && (best == nil || *v > *best) {
			best = v
		}
	}
	return best
}

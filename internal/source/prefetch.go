package source

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"
)

// RenderAll rasterizes every page of src concurrently and returns them in
// page order. Rendering is CPU bound, so workers is typically the core
// count.
func RenderAll(ctx context.Context, src Source, dpi, workers int) ([]image.Image, error) {
	n := src.PageCount()
	if n == 0 {
		return nil, nil
	}
	if workers < 1 {
		workers = 1
	}

	pages := make([]image.Image, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := src.RenderPage(i, dpi)
			if err != nil {
				return fmt.Errorf("render page %d: %w", i, err)
			}
			pages[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

package walk

import (
	"context"

	"github.com/san-kum/dlasim/internal/vec"
)

// Sample generates count walks of length steps on w, applying the basis to
// each, and passes every end-to-end distance to fn. It stops early when ctx
// is cancelled or fn returns an error.
func Sample[V vec.Vector[V]](ctx context.Context, w *Walk[V], length, count int, fn func(i int, distance float64) error) error {
	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := w.Generate(length); err != nil {
			return err
		}
		if err := fn(i, w.ApplyBasis().Distance()); err != nil {
			return err
		}
	}
	return nil
}

package domain

import (
	"context"

	m "github.com/mouse-blink/uniconv/internal/model"
	"golang.org/x/sync/errgroup"
)

// Preview converts text with every registered converter concurrently.
// Conversion failures are reported per row; only registry failures or
// cancellation abort the whole preview.
func (t Transformer) Preview(ctx context.Context, reg Registry, text string) ([]m.PreviewRow, error) {
	infos := reg.Converters()
	rows := make([]m.PreviewRow, len(infos))

	g, ctx := errgroup.WithContext(ctx)

	for i, info := range infos {
		i, info := i, info
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			conv, err := reg.GetConverter(info.Type)
			if err != nil {
				return err
			}

			out, err := t.Transform(conv, text)
			rows[i] = m.PreviewRow{
				Type:   info.Type,
				Name:   info.Name,
				Output: out,
				Err:    err,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

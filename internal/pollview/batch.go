package pollview

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"nuclight.org/pollview/internal/poll"
)

// Input is one poll message to classify.
type Input struct {
	Definition *poll.Definition
	Status     poll.DeliveryStatus
	Aggregate  *poll.Aggregate
	Edited     bool
}

// ClassifyAll classifies a batch of polls concurrently, at most
// Settings.Workers at a time. States are returned in input order. The first
// error cancels the remaining work.
func (c *Classifier) ClassifyAll(ctx context.Context, inputs []Input) ([]State, error) {
	states := make([]State, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.settings.Workers)

	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := c.Classify(in.Definition, in.Status, in.Aggregate, in.Edited)
			if err != nil {
				return fmt.Errorf("classify poll %d: %w", i, err)
			}
			states[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return states, nil
}

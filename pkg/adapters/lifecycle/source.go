package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/stratum/pkg/core"
)

type vaultSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits vault events.
// It bridges the typed event channel to the generic lifecycle Event
// interface.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &vaultSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *vaultSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *vaultSource) Start(ctx context.Context) error {
	// Uses lifecycle.Go so the bridge itself is tracked and stops cleanly.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}

package fft

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// forwarder is the subset of an algo-fft plan the engine needs.
type forwarder interface {
	Forward(dst, src []complex128) error
}

// planCache holds one algo-fft plan per transform length.
type planCache struct {
	mu    sync.Mutex
	plans map[int]forwarder
}

func (c *planCache) get(n int) (forwarder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.plans[n]; ok {
		return p, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: plan for %d: %w", ErrBackend, n, err)
	}

	if c.plans == nil {
		c.plans = make(map[int]forwarder)
	}
	c.plans[n] = plan
	return plan, nil
}

// forward transforms x in place through a cached plan.
func (c *planCache) forward(x []complex128) error {
	plan, err := c.get(len(x))
	if err != nil {
		return err
	}

	out := make([]complex128, len(x))
	if err := plan.Forward(out, x); err != nil {
		return fmt.Errorf("%w: forward %d: %w", ErrBackend, len(x), err)
	}

	copy(x, out)
	return nil
}

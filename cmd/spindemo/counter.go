package main

import (
	"flag"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants"

	"github.com/ahrav/go-spinlock/spin"
)

const (
	defaultWorkers    = 100
	defaultIterations = 1000
)

func counterCommand(args []string) error {
	fs := flag.NewFlagSet("counter", flag.ContinueOnError)
	workers := fs.Int("workers", defaultWorkers, "number of concurrent workers")
	iterations := fs.Int("iterations", defaultIterations, "locked increments per worker")
	strategyName := fs.String("strategy", "spin", "wait strategy: spin, yield, backoff or adaptive")
	if err := fs.Parse(args); err != nil {
		return err
	}

	strategy, err := parseStrategy(*strategyName)
	if err != nil {
		return err
	}

	fmt.Printf("Starting %d workers, each incrementing the counter %d times (%s)\n", *workers, *iterations, *strategyName)
	start := time.Now()

	got, err := runCounter(*workers, *iterations, strategy)
	if err != nil {
		return err
	}

	fmt.Printf("%d\n", got)
	fmt.Printf("finished in %v\n", time.Since(start))

	if want := *workers * *iterations; got != want {
		return fmt.Errorf("counter = %d, want %d", got, want)
	}
	return nil
}

// runCounter shares one Mutex between workers tasks on a goroutine pool, each adding
// iterations to it under the lock, and returns the final value.
func runCounter(workers, iterations int, strategy spin.Strategy) (int, error) {
	counter := spin.New(0, spin.WithStrategy(strategy))
	if workers <= 0 {
		return 0, nil
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return 0, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			for range iterations {
				counter.Do(func(v *int) { *v++ })
			}
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return 0, fmt.Errorf("submitting worker %d: %w", i, err)
		}
	}
	wg.Wait()

	return spin.WithLock(counter, func(v *int) int { return *v }), nil
}

func parseStrategy(name string) (spin.Strategy, error) {
	switch name {
	case "spin":
		return spin.Spin{}, nil
	case "yield":
		return spin.Yield{}, nil
	case "backoff":
		return spin.Backoff{}, nil
	case "adaptive":
		return spin.Adaptive{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

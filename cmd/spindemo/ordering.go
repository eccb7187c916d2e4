package main

import (
	"cmp"
	"flag"
	"fmt"
	"slices"

	"github.com/ahrav/go-spinlock/ordering"
)

func orderingCommand(args []string) error {
	fs := flag.NewFlagSet("ordering", flag.ContinueOnError)
	runs := fs.Int("runs", 1000, "number of experiment runs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	outcomes := ordering.Tally(*runs, func() ordering.SeqCstResult { return ordering.RunSeqCst() })

	keys := sortedKeys(outcomes, func(a, b ordering.SeqCstResult) int {
		return cmp.Or(
			cmp.Compare(a.Count, b.Count),
			compareBool(a.XObserverSawY, b.XObserverSawY),
			compareBool(a.YObserverSawX, b.YObserverSawX),
		)
	})

	var invalid int
	for _, res := range keys {
		fmt.Printf("z=%d x-observer-saw-y=%t y-observer-saw-x=%t: %d runs\n",
			res.Count, res.XObserverSawY, res.YObserverSawX, outcomes[res])
		if !res.Valid() {
			invalid += outcomes[res]
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d runs produced an outcome outside {1, 2}", invalid, *runs)
	}
	return nil
}

func relaxedCommand(args []string) error {
	fs := flag.NewFlagSet("relaxed", flag.ContinueOnError)
	runs := fs.Int("runs", 100, "number of experiment runs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	outcomes := ordering.Tally(*runs, func() ordering.RelaxedResult { return ordering.RunRelaxed() })

	keys := sortedKeys(outcomes, func(a, b ordering.RelaxedResult) int {
		return cmp.Or(cmp.Compare(a.R1, b.R1), cmp.Compare(a.R2, b.R2))
	})
	for _, res := range keys {
		fmt.Printf("%d  %d: %d runs\n", res.R1, res.R2, outcomes[res])
	}
	return nil
}

func sortedKeys[K comparable](m map[K]int, compare func(a, b K) int) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compare)
	return keys
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

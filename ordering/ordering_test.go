package ordering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeqCstResultValid(t *testing.T) {
	tests := []struct {
		name     string
		res      SeqCstResult
		expected bool
	}{
		{"x observer only", SeqCstResult{XObserverSawY: true, Count: 1}, true},
		{"y observer only", SeqCstResult{YObserverSawX: true, Count: 1}, true},
		{"both observers", SeqCstResult{XObserverSawY: true, YObserverSawX: true, Count: 2}, true},
		{"neither observer", SeqCstResult{Count: 0}, false},
		{"count disagrees with observers", SeqCstResult{XObserverSawY: true, Count: 2}, false},
		{"torn count", SeqCstResult{XObserverSawY: true, YObserverSawX: true, Count: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.res.Valid())
		})
	}
}

func TestRunSeqCstOutcomes(t *testing.T) {
	delays := []struct {
		name string
		x, y time.Duration
	}{
		{"default", defaultXDelay, defaultYDelay},
		{"simultaneous", 0, 0},
		{"y first", 600 * time.Nanosecond, 0},
		{"far apart", 0, 50 * time.Microsecond},
	}

	for _, d := range delays {
		t.Run(d.name, func(t *testing.T) {
			const runs = 500
			outcomes := Tally(runs, func() SeqCstResult {
				return RunSeqCst(WithDelays(d.x, d.y))
			})

			total := 0
			for res, n := range outcomes {
				total += n
				assert.True(t, res.Valid(), "unreachable outcome %+v seen %d times", res, n)
				assert.GreaterOrEqual(t, res.Count, int64(1))
			}
			assert.Equal(t, runs, total)
		})
	}
}

func TestTally(t *testing.T) {
	i := 0
	counts := Tally(10, func() bool {
		i++
		return i%2 == 0
	})

	assert.Equal(t, map[bool]int{true: 5, false: 5}, counts)
	assert.Empty(t, Tally(0, func() int { return 1 }))
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := newConfig(nil)
	assert.Equal(t, config{xDelay: defaultXDelay, yDelay: defaultYDelay, sleep: defaultSleep}, cfg)

	cfg = newConfig([]Option{WithDelays(time.Millisecond, 0), WithSleep(0)})
	assert.Equal(t, config{xDelay: time.Millisecond}, cfg)
}

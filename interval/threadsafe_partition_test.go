package interval_test

import (
	"sync"
	"testing"

	"github.com/iotaledger/hive.go/log"
	"github.com/stretchr/testify/require"

	"github.com/tspooner/intervals/interval"
)

func TestThreadSafePartition(t *testing.T) {
	logger := log.NewLogger(log.WithName("partition"))
	logger.SetLogLevel(log.LevelTrace)

	p := interval.NewThreadSafePartition([]interval.Interval[int]{interval.Closed(1, 3)}, interval.WithLogger[int](logger))
	require.Equal(t, 1, p.Len())

	p.Insert(interval.ClosedOpen(3, 10))
	require.Equal(t, "{[1, 10)}", p.String())
	require.True(t, p.Contains(9))
	require.True(t, p.IsCovering(interval.Closed(2, 9)))

	p.Remove(interval.Closed(4, 5))
	require.Equal(t, "{[1, 4), (5, 10)}", p.String())
	require.Equal(t, "{[3, 4)}", p.IntersectInterval(interval.Closed(3, 5)).String())

	snapshot := p.Snapshot()
	p.Clear()
	require.Equal(t, 0, p.Len())
	require.Equal(t, 2, snapshot.Len())
}

func TestThreadSafePartition_Concurrent(t *testing.T) {
	p := interval.NewThreadSafePartition[int](nil)

	var wg sync.WaitGroup
	for worker := 0; worker < 10; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			for k := 0; k < 100; k++ {
				start := worker*100 + k
				p.Insert(interval.ClosedOpen(start, start+1))
				_ = p.Contains(start)
				_ = p.Intervals()
			}
		}(worker)
	}
	wg.Wait()

	require.Equal(t, []interval.Interval[int]{interval.ClosedOpen(0, 1000)}, p.Intervals())
}

func TestThreadSafePartition_ReadOperations(t *testing.T) {
	p := interval.NewThreadSafePartition([]interval.Interval[int]{interval.Closed(1, 3), interval.ClosedOpen(6, 9)})

	require.True(t, p.ContainsInterval(interval.Closed(2, 3)))
	require.False(t, p.ContainsInterval(interval.Closed(2, 6)))

	require.Equal(t, "{[1, 3], [5, 9)}", p.Union(interval.NewPartition(interval.ClosedOpen(5, 6))).String())
	require.Equal(t, "{(-inf, 1), (3, 6), [9, +inf)}", p.Complement().String())

	span, ok := p.Span()
	require.True(t, ok)
	require.True(t, span.Equal(interval.ClosedOpen(1, 9)))

	members := make([]interval.Interval[int], 0)
	for member := range p.All() {
		members = append(members, member)

		// mutations during iteration do not affect the running iteration
		p.Insert(interval.Closed(20, 30))
	}
	require.Equal(t, []interval.Interval[int]{interval.Closed(1, 3), interval.ClosedOpen(6, 9)}, members)
	require.Equal(t, 3, p.Len())

	p.Clear()
	_, ok = p.Span()
	require.False(t, ok)
}

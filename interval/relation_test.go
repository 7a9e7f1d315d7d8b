package interval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tspooner/intervals/bound"
	"github.com/tspooner/intervals/interval"
)

// allIntervals returns every combination of lower and upper Bounds over a small set of values, including empty and
// unbounded intervals.
func allIntervals() []interval.Interval[int] {
	bounds := []bound.Bound[int]{bound.Unbounded[int]()}
	for _, value := range []int{1, 2, 3, 4} {
		bounds = append(bounds, bound.Closed(value), bound.Open(value))
	}

	intervals := make([]interval.Interval[int], 0, len(bounds)*len(bounds))
	for _, lower := range bounds {
		for _, upper := range bounds {
			intervals = append(intervals, interval.New(lower, upper))
		}
	}

	return intervals
}

func TestRelate(t *testing.T) {
	for _, testCase := range []struct {
		a, b     interval.Interval[int]
		relation interval.Relation
	}{
		{interval.Closed(1, 2), interval.Closed(4, 5), interval.Before},
		{interval.ClosedOpen(1, 3), interval.Closed(3, 5), interval.Meets},
		{interval.Closed(1, 3), interval.OpenClosed(3, 5), interval.Meets},
		{interval.Open(1, 3), interval.Open(3, 5), interval.Before},
		{interval.Closed(1, 3), interval.Closed(3, 5), interval.Overlaps},
		{interval.Closed(1, 4), interval.Closed(2, 6), interval.Overlaps},
		{interval.Closed(1, 3), interval.Closed(1, 5), interval.Starts},
		{interval.ClosedOpen(1, 5), interval.Closed(1, 5), interval.Starts},
		{interval.Closed(2, 3), interval.Closed(1, 5), interval.ContainedBy},
		{interval.Open(1, 5), interval.Closed(1, 5), interval.ContainedBy},
		{interval.Closed(3, 5), interval.Closed(1, 5), interval.Finishes},
		{interval.OpenClosed(1, 5), interval.Closed(1, 5), interval.Finishes},
		{interval.Closed(1, 5), interval.Closed(1, 5), interval.Equal},
		{interval.Closed(1, 5), interval.Closed(3, 5), interval.FinishedBy},
		{interval.Closed(1, 10), interval.Closed(3, 5), interval.Contains},
		{interval.Closed(1, 5), interval.Closed(1, 3), interval.StartedBy},
		{interval.Closed(2, 6), interval.Closed(1, 4), interval.OverlappedBy},
		{interval.Closed(3, 5), interval.ClosedOpen(1, 3), interval.MetBy},
		{interval.Closed(4, 5), interval.Closed(1, 2), interval.After},
		{interval.Open(1, 1), interval.Closed(1, 2), interval.Disjoint},
		{interval.Closed(1, 2), interval.Closed(2, 1), interval.Disjoint},
		{interval.All[int](), interval.Closed(1, 2), interval.Contains},
		{interval.All[int](), interval.All[int](), interval.Equal},
		{interval.AtMost(3), interval.AtLeast(3), interval.Overlaps},
		{interval.LessThan(3), interval.AtLeast(3), interval.Meets},
		{interval.LessThan(3), interval.GreaterThan(3), interval.Before},
		{interval.AtLeast(3), interval.GreaterThan(3), interval.FinishedBy},
		{interval.LessThan(3), interval.AtMost(3), interval.Starts},
	} {
		require.Equal(t, testCase.relation, interval.Relate(testCase.a, testCase.b), "%s vs %s", testCase.a, testCase.b)
		require.Equal(t, testCase.relation.Inverse(), interval.Relate(testCase.b, testCase.a), "%s vs %s", testCase.b, testCase.a)
	}
}

func TestRelate_Exhaustive(t *testing.T) {
	for _, a := range allIntervals() {
		for _, b := range allIntervals() {
			relation := interval.Relate(a, b)

			require.Equal(t, relation.Inverse(), interval.Relate(b, a), "%s vs %s", a, b)
			require.Equal(t, relation == interval.Disjoint, a.IsEmpty() || b.IsEmpty(), "%s vs %s", a, b)

			if relation == interval.Disjoint {
				continue
			}

			separated := relation == interval.Before || relation == interval.Meets || relation == interval.MetBy || relation == interval.After
			require.Equal(t, separated, a.Intersect(b).IsEmpty(), "%s vs %s", a, b)
			require.Equal(t, relation == interval.Equal, a.Equal(b), "%s vs %s", a, b)

			switch relation {
			case interval.Contains, interval.StartedBy, interval.FinishedBy, interval.Equal:
				require.True(t, a.ContainsInterval(b), "%s vs %s", a, b)
			case interval.ContainedBy, interval.Starts, interval.Finishes:
				require.True(t, b.ContainsInterval(a), "%s vs %s", a, b)
				require.False(t, a.ContainsInterval(b), "%s vs %s", a, b)
			default:
				require.False(t, a.ContainsInterval(b), "%s vs %s", a, b)
			}
		}
	}
}

func TestRelation_String(t *testing.T) {
	require.Equal(t, "Meets", interval.Meets.String())
	require.Equal(t, "Disjoint", interval.Disjoint.String())
	require.Equal(t, "Relation(20)", interval.Relation(32).String())
	require.Equal(t, interval.Relation(32), interval.Relation(32).Inverse())
	require.Equal(t, interval.Equal, interval.Equal.Inverse())
}

package interval_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iotaledger/hive.go/constraints"
	"github.com/stretchr/testify/require"

	"github.com/tspooner/intervals/bound"
	"github.com/tspooner/intervals/interval"
)

// requireNormalized checks that the members of the Partition are non-empty, sorted and separated by gaps.
func requireNormalized[V constraints.Ordered](t *testing.T, p *interval.Partition[V]) {
	t.Helper()

	members := p.Intervals()
	for k, member := range members {
		require.False(t, member.IsEmpty(), "member %d of %s is empty", k, p)

		if k == 0 {
			continue
		}

		require.Negative(t, bound.CompareLower(members[k-1].Lower(), member.Lower()), "members of %s are not sorted", p)
		require.True(t, bound.Gap(members[k-1].Upper(), member.Lower()), "members %d and %d of %s are not separated", k-1, k, p)
	}
}

func TestPartition_New(t *testing.T) {
	p := interval.NewPartition(interval.Closed(1, 3), interval.Closed(2, 5), interval.Closed(8, 9))
	require.Equal(t, "{[1, 5], [8, 9]}", p.String())
	requireNormalized(t, p)

	require.Equal(t, "{[1, 10]}", interval.NewPartition(interval.ClosedOpen(1, 5), interval.Closed(5, 10)).String())
	require.Equal(t, "{[1, 5), (5, 10]}", interval.NewPartition(interval.ClosedOpen(1, 5), interval.OpenClosed(5, 10)).String())
	require.Equal(t, "{[1, 3], [8, 9]}", interval.NewPartition(interval.Closed(8, 9), interval.Closed(1, 3)).String())
	require.Equal(t, "{}", interval.NewPartition(interval.Open(1, 1)).String())
	require.True(t, interval.NewPartition[int]().IsEmpty())
	require.Equal(t, "{(-inf, +inf)}", interval.NewPartition(interval.LessThan(0), interval.Closed(-5, 5), interval.GreaterThan(3)).String())
}

func TestPartition_NewDoesNotAliasInput(t *testing.T) {
	input := []interval.Interval[int]{interval.Closed(8, 9), interval.Closed(1, 3)}
	p := interval.NewPartition(input...)
	p.Insert(interval.Closed(20, 30))

	require.Equal(t, []interval.Interval[int]{interval.Closed(8, 9), interval.Closed(1, 3)}, input)
}

func TestPartition_Insert(t *testing.T) {
	p := interval.NewPartition(interval.Closed(1, 3), interval.Closed(6, 8), interval.Closed(12, 15))

	p.Insert(interval.Closed(4, 5))
	require.Equal(t, "{[1, 3], [4, 5], [6, 8], [12, 15]}", p.String())
	requireNormalized(t, p)

	p.Insert(interval.OpenClosed(3, 4))
	require.Equal(t, "{[1, 5], [6, 8], [12, 15]}", p.String())
	requireNormalized(t, p)

	p.Insert(interval.Closed(7, 13))
	require.Equal(t, "{[1, 5], [6, 15]}", p.String())
	requireNormalized(t, p)

	p.Insert(interval.Open(5, 6))
	require.Equal(t, "{[1, 15]}", p.String())

	p.Insert(interval.Open(20, 20))
	require.Equal(t, "{[1, 15]}", p.String())

	p.Insert(interval.LessThan(0))
	require.Equal(t, "{(-inf, 0), [1, 15]}", p.String())
	requireNormalized(t, p)

	p.Insert(interval.All[int]())
	require.Equal(t, "{(-inf, +inf)}", p.String())
}

func TestPartition_InsertIdempotent(t *testing.T) {
	once := interval.NewPartition(interval.Closed(1, 3), interval.Closed(8, 9))
	once.Insert(interval.Closed(2, 5))

	twice := interval.NewPartition(interval.Closed(1, 3), interval.Closed(8, 9))
	twice.InsertAll(interval.Closed(2, 5), interval.Closed(2, 5))

	require.True(t, once.Equal(twice))
	require.Empty(t, cmp.Diff(once.Intervals(), twice.Intervals()))
}

func TestPartition_Remove(t *testing.T) {
	p := interval.NewPartition(interval.Closed(1, 10))

	p.Remove(interval.Closed(3, 5))
	require.Equal(t, "{[1, 3), (5, 10]}", p.String())
	require.Empty(t, cmp.Diff([]interval.Interval[int]{interval.ClosedOpen(1, 3), interval.OpenClosed(5, 10)}, p.Intervals()))

	p.Remove(interval.Closed(0, 1))
	require.Equal(t, "{(1, 3), (5, 10]}", p.String())

	p.Remove(interval.AtLeast(9))
	require.Equal(t, "{(1, 3), (5, 9)}", p.String())

	p.Remove(interval.Closed(20, 30))
	require.Equal(t, "{(1, 3), (5, 9)}", p.String())

	p.Remove(interval.Open(4, 4))
	require.Equal(t, "{(1, 3), (5, 9)}", p.String())

	p.Remove(interval.All[int]())
	require.True(t, p.IsEmpty())
}

func TestPartition_RemoveSpanningMembers(t *testing.T) {
	p := interval.NewPartition(interval.Closed(1, 2), interval.Closed(4, 5), interval.Closed(7, 8))

	p.Remove(interval.Open(1, 8))
	require.Equal(t, "{[1, 1], [8, 8]}", p.String())
	requireNormalized(t, p)
}

func TestPartition_Contains(t *testing.T) {
	p := interval.NewPartition(interval.ClosedOpen(1, 3), interval.OpenClosed(5, 10))

	for value, expected := range map[int]bool{0: false, 1: true, 2: true, 3: false, 4: false, 5: false, 6: true, 10: true, 11: false} {
		require.Equal(t, expected, p.Contains(value), "value %d", value)
	}

	require.False(t, interval.NewPartition[int]().Contains(0))
	require.True(t, interval.NewPartition(interval.AtLeast(0)).Contains(1000))
}

func TestPartition_IsCovering(t *testing.T) {
	p := interval.NewPartition(interval.Closed(1, 5), interval.Closed(8, 9))

	require.True(t, p.IsCovering(interval.Closed(2, 4)))
	require.True(t, p.IsCovering(interval.Closed(1, 5)))
	require.True(t, p.IsCovering(interval.Closed(8, 9)))
	require.True(t, p.IsCovering(interval.Open(5, 5)))
	require.False(t, p.IsCovering(interval.Closed(4, 8)))
	require.False(t, p.IsCovering(interval.OpenClosed(7, 9)))
	require.False(t, p.IsCovering(interval.Closed(0, 1)))
	require.False(t, p.IsCovering(interval.Closed(20, 21)))
	require.True(t, p.ContainsInterval(interval.Degenerate(9)))

	unbounded := interval.NewPartition(interval.AtLeast(0))
	require.True(t, unbounded.IsCovering(interval.Closed(5, 100)))
	require.True(t, unbounded.IsCovering(interval.GreaterThan(0)))
	require.False(t, unbounded.IsCovering(interval.All[int]()))
	require.False(t, interval.NewPartition[int]().IsCovering(interval.Degenerate(1)))
}

func TestPartition_IntersectInterval(t *testing.T) {
	p := interval.NewPartition(interval.Closed(1, 5), interval.Closed(8, 9))

	intersection := p.IntersectInterval(interval.Closed(4, 8))
	require.Equal(t, "{[4, 5], [8, 8]}", intersection.String())
	require.Equal(t, "{[1, 5], [8, 9]}", p.String())

	require.True(t, p.IntersectInterval(interval.Open(5, 8)).IsEmpty())
	require.True(t, p.IntersectInterval(interval.All[int]()).Equal(p))
}

func TestPartition_Union(t *testing.T) {
	a := interval.NewPartition(interval.Closed(1, 2))
	b := interval.NewPartition(interval.Closed(2, 3), interval.Closed(5, 6))

	require.Equal(t, "{[1, 3], [5, 6]}", a.Union(b).String())
	require.Equal(t, "{[1, 2]}", a.String())
}

func TestPartition_Complement(t *testing.T) {
	p := interval.NewPartition(interval.ClosedOpen(1, 5), interval.OpenClosed(5, 10))

	complement := p.Complement()
	require.Equal(t, "{(-inf, 1), [5, 5], (10, +inf)}", complement.String())
	requireNormalized(t, complement)
	require.True(t, complement.Complement().Equal(p))

	require.Equal(t, "{(-inf, +inf)}", interval.NewPartition[int]().Complement().String())
	require.Equal(t, "{}", interval.NewPartition(interval.All[int]()).Complement().String())
	require.Equal(t, "{(-inf, 3)}", interval.NewPartition(interval.AtLeast(3)).Complement().String())
	require.Equal(t, "{(3, +inf)}", interval.NewPartition(interval.AtMost(3)).Complement().String())
}

func TestPartition_Span(t *testing.T) {
	span, ok := interval.NewPartition(interval.ClosedOpen(1, 5), interval.OpenClosed(5, 10)).Span()
	require.True(t, ok)
	require.Equal(t, interval.Closed(1, 10), span)

	span, ok = interval.NewPartition[int]().Span()
	require.False(t, ok)
	require.True(t, span.IsEmpty())
}

func TestPartition_ReadOnlyViews(t *testing.T) {
	p := interval.NewPartition(interval.Closed(1, 2), interval.Closed(4, 5))

	members := p.Intervals()
	members[0] = interval.Closed(100, 200)
	require.Equal(t, "{[1, 2], [4, 5]}", p.String())

	clone := p.Clone()
	clone.Insert(interval.Closed(2, 4))
	require.Equal(t, "{[1, 2], [4, 5]}", p.String())
	require.Equal(t, "{[1, 5]}", clone.String())

	require.Equal(t, p.Intervals(), slices.Collect(p.All()))

	for member := range p.All() {
		require.Equal(t, interval.Closed(1, 2), member)

		break
	}

	p.Clear()
	require.Equal(t, 0, p.Len())
	require.Equal(t, 1, clone.Len())
}

package interval

import (
	"iter"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/runtime/syncutils"
)

// ThreadSafePartition wraps a Partition with a reader/writer lock, so that it can be shared between goroutines. Read
// operations only ever expose copies of the underlying members.
type ThreadSafePartition[V constraints.Ordered] struct {
	// logger receives a TRACE message for every mutation (optional).
	logger log.Logger

	partition *Partition[V]
	mutex     syncutils.RWMutex
}

// NewThreadSafePartition creates a ThreadSafePartition that holds the union of the given Intervals.
func NewThreadSafePartition[V constraints.Ordered](intervals []Interval[V], opts ...options.Option[ThreadSafePartition[V]]) *ThreadSafePartition[V] {
	return options.Apply(&ThreadSafePartition[V]{
		partition: NewPartition(intervals...),
	}, opts)
}

// WithLogger is an option for the ThreadSafePartition that makes it log its mutations.
func WithLogger[V constraints.Ordered](logger log.Logger) options.Option[ThreadSafePartition[V]] {
	return func(t *ThreadSafePartition[V]) {
		t.logger = logger
	}
}

// Insert adds all values of the Interval to the Partition.
func (t *ThreadSafePartition[V]) Insert(i Interval[V]) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.partition.Insert(i)
	t.logMutation("inserted interval", i)
}

// Remove removes all values of the Interval from the Partition.
func (t *ThreadSafePartition[V]) Remove(i Interval[V]) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.partition.Remove(i)
	t.logMutation("removed interval", i)
}

// Clear removes all members from the Partition.
func (t *ThreadSafePartition[V]) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.partition.Clear()
	if t.logger != nil {
		t.logger.LogTrace("cleared partition")
	}
}

// Contains returns true if value lies within one of the members.
func (t *ThreadSafePartition[V]) Contains(value V) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.partition.Contains(value)
}

// IsCovering returns true if every value of the Interval lies within the Partition.
func (t *ThreadSafePartition[V]) IsCovering(i Interval[V]) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.partition.IsCovering(i)
}

// ContainsInterval is an alias for IsCovering.
func (t *ThreadSafePartition[V]) ContainsInterval(i Interval[V]) bool {
	return t.IsCovering(i)
}

// IntersectInterval returns a new Partition that holds the values that also lie within the Interval.
func (t *ThreadSafePartition[V]) IntersectInterval(i Interval[V]) *Partition[V] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.partition.IntersectInterval(i)
}

// Union returns a new Partition that holds the values of both Partitions.
func (t *ThreadSafePartition[V]) Union(other *Partition[V]) *Partition[V] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.partition.Union(other)
}

// Complement returns a new Partition that holds exactly the values that do not lie within the Partition.
func (t *ThreadSafePartition[V]) Complement() *Partition[V] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.partition.Complement()
}

// Span returns the smallest Interval that contains every member, and false if the Partition is empty.
func (t *ThreadSafePartition[V]) Span() (Interval[V], bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.partition.Span()
}

// Len returns the number of members of the Partition.
func (t *ThreadSafePartition[V]) Len() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.partition.Len()
}

// Intervals returns a copy of the members of the Partition in ascending order.
func (t *ThreadSafePartition[V]) Intervals() []Interval[V] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.partition.Intervals()
}

// All returns an iterator over the members in ascending order. It iterates over a copy taken when iteration starts,
// so concurrent mutations do not affect a running iteration.
func (t *ThreadSafePartition[V]) All() iter.Seq[Interval[V]] {
	return func(yield func(Interval[V]) bool) {
		for _, member := range t.Intervals() {
			if !yield(member) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the current state as an unsynchronized Partition.
func (t *ThreadSafePartition[V]) Snapshot() *Partition[V] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.partition.Clone()
}

// String returns the Partition in set notation.
func (t *ThreadSafePartition[V]) String() string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.partition.String()
}

func (t *ThreadSafePartition[V]) logMutation(msg string, i Interval[V]) {
	if t.logger == nil {
		return
	}

	t.logger.LogTrace(msg, "interval", i.String(), "size", t.partition.Len())
}

// Package codec implements a lossless binary encoding of Bounds, Intervals and Partitions.
//
// A Bound is encoded as its Kind byte followed by its value (omitted for unbounded sides). An Interval is its lower
// Bound followed by its upper Bound, and a Partition is the number of its members as uint32 followed by the members in
// ascending order. All integers are little endian.
package codec

import (
	"io"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/stream"

	"github.com/tspooner/intervals/bound"
	"github.com/tspooner/intervals/interval"
)

// Codec marshals and unmarshals the types of the interval algebra for a single value type.
type Codec[V constraints.Ordered] struct {
	values ValueCodec[V]
}

// New creates a Codec that uses the given ValueCodec for the values of Bounds.
func New[V constraints.Ordered](values ValueCodec[V]) *Codec[V] {
	return &Codec[V]{
		values: values,
	}
}

// BoundBytes returns a marshaled version of the Bound.
func (c *Codec[V]) BoundBytes(b bound.Bound[V]) ([]byte, error) {
	return toBytes(func(buffer *stream.ByteBuffer) error {
		return c.WriteBound(buffer, b)
	})
}

// BoundFromBytes unmarshals a Bound from a sequence of bytes.
func (c *Codec[V]) BoundFromBytes(boundBytes []byte) (b bound.Bound[V], consumedBytes int, err error) {
	reader := stream.NewByteReader(boundBytes)
	if b, err = c.BoundFromReader(reader); err != nil {
		return b, 0, ierrors.Wrap(err, "failed to parse Bound")
	}

	return b, reader.BytesRead(), nil
}

// WriteBound writes the marshaled Bound to the writer.
func (c *Codec[V]) WriteBound(writer io.Writer, b bound.Bound[V]) error {
	if err := stream.Write(writer, uint8(b.Kind())); err != nil {
		return ierrors.Wrap(err, "failed to write Kind")
	}

	if !b.Kind().HasValue() {
		return nil
	}

	if err := c.values.WriteValue(writer, b.Value()); err != nil {
		return ierrors.Wrapf(err, "failed to write value of %s", b)
	}

	return nil
}

// BoundFromReader unmarshals a Bound from the reader.
func (c *Codec[V]) BoundFromReader(reader io.Reader) (b bound.Bound[V], err error) {
	kindByte, err := stream.Read[uint8](reader)
	if err != nil {
		return b, ierrors.Wrapf(ErrParseBytesFailed, "failed to read Kind: %w", err)
	}

	kind := bound.Kind(kindByte)
	switch {
	case !kind.IsValid():
		return b, ierrors.Wrapf(ErrParseBytesFailed, "unsupported Kind (%X)", kindByte)
	case !kind.HasValue():
		return bound.Unbounded[V](), nil
	}

	value, err := c.values.ReadValue(reader)
	if err != nil {
		return b, ierrors.Wrapf(err, "failed to parse value of %s", kind)
	}

	return bound.New(kind, value), nil
}

// IntervalBytes returns a marshaled version of the Interval.
func (c *Codec[V]) IntervalBytes(i interval.Interval[V]) ([]byte, error) {
	return toBytes(func(buffer *stream.ByteBuffer) error {
		return c.WriteInterval(buffer, i)
	})
}

// IntervalFromBytes unmarshals an Interval from a sequence of bytes.
func (c *Codec[V]) IntervalFromBytes(intervalBytes []byte) (i interval.Interval[V], consumedBytes int, err error) {
	reader := stream.NewByteReader(intervalBytes)
	if i, err = c.IntervalFromReader(reader); err != nil {
		return i, 0, ierrors.Wrap(err, "failed to parse Interval")
	}

	return i, reader.BytesRead(), nil
}

// WriteInterval writes the marshaled Interval to the writer.
func (c *Codec[V]) WriteInterval(writer io.Writer, i interval.Interval[V]) error {
	if err := c.WriteBound(writer, i.Lower()); err != nil {
		return ierrors.Wrap(err, "failed to write lower Bound")
	}

	if err := c.WriteBound(writer, i.Upper()); err != nil {
		return ierrors.Wrap(err, "failed to write upper Bound")
	}

	return nil
}

// IntervalFromReader unmarshals an Interval from the reader.
func (c *Codec[V]) IntervalFromReader(reader io.Reader) (i interval.Interval[V], err error) {
	lower, err := c.BoundFromReader(reader)
	if err != nil {
		return i, ierrors.Wrap(err, "failed to parse lower Bound")
	}

	upper, err := c.BoundFromReader(reader)
	if err != nil {
		return i, ierrors.Wrap(err, "failed to parse upper Bound")
	}

	return interval.New(lower, upper), nil
}

// PartitionBytes returns a marshaled version of the Partition.
func (c *Codec[V]) PartitionBytes(p *interval.Partition[V]) ([]byte, error) {
	return toBytes(func(buffer *stream.ByteBuffer) error {
		return stream.WriteCollection(buffer, serializer.SeriLengthPrefixTypeAsUint32, func() (elementsCount int, err error) {
			for member := range p.All() {
				if err = c.WriteInterval(buffer, member); err != nil {
					return 0, ierrors.Wrapf(err, "failed to write member %s", member)
				}
			}

			return p.Len(), nil
		})
	})
}

// PartitionFromBytes unmarshals a Partition from a sequence of bytes. The decoded members are normalized again, so the
// result is a valid Partition even if the input was not produced by PartitionBytes.
func (c *Codec[V]) PartitionFromBytes(partitionBytes []byte) (p *interval.Partition[V], consumedBytes int, err error) {
	reader := stream.NewByteReader(partitionBytes)

	count, err := stream.Read[uint32](reader)
	if err != nil {
		return nil, 0, ierrors.Wrapf(ErrParseBytesFailed, "failed to read member count: %w", err)
	}

	// every member occupies at least two Kind bytes
	if uint64(count) > uint64(reader.Len()/2) {
		return nil, 0, ierrors.Wrapf(ErrParseBytesFailed, "member count %d exceeds remaining %d bytes", count, reader.Len())
	}

	members := make([]interval.Interval[V], 0, count)
	for k := uint32(0); k < count; k++ {
		member, memberErr := c.IntervalFromReader(reader)
		if memberErr != nil {
			return nil, 0, ierrors.Wrapf(memberErr, "failed to parse member %d", k)
		}

		members = append(members, member)
	}

	return interval.NewPartition(members...), reader.BytesRead(), nil
}

func toBytes(write func(buffer *stream.ByteBuffer) error) ([]byte, error) {
	buffer := stream.NewByteBuffer()
	if err := write(buffer); err != nil {
		return nil, err
	}

	return buffer.Bytes()
}

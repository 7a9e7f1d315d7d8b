package codec

import (
	"io"
	"math"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/stream"
)

// ValueCodec writes and reads the values of Bounds.
type ValueCodec[V constraints.Ordered] interface {
	// WriteValue writes the marshaled value to the writer.
	WriteValue(writer io.Writer, value V) error

	// ReadValue unmarshals a value from the reader.
	ReadValue(reader io.Reader) (value V, err error)
}

// Signed encodes signed integers as 8 byte values.
type Signed[V constraints.Signed] struct{}

// WriteValue writes the marshaled value to the writer.
func (Signed[V]) WriteValue(writer io.Writer, value V) error {
	return stream.Write(writer, uint64(int64(value)))
}

// ReadValue unmarshals a value from the reader.
func (Signed[V]) ReadValue(reader io.Reader) (value V, err error) {
	encoded, err := stream.Read[uint64](reader)
	if err != nil {
		return value, ierrors.Wrapf(ErrParseBytesFailed, "failed to read signed value: %w", err)
	}

	decoded := int64(encoded)
	if value = V(decoded); int64(value) != decoded {
		return value, ierrors.Wrapf(ErrParseBytesFailed, "signed value %d overflows %T", decoded, value)
	}

	return value, nil
}

// Unsigned encodes unsigned integers as 8 byte values.
type Unsigned[V constraints.Unsigned] struct{}

// WriteValue writes the marshaled value to the writer.
func (Unsigned[V]) WriteValue(writer io.Writer, value V) error {
	return stream.Write(writer, uint64(value))
}

// ReadValue unmarshals a value from the reader.
func (Unsigned[V]) ReadValue(reader io.Reader) (value V, err error) {
	decoded, err := stream.Read[uint64](reader)
	if err != nil {
		return value, ierrors.Wrapf(ErrParseBytesFailed, "failed to read unsigned value: %w", err)
	}

	if value = V(decoded); uint64(value) != decoded {
		return value, ierrors.Wrapf(ErrParseBytesFailed, "unsigned value %d overflows %T", decoded, value)
	}

	return value, nil
}

// Float encodes floating point numbers as their 8 byte IEEE 754 representation.
type Float[V constraints.Float] struct{}

// WriteValue writes the marshaled value to the writer.
func (Float[V]) WriteValue(writer io.Writer, value V) error {
	return stream.Write(writer, math.Float64bits(float64(value)))
}

// ReadValue unmarshals a value from the reader.
func (Float[V]) ReadValue(reader io.Reader) (value V, err error) {
	encoded, err := stream.Read[uint64](reader)
	if err != nil {
		return value, ierrors.Wrapf(ErrParseBytesFailed, "failed to read float value: %w", err)
	}

	decoded := math.Float64frombits(encoded)
	if math.IsNaN(decoded) {
		return value, ierrors.Wrap(ErrParseBytesFailed, "float value is NaN")
	}

	return V(decoded), nil
}

// String encodes strings as their uint32 length followed by their bytes.
type String[V ~string] struct{}

// WriteValue writes the marshaled value to the writer.
func (String[V]) WriteValue(writer io.Writer, value V) error {
	return stream.WriteBytesWithSize(writer, []byte(value), serializer.SeriLengthPrefixTypeAsUint32)
}

// ReadValue unmarshals a value from the reader.
func (String[V]) ReadValue(reader io.Reader) (value V, err error) {
	length, err := stream.Read[uint32](reader)
	if err != nil {
		return value, ierrors.Wrapf(ErrParseBytesFailed, "failed to read string length: %w", err)
	}

	if length == 0 {
		return value, nil
	}

	if remaining, ok := reader.(interface{ Len() int }); ok && uint64(length) > uint64(remaining.Len()) {
		return value, ierrors.Wrapf(ErrParseBytesFailed, "string length %d exceeds remaining %d bytes", length, remaining.Len())
	}

	valueBytes, err := stream.ReadBytes(reader, int(length))
	if err != nil {
		return value, ierrors.Wrapf(ErrParseBytesFailed, "failed to read string of length %d: %w", length, err)
	}

	return V(valueBytes), nil
}

var (
	_ ValueCodec[int64]   = Signed[int64]{}
	_ ValueCodec[uint32]  = Unsigned[uint32]{}
	_ ValueCodec[float64] = Float[float64]{}
	_ ValueCodec[string]  = String[string]{}
)

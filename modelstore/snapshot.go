package modelstore

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/capclust/annealing"
	"github.com/hupe1980/capclust/codec"
)

// Snapshot container layout:
//
//	[4]byte magic "CCMS"
//	[1]byte format version
//	[1]byte codec name length, followed by the codec name
//	[8]byte little-endian uncompressed payload size
//	zstd frame holding the codec-encoded model
const (
	snapshotMagic   = "CCMS"
	snapshotVersion = byte(1)

	// maxSnapshotRatio bounds the decode buffer pre-allocated from the
	// header's declared size, as a multiple of the compressed payload.
	maxSnapshotRatio = 32
)

// SaveOptions configures how a snapshot is written.
type SaveOptions struct {
	// Codec encodes the model before compression.
	Codec codec.Codec

	// CompressionLevel selects the zstd encoder level.
	CompressionLevel zstd.EncoderLevel
}

// DefaultSaveOptions holds the default values for SaveOptions.
var DefaultSaveOptions = SaveOptions{
	Codec:            codec.Default,
	CompressionLevel: zstd.SpeedDefault,
}

// Save encodes, compresses and stores a fitted model under the given name.
func Save(ctx context.Context, store Store, name string, model *annealing.Model, optFns ...func(o *SaveOptions)) error {
	opts := DefaultSaveOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	encoded, err := opts.Codec.Marshal(model)
	if err != nil {
		return fmt.Errorf("modelstore: encode model: %w", err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(opts.CompressionLevel))
	if err != nil {
		return fmt.Errorf("modelstore: create encoder: %w", err)
	}
	defer enc.Close()

	compressed := enc.EncodeAll(encoded, nil)

	codecName := opts.Codec.Name()
	if len(codecName) > 255 {
		return fmt.Errorf("modelstore: codec name too long: %q", codecName)
	}

	var buf bytes.Buffer

	buf.WriteString(snapshotMagic)
	buf.WriteByte(snapshotVersion)
	buf.WriteByte(byte(len(codecName)))
	buf.WriteString(codecName)

	var size [8]byte

	binary.LittleEndian.PutUint64(size[:], uint64(len(encoded)))
	buf.Write(size[:])
	buf.Write(compressed)

	return store.Put(ctx, name, buf.Bytes())
}

// Load retrieves, decompresses and decodes a model snapshot. The codec is
// resolved from the name recorded in the container header.
func Load(ctx context.Context, store Store, name string) (*annealing.Model, error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(data) < len(snapshotMagic)+2 {
		return nil, fmt.Errorf("modelstore: snapshot %q truncated", name)
	}

	if string(data[:len(snapshotMagic)]) != snapshotMagic {
		return nil, fmt.Errorf("modelstore: snapshot %q has invalid magic", name)
	}

	data = data[len(snapshotMagic):]

	if version := data[0]; version != snapshotVersion {
		return nil, fmt.Errorf("modelstore: unsupported snapshot version %d", version)
	}

	nameLen := int(data[1])
	data = data[2:]

	if len(data) < nameLen+8 {
		return nil, fmt.Errorf("modelstore: snapshot %q truncated", name)
	}

	codecName := string(data[:nameLen])

	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("modelstore: unknown codec %q", codecName)
	}

	data = data[nameLen:]
	rawSize := binary.LittleEndian.Uint64(data[:8])
	data = data[8:]

	// The size field is untrusted input; cap the pre-allocation and let
	// DecodeAll grow the buffer if the frame really is larger.
	if limit := uint64(len(data)) * maxSnapshotRatio; rawSize > limit {
		rawSize = limit
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("modelstore: create decoder: %w", err)
	}
	defer dec.Close()

	encoded, err := dec.DecodeAll(data, make([]byte, 0, rawSize))
	if err != nil {
		return nil, fmt.Errorf("modelstore: decompress snapshot %q: %w", name, err)
	}

	model := &annealing.Model{}
	if err := c.Unmarshal(encoded, model); err != nil {
		return nil, fmt.Errorf("modelstore: decode model: %w", err)
	}

	return model, nil
}

// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"

	"github.com/ik5/wavqc/codec"
)

const dataHeaderSize = 8

var dataID = string(riff.DataFormatID[:])

// DataChunk is the "data" sub-chunk with its samples fully materialized.
type DataChunk struct {
	ID   string
	Size uint32

	Samples []int16
}

// ReadDataChunk reads the 8-byte sub-header and then up to Size bytes of
// little-endian 16-bit samples. A payload shorter than declared is not an
// error here; Verify reports it.
func ReadDataChunk(r io.Reader) (DataChunk, error) {
	buf, err := readBlock(r, dataHeaderSize, "data chunk")
	if err != nil {
		return DataChunk{}, err
	}

	var d DataChunk

	d.ID, _ = codec.ASCII(buf, 0, 4)
	d.Size, _ = codec.Uint32(buf, 4)

	// LimitReader keeps a lying size field from allocating more than the
	// stream actually holds.
	payload, err := io.ReadAll(io.LimitReader(r, int64(d.Size)))
	if err != nil {
		return DataChunk{}, fmt.Errorf("data payload: %w", err)
	}

	d.Samples = codec.Int16s(payload)

	return d, nil
}

func (d DataChunk) Verify() error {
	if !strings.EqualFold(d.ID, dataID) {
		return fmt.Errorf("%w: chunk id %q", ErrDataChunkInvalid, d.ID)
	}

	if uint64(len(d.Samples))*2 != uint64(d.Size) {
		return fmt.Errorf("%w: declared %d bytes, read %d samples", ErrDataChunkInvalid, d.Size, len(d.Samples))
	}

	return nil
}

func (d DataChunk) Validate() bool { return d.Verify() == nil }

// Header re-emits the 8-byte sub-header.
func (d DataChunk) Header() []byte {
	buf := make([]byte, dataHeaderSize)
	_ = codec.PutASCII(buf, 0, fixedTag(d.ID))
	_ = codec.PutUint32(buf, 4, d.Size)

	return buf
}

// IntBuffer copies the samples into a go-audio buffer with the given layout.
func (d DataChunk) IntBuffer(format *goaudio.Format) *goaudio.IntBuffer {
	data := make([]int, len(d.Samples))
	for i, s := range d.Samples {
		data[i] = int(s)
	}

	return &goaudio.IntBuffer{
		Format:         format,
		Data:           data,
		SourceBitDepth: SupportedBitsPerSample,
	}
}

// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/ik5/wavqc/codec"
)

// CanonicalHeaderSize is RIFF envelope + fmt block + data sub-header.
const CanonicalHeaderSize = RiffEnvelopeSize + FormatBlockSize + dataHeaderSize

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate with a canonical
// 44-byte header.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	dataSize := uint32(len(samples) * 2)

	env := RiffEnvelope{ID: riffID, Size: 36 + dataSize, Format: waveID}
	data := DataChunk{ID: dataID, Size: dataSize}

	header := make([]byte, 0, CanonicalHeaderSize)
	header = append(header, env.Bytes()...)
	header = append(header, NewPCMFormat(sampleRate).Bytes()...)
	header = append(header, data.Header()...)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Write 8K samples at a time to bound the scratch buffer.
	const chunkSize = 8192

	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		out := buf[:len(chunk)*2]

		if err := codec.PutInt16s(out, chunk); err != nil {
			return err
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

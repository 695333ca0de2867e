// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-audio/riff"

	"github.com/ik5/wavqc/codec"
)

// RiffEnvelopeSize is the size of the outer RIFF/WAVE block.
const RiffEnvelopeSize = 12

var (
	riffID = string(riff.RiffID[:])
	waveID = string(riff.WavFormatID[:])
)

// RiffEnvelope is the outer RIFF header: chunk ID, declared size and form type.
type RiffEnvelope struct {
	ID     string
	Size   uint32
	Format string
}

// ReadRiffEnvelope reads exactly RiffEnvelopeSize bytes from r.
func ReadRiffEnvelope(r io.Reader) (RiffEnvelope, error) {
	buf, err := readBlock(r, RiffEnvelopeSize, "riff envelope")
	if err != nil {
		return RiffEnvelope{}, err
	}

	var env RiffEnvelope

	// The block length is fixed, so decoding can only fail on a programming error.
	env.ID, _ = codec.ASCII(buf, 0, 4)
	env.Size, _ = codec.Uint32(buf, 4)
	env.Format, _ = codec.ASCII(buf, 8, 4)

	return env, nil
}

// Verify reports why the envelope is not a RIFF/WAVE header, or nil.
// Tags are compared case-insensitively.
func (e RiffEnvelope) Verify() error {
	switch {
	case !strings.EqualFold(e.ID, riffID):
		return fmt.Errorf("%w: chunk id %q", ErrRiffInvalid, e.ID)
	case !strings.EqualFold(e.Format, waveID):
		return fmt.Errorf("%w: form type %q", ErrRiffInvalid, e.Format)
	case e.Size == 0:
		return fmt.Errorf("%w: zero size", ErrRiffInvalid)
	}

	return nil
}

func (e RiffEnvelope) Validate() bool { return e.Verify() == nil }

// Bytes re-emits the envelope as a 12-byte block.
func (e RiffEnvelope) Bytes() []byte {
	buf := make([]byte, RiffEnvelopeSize)
	_ = codec.PutASCII(buf, 0, fixedTag(e.ID))
	_ = codec.PutUint32(buf, 4, e.Size)
	_ = codec.PutASCII(buf, 8, fixedTag(e.Format))

	return buf
}

// readBlock reads exactly n bytes. A short read is reported as ErrShortHeader.
func readBlock(r io.Reader, n int, what string) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %s: %w", ErrShortHeader, what, err)
		}

		return nil, fmt.Errorf("%s: %w", what, err)
	}

	return buf, nil
}

// fixedTag pads or cuts a tag to 4 bytes.
func fixedTag(s string) string {
	if len(s) >= 4 {
		return s[:4]
	}

	return s + strings.Repeat(" ", 4-len(s))
}

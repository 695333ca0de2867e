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

const (
	// FormatBlockSize is the sub-chunk header plus the canonical PCM payload.
	FormatBlockSize = 24
	// canonicalFormatSize is the payload size of a plain PCM fmt chunk.
	canonicalFormatSize = 16

	FormatPCM = 1

	SupportedSampleRate    = 8000
	SupportedChannels      = 1
	SupportedBitsPerSample = 16
)

var fmtID = string(riff.FmtID[:])

// FormatDescriptor is the decoded "fmt " sub-chunk.
type FormatDescriptor struct {
	ID            string
	Size          uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	// Raw holds the 24 bytes the descriptor was decoded from.
	Raw []byte
}

// NewPCMFormat returns the descriptor of a canonical mono 16-bit PCM stream.
func NewPCMFormat(sampleRate int) FormatDescriptor {
	return FormatDescriptor{
		ID:            fmtID,
		Size:          canonicalFormatSize,
		AudioFormat:   FormatPCM,
		NumChannels:   1,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * 2,
		BlockAlign:    2,
		BitsPerSample: 16,
	}
}

// ReadFormatDescriptor reads the fixed 24-byte block and, when the declared
// size is larger than the canonical payload, consumes and discards the
// extension bytes.
func ReadFormatDescriptor(r io.Reader) (FormatDescriptor, error) {
	buf, err := readBlock(r, FormatBlockSize, "fmt chunk")
	if err != nil {
		return FormatDescriptor{}, err
	}

	f := FormatDescriptor{Raw: buf}

	var v uint32

	f.ID, _ = codec.ASCII(buf, 0, 4)
	f.Size, _ = codec.Uint32(buf, 4)
	v, _ = codec.Uint(buf, 8, 2)
	f.AudioFormat = uint16(v)
	v, _ = codec.Uint(buf, 10, 2)
	f.NumChannels = uint16(v)
	f.SampleRate, _ = codec.Uint32(buf, 12)
	f.ByteRate, _ = codec.Uint32(buf, 16)
	v, _ = codec.Uint(buf, 20, 2)
	f.BlockAlign = uint16(v)
	v, _ = codec.Uint(buf, 22, 2)
	f.BitsPerSample = uint16(v)

	if f.Size > canonicalFormatSize {
		extra := int64(f.Size) - canonicalFormatSize
		if _, err := io.CopyN(io.Discard, r, extra); err != nil {
			if err == io.EOF {
				return FormatDescriptor{}, fmt.Errorf("%w: fmt extension of %d bytes: %w", ErrShortHeader, extra, err)
			}

			return FormatDescriptor{}, fmt.Errorf("fmt extension: %w", err)
		}
	}

	return f, nil
}

// Verify checks the descriptor against the supported 8kHz 16-bit mono PCM profile.
func (f FormatDescriptor) Verify() error {
	switch {
	case !strings.EqualFold(f.ID, fmtID):
		return fmt.Errorf("%w: chunk id %q", ErrFormatUnsupported, f.ID)
	case f.AudioFormat != FormatPCM:
		return fmt.Errorf("%w: audio format %d", ErrFormatUnsupported, f.AudioFormat)
	case f.NumChannels != SupportedChannels:
		return fmt.Errorf("%w: %d channels", ErrFormatUnsupported, f.NumChannels)
	case f.SampleRate != SupportedSampleRate:
		return fmt.Errorf("%w: sample rate %d", ErrFormatUnsupported, f.SampleRate)
	case f.BitsPerSample != SupportedBitsPerSample:
		return fmt.Errorf("%w: %d bits per sample", ErrFormatUnsupported, f.BitsPerSample)
	}

	return nil
}

func (f FormatDescriptor) Validate() bool { return f.Verify() == nil }

// Bytes encodes the descriptor as a canonical 24-byte block. Extension bytes
// are not re-emitted and the size field is written as declared.
func (f FormatDescriptor) Bytes() []byte {
	buf := make([]byte, FormatBlockSize)
	_ = codec.PutASCII(buf, 0, fixedTag(f.ID))
	_ = codec.PutUint32(buf, 4, f.Size)
	_ = codec.PutUint16(buf, 8, f.AudioFormat)
	_ = codec.PutUint16(buf, 10, f.NumChannels)
	_ = codec.PutUint32(buf, 12, f.SampleRate)
	_ = codec.PutUint32(buf, 16, f.ByteRate)
	_ = codec.PutUint16(buf, 20, f.BlockAlign)
	_ = codec.PutUint16(buf, 22, f.BitsPerSample)

	return buf
}

// BytesPerSample is the container size of one sample, 0 for an undeclared depth.
func (f FormatDescriptor) BytesPerSample() int { return int(f.BitsPerSample) / 8 }

// Format returns the go-audio view of the stream layout.
func (f FormatDescriptor) Format() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: int(f.NumChannels),
		SampleRate:  int(f.SampleRate),
	}
}

// String is the one-line format summary shown ahead of an analysis report.
func (f FormatDescriptor) String() string {
	var b strings.Builder

	if f.AudioFormat == FormatPCM {
		b.WriteString("Audio Format: PCM WAVE File.")
	} else {
		fmt.Fprintf(&b, "Audio Format: %d", f.AudioFormat)
	}

	fmt.Fprintf(&b, " Number of Channels: %d  Sample Rate: %d  Bits/Sample: %d",
		f.NumChannels, f.SampleRate, f.BitsPerSample)

	return b.String()
}

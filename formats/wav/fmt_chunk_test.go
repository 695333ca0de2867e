// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/wavqc/internal/wavtest"
)

// fmtStream returns the bytes following the RIFF envelope of h.
func fmtStream(h wavtest.Header, samples []int16) *bytes.Reader {
	return bytes.NewReader(h.Build(samples)[RiffEnvelopeSize:])
}

func TestReadFormatDescriptor(t *testing.T) {
	t.Parallel()

	f, err := ReadFormatDescriptor(fmtStream(wavtest.Mono8k(), nil))
	if err != nil {
		t.Fatalf("ReadFormatDescriptor() error = %v", err)
	}

	want := NewPCMFormat(8000)
	want.Raw = f.Raw

	if f.ID != want.ID || f.Size != want.Size || f.AudioFormat != want.AudioFormat ||
		f.NumChannels != want.NumChannels || f.SampleRate != want.SampleRate ||
		f.ByteRate != want.ByteRate || f.BlockAlign != want.BlockAlign || f.BitsPerSample != want.BitsPerSample {
		t.Errorf("ReadFormatDescriptor() = %+v, want %+v", f, want)
	}

	if !bytes.Equal(f.Bytes(), f.Raw) {
		t.Errorf("Bytes() = % x, want % x", f.Bytes(), f.Raw)
	}

	if f.BytesPerSample() != 2 {
		t.Errorf("BytesPerSample() = %d, want 2", f.BytesPerSample())
	}

	af := f.Format()
	if af.SampleRate != 8000 || af.NumChannels != 1 {
		t.Errorf("Format() = %+v", af)
	}
}

func TestFormatDescriptor_Verify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*FormatDescriptor)
		ok     bool
	}{
		{"supported", func(*FormatDescriptor) {}, true},
		{"upper case tag", func(f *FormatDescriptor) { f.ID = "FMT " }, true},
		{"wrong tag", func(f *FormatDescriptor) { f.ID = "data" }, false},
		{"IEEE float", func(f *FormatDescriptor) { f.AudioFormat = 3 }, false},
		{"extensible", func(f *FormatDescriptor) { f.AudioFormat = 0xfffe }, false},
		{"stereo", func(f *FormatDescriptor) { f.NumChannels = 2 }, false},
		{"no channels", func(f *FormatDescriptor) { f.NumChannels = 0 }, false},
		{"44.1kHz", func(f *FormatDescriptor) { f.SampleRate = 44100 }, false},
		{"8-bit", func(f *FormatDescriptor) { f.BitsPerSample = 8 }, false},
		{"24-bit", func(f *FormatDescriptor) { f.BitsPerSample = 24 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := NewPCMFormat(SupportedSampleRate)
			tt.mutate(&f)

			if got := f.Validate(); got != tt.ok {
				t.Errorf("Validate() = %v, want %v", got, tt.ok)
			}

			if err := f.Verify(); !tt.ok && !errors.Is(err, ErrFormatUnsupported) {
				t.Errorf("Verify() error = %v, want ErrFormatUnsupported", err)
			}
		})
	}
}

func TestReadFormatDescriptor_Extension(t *testing.T) {
	t.Parallel()

	for _, extra := range [][]byte{{0, 0}, {1, 2, 3, 4}} {
		h := wavtest.Mono8k()
		h.FmtSize = uint32(16 + len(extra))
		h.FmtExtra = extra

		r := fmtStream(h, []int16{7, -7})

		f, err := ReadFormatDescriptor(r)
		if err != nil {
			t.Fatalf("size %d: error = %v", h.FmtSize, err)
		}

		if f.Size != h.FmtSize || !f.Validate() {
			t.Errorf("size %d: descriptor = %+v", h.FmtSize, f)
		}

		// The reader must be positioned on the data chunk.
		tag := make([]byte, 4)
		if _, err := io.ReadFull(r, tag); err != nil || string(tag) != "data" {
			t.Errorf("size %d: next tag = %q (%v), want \"data\"", h.FmtSize, tag, err)
		}
	}
}

func TestReadFormatDescriptor_Short(t *testing.T) {
	t.Parallel()

	t.Run("fixed block", func(t *testing.T) {
		t.Parallel()

		_, err := ReadFormatDescriptor(bytes.NewReader(make([]byte, FormatBlockSize-1)))
		if !errors.Is(err, ErrShortHeader) {
			t.Errorf("error = %v, want ErrShortHeader", err)
		}
	})

	t.Run("extension", func(t *testing.T) {
		t.Parallel()

		block := NewPCMFormat(8000)
		block.Size = 40

		_, err := ReadFormatDescriptor(bytes.NewReader(block.Bytes()))
		if !errors.Is(err, ErrShortHeader) {
			t.Errorf("error = %v, want ErrShortHeader", err)
		}
	})
}

func TestFormatDescriptor_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		f    FormatDescriptor
		want string
	}{
		{
			NewPCMFormat(8000),
			"Audio Format: PCM WAVE File. Number of Channels: 1  Sample Rate: 8000  Bits/Sample: 16",
		},
		{
			FormatDescriptor{AudioFormat: 3, NumChannels: 2, SampleRate: 48000, BitsPerSample: 32},
			"Audio Format: 3 Number of Channels: 2  Sample Rate: 48000  Bits/Sample: 32",
		},
	}

	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

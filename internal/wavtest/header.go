// SPDX-License-Identifier: EPL-2.0

package wavtest

import (
	"github.com/ik5/wavqc/codec"
)

// Header describes every field of a WAVE header so tests can corrupt any of
// them. FmtExtra is appended after the 16-byte fmt payload; set FmtSize to
// match when an extension should be parsed.
type Header struct {
	RiffID   string
	RiffSize uint32 // 0 means computed from the payload
	WaveID   string

	FmtID         string
	FmtSize       uint32
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	FmtExtra      []byte

	DataID   string
	DataSize uint32 // 0 means len(samples)*2
}

// Mono8k is the supported profile: PCM, 1 channel, 8000 Hz, 16 bits.
func Mono8k() Header {
	return Header{
		RiffID:        "RIFF",
		WaveID:        "WAVE",
		FmtID:         "fmt ",
		FmtSize:       16,
		AudioFormat:   1,
		Channels:      1,
		SampleRate:    8000,
		ByteRate:      16000,
		BlockAlign:    2,
		BitsPerSample: 16,
		DataID:        "data",
	}
}

// Build encodes the header followed by samples.
func (h Header) Build(samples []int16) []byte {
	dataSize := h.DataSize
	if dataSize == 0 {
		dataSize = uint32(len(samples) * 2)
	}

	fmtLen := 24 + len(h.FmtExtra)
	buf := make([]byte, 12+fmtLen+8+len(samples)*2)

	riffSize := h.RiffSize
	if riffSize == 0 {
		riffSize = uint32(len(buf) - 8)
	}

	_ = codec.PutASCII(buf, 0, h.RiffID)
	_ = codec.PutUint32(buf, 4, riffSize)
	_ = codec.PutASCII(buf, 8, h.WaveID)

	f := buf[12:]
	_ = codec.PutASCII(f, 0, h.FmtID)
	_ = codec.PutUint32(f, 4, h.FmtSize)
	_ = codec.PutUint16(f, 8, h.AudioFormat)
	_ = codec.PutUint16(f, 10, h.Channels)
	_ = codec.PutUint32(f, 12, h.SampleRate)
	_ = codec.PutUint32(f, 16, h.ByteRate)
	_ = codec.PutUint16(f, 20, h.BlockAlign)
	_ = codec.PutUint16(f, 22, h.BitsPerSample)
	copy(f[24:], h.FmtExtra)

	d := buf[12+fmtLen:]
	_ = codec.PutASCII(d, 0, h.DataID)
	_ = codec.PutUint32(d, 4, dataSize)
	_ = codec.PutInt16s(d[8:], samples)

	return buf
}

// Mono8kFile is Mono8k().Build(samples).
func Mono8kFile(samples []int16) []byte {
	return Mono8k().Build(samples)
}

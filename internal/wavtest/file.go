// SPDX-License-Identifier: EPL-2.0

package wavtest

import (
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// EncodeFile writes samples as an 8kHz 16-bit mono file in a temp dir using
// the go-audio encoder, so tests read a file produced by an independent
// writer. It returns the file path.
func EncodeFile(tb testing.TB, samples []int16) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "encoded.wav")

	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := gowav.NewEncoder(f, 8000, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		tb.Fatalf("encode %s: %v", path, err)
	}

	if err := enc.Close(); err != nil {
		tb.Fatalf("close encoder %s: %v", path, err)
	}

	return path
}

// WriteFile stores raw bytes in a temp dir and returns the path.
func WriteFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}

	return path
}

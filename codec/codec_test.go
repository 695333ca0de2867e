// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"math"
	"testing"
)

func TestUint(t *testing.T) {
	t.Parallel()

	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}

	tests := []struct {
		name    string
		offset  int
		length  int
		want    uint32
		wantErr error
	}{
		{"u16 at start", 0, 2, 0x0201, nil},
		{"u16 at end", 4, 2, 0x0605, nil},
		{"u32 at start", 0, 4, 0x04030201, nil},
		{"u32 at end", 2, 4, 0x06050403, nil},
		{"u32 past end", 3, 4, 0, ErrBufferUnderrun},
		{"u16 past end", 5, 2, 0, ErrBufferUnderrun},
		{"negative offset", -1, 2, 0, ErrBufferUnderrun},
		{"length 3", 0, 3, 0, ErrInvalidLength},
		{"length 8", 0, 8, 0, ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Uint(buf, tt.offset, tt.length)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Uint(%d, %d) error = %v, want %v", tt.offset, tt.length, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("Uint(%d, %d) = %#x, want %#x", tt.offset, tt.length, got, tt.want)
			}
		})
	}
}

func TestASCII(t *testing.T) {
	t.Parallel()

	buf := []byte("RIFFxxxxWAVE")

	got, err := ASCII(buf, 8, 4)
	if err != nil {
		t.Fatalf("ASCII() error = %v", err)
	}

	if got != "WAVE" {
		t.Errorf("ASCII() = %q, want \"WAVE\"", got)
	}

	if _, err := ASCII(buf, 10, 4); !errors.Is(err, ErrBufferUnderrun) {
		t.Errorf("ASCII() past end error = %v, want ErrBufferUnderrun", err)
	}
}

func TestPut_RoundTrip(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 10)

	if err := PutASCII(buf, 0, "fmt "); err != nil {
		t.Fatalf("PutASCII() error = %v", err)
	}

	if err := PutUint32(buf, 4, 0xDEADBEEF); err != nil {
		t.Fatalf("PutUint32() error = %v", err)
	}

	if err := PutUint16(buf, 8, 8000); err != nil {
		t.Fatalf("PutUint16() error = %v", err)
	}

	id, _ := ASCII(buf, 0, 4)
	v32, _ := Uint32(buf, 4)
	v16, _ := Uint16(buf, 8)

	if id != "fmt " || v32 != 0xDEADBEEF || v16 != 8000 {
		t.Errorf("round trip = (%q, %#x, %d), want (\"fmt \", 0xdeadbeef, 8000)", id, v32, v16)
	}
}

func TestPut_Underrun(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 3)

	if err := PutUint32(buf, 0, 1); !errors.Is(err, ErrBufferUnderrun) {
		t.Errorf("PutUint32() error = %v, want ErrBufferUnderrun", err)
	}

	if err := PutUint16(buf, 2, 1); !errors.Is(err, ErrBufferUnderrun) {
		t.Errorf("PutUint16() error = %v, want ErrBufferUnderrun", err)
	}

	if err := PutASCII(buf, 0, "RIFF"); !errors.Is(err, ErrBufferUnderrun) {
		t.Errorf("PutASCII() error = %v, want ErrBufferUnderrun", err)
	}

	// Nothing may be written on failure.
	for i, b := range buf {
		if b != 0 {
			t.Errorf("buf[%d] = %d, want 0", i, b)
		}
	}
}

func TestInt16s(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1, -1, math.MaxInt16, math.MinInt16}
	buf := make([]byte, len(samples)*2+1) // trailing odd byte

	if err := PutInt16s(buf, samples); err != nil {
		t.Fatalf("PutInt16s() error = %v", err)
	}

	got := Int16s(buf)
	if len(got) != len(samples) {
		t.Fatalf("Int16s() len = %d, want %d", len(got), len(samples))
	}

	for i := range samples {
		if got[i] != samples[i] {
			t.Errorf("Int16s()[%d] = %d, want %d", i, got[i], samples[i])
		}
	}

	if err := PutInt16s(make([]byte, 3), samples[:2]); !errors.Is(err, ErrBufferUnderrun) {
		t.Errorf("PutInt16s() short dst error = %v, want ErrBufferUnderrun", err)
	}
}

func BenchmarkInt16s(b *testing.B) {
	// 1 second of 8kHz mono
	buf := make([]byte, 16000)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_ = Int16s(buf)
	}
}

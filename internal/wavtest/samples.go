// SPDX-License-Identifier: EPL-2.0

// Package wavtest builds sample buffers and WAVE byte streams for tests.
package wavtest

import (
	"math"
)

// Generate returns n samples produced by waveform.
func Generate(n int, waveform func(i int) int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = waveform(i)
	}

	return out
}

// Silence returns n zero samples.
func Silence(n int) []int16 {
	return make([]int16, n)
}

// Constant returns n samples of value. A constant buffer has zero
// first-difference power, so every frame in it is empty.
func Constant(n int, value int16) []int16 {
	return Generate(n, func(int) int16 { return value })
}

// Sine returns n samples of a sine at frequency Hz with peak amplitude.
func Sine(n, sampleRate int, frequency float64, amplitude int16) []int16 {
	return Generate(n, func(i int) int16 {
		t := float64(i) / float64(sampleRate)
		return int16(float64(amplitude) * math.Sin(2*math.Pi*frequency*t))
	})
}

// Spike returns n zero samples with samples[at] = value.
func Spike(n, at int, value int16) []int16 {
	out := Silence(n)
	out[at] = value

	return out
}

// Concat joins sample runs in order.
func Concat(parts ...[]int16) []int16 {
	var out []int16
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// SPDX-License-Identifier: EPL-2.0

// Package analysis computes quality-control characteristics of 16-bit mono
// PCM audio.
//
// The recording is cut into fixed frames (20 ms by default). Each frame's
// power is the sum of squared first differences between consecutive
// samples, which ignores DC offset and emphasises high-frequency content.
// A frame with zero power is empty, a frame whose mean power is at or below
// the noise floor is silence, and everything else counts as audio:
//
//	a := analysis.New(analysis.DefaultConfig())
//	c := a.Analyze(analysis.Input{
//		Samples:       samples,
//		DataSize:      uint32(len(samples) * 2),
//		SampleRate:    8000,
//		BitsPerSample: 16,
//	})
//	if !c.HasSignal {
//		// nothing above the noise floor
//	}
//
// Saturation, sample extremes and DC offset are measured over the leading
// NormalizationFraction of the samples only.
package analysis

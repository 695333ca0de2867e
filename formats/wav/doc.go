// SPDX-License-Identifier: EPL-2.0

// Package wav parses the three chunks of an 8kHz 16-bit mono PCM WAVE file.
//
// The layout is read strictly in order and never searched:
//
//	bytes [0,12):  RIFF envelope  "RIFF" | size(u32) | "WAVE"
//	bytes [12,36): fmt sub-chunk  "fmt " | size(u32) | format(u16) | channels(u16) |
//	               rate(u32) | byteRate(u32) | blockAlign(u16) | bits(u16)
//	               [+ size-16 extension bytes, skipped]
//	remaining:     data sub-chunk "data" | size(u32) | size/2 x int16 samples
//
// Each Read function only decodes. Validate (or Verify, which also says why)
// checks the decoded value, so callers decide where to stop:
//
//	env, err := wav.ReadRiffEnvelope(r)
//	if err != nil {
//	    return err
//	}
//	if err := env.Verify(); err != nil {
//	    return err // wraps wav.ErrRiffInvalid
//	}
//
// Tags are compared without regard to case. Any format other than PCM,
// one channel, 8000 Hz and 16 bits per sample fails with ErrFormatUnsupported.
//
// # Writing WAV Files
//
// WriteWAV16 writes a canonical 44-byte header followed by the samples:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
//
// # Error Handling
//
//   - ErrRiffInvalid: bad magic, bad form type or zero size
//   - ErrFormatUnsupported: anything but 8kHz 16-bit mono PCM
//   - ErrDataChunkInvalid: wrong chunk id or fewer samples than declared
//   - ErrShortHeader: the stream ended inside a fixed-size header
package wav

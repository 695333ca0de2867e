// SPDX-License-Identifier: EPL-2.0

// Package wavqc checks the quality of telephony-grade WAVE recordings.
//
// A recording must be uncompressed PCM, 8000 Hz, 16-bit, mono. Anything else
// is rejected rather than converted.
//
// # Quick Start
//
//	doc, err := wavqc.Load("call.wav", analysis.DefaultConfig())
//	if err != nil {
//		var se *wavqc.StageError
//		if errors.As(err, &se) {
//			log.Printf("rejected at %s: %v", se.Stage, se.Err)
//		}
//		return err
//	}
//
//	fmt.Println(doc.FormatSummary())
//	c := doc.Characteristics()
//	fmt.Println(c.SilenceFrames, "of", c.TotalFrames, "frames are silence")
//
// # Stages
//
// Reading runs in a fixed order and stops at the first failure:
//   - riff: the 12-byte RIFF/WAVE envelope (wav.ErrRiffInvalid)
//   - fmt: the format descriptor and its profile (wav.ErrFormatUnsupported)
//   - data: the data chunk header and payload (wav.ErrDataChunkInvalid)
//   - io: opening or reading the input (ErrIO)
//
// # Subpackages
//
// The container parsers live in formats/wav, the frame analysis in
// analysis, and the little-endian field helpers in codec.
package wavqc

// SPDX-License-Identifier: EPL-2.0

package wavqc_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/wavqc"
	"github.com/ik5/wavqc/analysis"
	"github.com/ik5/wavqc/formats/wav"
	"github.com/ik5/wavqc/internal/wavtest"
)

// Example_basicUsage reads a recording with a tone between two gaps.
func Example_basicUsage() {
	samples := wavtest.Concat(
		wavtest.Silence(1600),
		wavtest.Sine(1600, 8000, 440, 10000),
		wavtest.Silence(1601),
	)

	file := new(bytes.Buffer)
	if err := wav.WriteWAV16(file, 8000, samples); err != nil {
		fmt.Println(err)
		return
	}

	doc, err := wavqc.Read(file, analysis.DefaultConfig())
	if err != nil {
		fmt.Println(err)
		return
	}

	c := doc.Characteristics()

	fmt.Println(doc.FormatSummary())
	fmt.Printf("frames: %d empty: %d silence: %d audio: %d\n",
		c.TotalFrames, c.EmptyFrames, c.SilenceFrames, c.NonSilenceFrames)
	fmt.Printf("audio from frame %d to %d\n", c.FirstAudioFrame, c.LastAudioFrame)
	fmt.Println("longest gap:", c.LongestEmptyRunDuration())
	// Output:
	// Audio Format: PCM WAVE File. Number of Channels: 1  Sample Rate: 8000  Bits/Sample: 16
	// frames: 30 empty: 20 silence: 0 audio: 10
	// audio from frame 10 to 19
	// longest gap: 200ms
}

// Example_rejected shows how a failing stage is reported.
func Example_rejected() {
	file := new(bytes.Buffer)
	_ = wav.WriteWAV16(file, 8000, wavtest.Silence(160))

	data := file.Bytes()
	copy(data, "RIFX")

	_, err := wavqc.Read(bytes.NewReader(data), analysis.DefaultConfig())

	var se *wavqc.StageError
	if errors.As(err, &se) {
		fmt.Println("stage:", se.Stage)
	}

	fmt.Println(errors.Is(err, wav.ErrRiffInvalid))
	fmt.Println(err)
	// Output:
	// stage: riff
	// true
	// riff stage: invalid RIFF/WAVE envelope: chunk id "RIFX"
}

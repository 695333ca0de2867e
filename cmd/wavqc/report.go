// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ik5/wavqc"
	"github.com/ik5/wavqc/analysis"
)

type formatReport struct {
	AudioFormat   uint16 `json:"audio_format"`
	Channels      uint16 `json:"channels"`
	SampleRate    uint32 `json:"sample_rate"`
	BitsPerSample uint16 `json:"bits_per_sample"`
}

type fileReport struct {
	File            string                   `json:"file"`
	Format          formatReport             `json:"format"`
	Samples         int                      `json:"samples"`
	DurationSeconds float64                  `json:"duration_seconds"`
	Characteristics analysis.Characteristics `json:"characteristics"`
}

func newFileReport(path string, doc *wavqc.Document) fileReport {
	f := doc.Format()

	return fileReport{
		File: path,
		Format: formatReport{
			AudioFormat:   f.AudioFormat,
			Channels:      f.NumChannels,
			SampleRate:    f.SampleRate,
			BitsPerSample: f.BitsPerSample,
		},
		Samples:         len(doc.Samples()),
		DurationSeconds: doc.Duration().Seconds(),
		Characteristics: doc.Characteristics(),
	}
}

func writeJSON(w io.Writer, r fileReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// writeText renders the format summary followed by the characteristics
// report.
func writeText(w io.Writer, summary string, c analysis.Characteristics) error {
	var b strings.Builder

	fmt.Fprintln(&b, summary)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "WAVE File Data Characteristics")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Power Levels")
	if c.HasSignal {
		fmt.Fprintf(&b, "    Average Power: %.2f dB calculated over %d frames\n", c.AveragePower, c.AveragePowerFrames)
		fmt.Fprintf(&b, "    SNR: %.2f\n", c.SNR)
		fmt.Fprintf(&b, "    Max Power: %.2f\n", c.MaxPowerDB)
		fmt.Fprintf(&b, "    Min Power: %.2f\n", c.MinPowerDB)
	} else {
		fmt.Fprintln(&b, "    No frame above the noise floor")
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Frame Characteristics")
	fmt.Fprintf(&b, "    Frames: %d of %s\n", c.TotalFrames, c.FrameDuration())
	fmt.Fprintf(&b, "    Empty Frames: %d\n", c.EmptyFrames)
	fmt.Fprintf(&b, "    Silence Frames: %d\n", c.SilenceFrames)
	fmt.Fprintf(&b, "    Non-Silence Frames: %d\n", c.NonSilenceFrames)
	fmt.Fprintf(&b, "    Saturated Samples: %d\n", c.SaturatedSamples)
	fmt.Fprintf(&b, "    Max Sample: %d\n", c.MaxSample)
	fmt.Fprintf(&b, "    Min Sample: %d\n", c.MinSample)
	fmt.Fprintf(&b, "    DC Offset: %.2f\n", c.DCOffset)

	if c.HasSignal {
		fmt.Fprintf(&b, "    Audio Frames: %d to %d\n", c.FirstAudioFrame, c.LastAudioFrame)
	}

	if c.LongestEmptyRun > 0 {
		fmt.Fprintf(&b, "    Num. consecutive empty frames: %d, Approximate Missing Audio Duration: %g sec\n",
			c.LongestEmptyRun, c.LongestEmptyRunSeconds)
	}

	if c.LongestSilenceRun > 0 {
		fmt.Fprintf(&b, "    Num. consecutive silence frames: %d\n", c.LongestSilenceRun)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

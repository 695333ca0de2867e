// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"time"
)

// Power bounds reported when no frame above the noise floor was seen.
// HasSignal is false whenever these are in place.
const (
	NoSignalMaxPowerDB = -1000.0
	NoSignalMinPowerDB = 1000.0
)

// Characteristics is the quality-control summary of one recording. It is
// built in a single step by Analyzer.Analyze and returned by value.
type Characteristics struct {
	TotalFrames      int `json:"total_frames"`
	EmptyFrames      int `json:"empty_frames"`
	SilenceFrames    int `json:"silence_frames"`
	NonSilenceFrames int `json:"non_silence_frames"`

	// SaturatedSamples counts samples at +32767 or -32768 in the
	// normalization prefix.
	SaturatedSamples int `json:"saturated_samples"`

	// HasSignal is true when at least one frame was neither empty nor
	// silence. Otherwise the power fields hold the NoSignal sentinels, or
	// zero for an input without samples.
	HasSignal  bool    `json:"has_signal"`
	MaxPowerDB float64 `json:"max_power_db"`
	MinPowerDB float64 `json:"min_power_db"`
	// SNR is MaxPowerDB - MinPowerDB, not a noise-referenced ratio.
	SNR float64 `json:"snr"`

	// AveragePower is the mean dB over the AveragePowerFrames frames that
	// were neither empty nor silence, 0 when there were none.
	AveragePower       float64 `json:"average_power"`
	AveragePowerFrames int     `json:"average_power_frames"`

	MaxSample int16   `json:"max_sample"`
	MinSample int16   `json:"min_sample"`
	DCOffset  float64 `json:"dc_offset"`

	// Longest runs are only counted after the first audio frame.
	LongestEmptyRun        int     `json:"longest_empty_run"`
	LongestSilenceRun      int     `json:"longest_silence_run"`
	LongestEmptyRunSeconds float64 `json:"longest_empty_run_seconds"`

	// FirstAudioFrame and LastAudioFrame delimit the detected audio. Both
	// are 0 when HasSignal is false.
	FirstAudioFrame int `json:"first_audio_frame"`
	LastAudioFrame  int `json:"last_audio_frame"`

	SamplesPerFrame int `json:"samples_per_frame"`
	BytesPerFrame   int `json:"bytes_per_frame"`
	FrameLengthMs   int `json:"frame_length_ms"`
}

// LongestEmptyRunDuration is LongestEmptyRunSeconds as a time.Duration.
func (c Characteristics) LongestEmptyRunDuration() time.Duration {
	return time.Duration(c.LongestEmptyRun) * time.Duration(c.FrameLengthMs) * time.Millisecond
}

// FrameDuration is the length of one analysis window.
func (c Characteristics) FrameDuration() time.Duration {
	return time.Duration(c.FrameLengthMs) * time.Millisecond
}

// Check verifies the counting invariants of the record.
func (c Characteristics) Check() error {
	switch {
	case c.TotalFrames < 0 || c.EmptyFrames < 0 || c.SilenceFrames < 0 || c.NonSilenceFrames < 0:
		return fmt.Errorf("negative frame count in %+v", c)
	case c.NonSilenceFrames+c.SilenceFrames+c.EmptyFrames != c.TotalFrames:
		return fmt.Errorf("non-silence %d + silence %d + empty %d != total %d",
			c.NonSilenceFrames, c.SilenceFrames, c.EmptyFrames, c.TotalFrames)
	case c.LongestEmptyRun > c.TotalFrames || c.LongestSilenceRun > c.TotalFrames:
		return fmt.Errorf("run longer than %d frames: empty %d, silence %d",
			c.TotalFrames, c.LongestEmptyRun, c.LongestSilenceRun)
	case c.AveragePowerFrames != c.NonSilenceFrames:
		return fmt.Errorf("average over %d frames, want %d", c.AveragePowerFrames, c.NonSilenceFrames)
	}

	return nil
}

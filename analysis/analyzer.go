// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math"
)

const (
	saturatedHigh = math.MaxInt16
	saturatedLow  = math.MinInt16

	// clampedTerm replaces a squared first difference that leaves the int16 range.
	clampedTerm = float64(math.MaxInt16) * float64(math.MaxInt16)
)

// Input is a decoded data chunk plus the format fields the analysis needs.
type Input struct {
	Samples []int16
	// DataSize is the declared data chunk size in bytes.
	DataSize      uint32
	SampleRate    uint32
	BitsPerSample uint16
}

// Analyzer computes Characteristics with a fixed Config.
type Analyzer struct {
	cfg Config
}

// New returns an Analyzer. cfg is expected to pass Validate.
func New(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

func (a *Analyzer) Config() Config { return a.cfg }

type geometry struct {
	samplesPerFrame int
	bytesPerFrame   int
	rawSamples      int
	frames          int
}

func (a *Analyzer) geometry(in Input) geometry {
	g := geometry{
		samplesPerFrame: a.cfg.FrameLengthMs * int(in.SampleRate) / 1000,
	}
	g.bytesPerFrame = int(in.BitsPerSample) * g.samplesPerFrame / 8

	g.rawSamples = len(in.Samples)
	if bps := int(in.BitsPerSample) / 8; bps > 0 {
		g.rawSamples = min(int(in.DataSize)/bps, len(in.Samples))
	}

	// One sample past the last frame must exist for its final difference.
	if g.rawSamples > 0 && g.samplesPerFrame > 0 {
		g.frames = (g.rawSamples - 1) / g.samplesPerFrame
	}

	return g
}

type prefixStats struct {
	saturated int
	maxSample int16
	minSample int16
	dcOffset  float64
}

// scanPrefix covers the leading NormalizationFraction of the recording.
func (a *Analyzer) scanPrefix(samples []int16) prefixStats {
	n := int(a.cfg.NormalizationFraction * float64(len(samples)))
	if n <= 0 {
		return prefixStats{}
	}

	st := prefixStats{maxSample: math.MinInt16, minSample: math.MaxInt16}

	var sum int64
	for _, s := range samples[:n] {
		if s == saturatedHigh || s == saturatedLow {
			st.saturated++
		}

		st.maxSample = max(st.maxSample, s)
		st.minSample = min(st.minSample, s)
		sum += int64(s)
	}

	st.dcOffset = float64(sum) / float64(n)

	return st
}

// framePower sums squared first differences over one frame, reading one
// sample past its end.
func framePower(samples []int16, start, length int) float64 {
	var power float64

	for i := start; i < start+length; i++ {
		d := int32(samples[i+1]) - int32(samples[i])
		if d > math.MaxInt16 || d < math.MinInt16 {
			power += clampedTerm
			continue
		}

		power += float64(d) * float64(d)
	}

	return power
}

// runTracker keeps the longest run of a frame condition seen after audio
// started.
type runTracker struct {
	current, longest int
}

func (r *runTracker) observe(hit, audioStarted bool) {
	switch {
	case hit && audioStarted:
		r.current++
	case !hit:
		r.longest = max(r.longest, r.current)
		r.current = 0
	}
}

func (r *runTracker) result() int {
	return max(r.longest, r.current)
}

// Analyze runs the normalization pass and the per-frame pass over in.
//
// Frame power is the sum of squared first differences, not raw sample
// energy; the noise floor is calibrated against that measure.
func (a *Analyzer) Analyze(in Input) Characteristics {
	g := a.geometry(in)
	if g.rawSamples == 0 {
		return Characteristics{}
	}

	samples := in.Samples[:g.rawSamples]
	prefix := a.scanPrefix(samples)

	var (
		empty, silence int
		maxDB          = NoSignalMaxPowerDB
		minDB          = NoSignalMinPowerDB
		sumDB          float64
		audioFrames    int
		first, last    int
		audioStarted   bool
		emptyRun       runTracker
		silenceRun     runTracker
	)

	spf := float64(g.samplesPerFrame)

	for idx := range g.frames {
		power := framePower(samples, idx*g.samplesPerFrame, g.samplesPerFrame)

		isEmpty := power == 0
		isSilence := !isEmpty && power/spf <= a.cfg.NoiseFloorPower

		switch {
		case isEmpty:
			empty++
		case isSilence:
			silence++
		default:
			db := 10 * math.Log10(power/spf)
			maxDB = max(maxDB, db)
			minDB = min(minDB, db)
			sumDB += db
			audioFrames++

			last = idx
			if !audioStarted {
				first = idx
				audioStarted = true
			}
		}

		emptyRun.observe(isEmpty, audioStarted)
		silenceRun.observe(isSilence, audioStarted)
	}

	var avg float64
	if audioFrames > 0 {
		avg = sumDB / float64(audioFrames)
	}

	longestEmpty := emptyRun.result()

	return Characteristics{
		TotalFrames:      g.frames,
		EmptyFrames:      empty,
		SilenceFrames:    silence,
		NonSilenceFrames: g.frames - empty - silence,
		SaturatedSamples: prefix.saturated,

		HasSignal:  audioStarted,
		MaxPowerDB: maxDB,
		MinPowerDB: minDB,
		SNR:        maxDB - minDB,

		AveragePower:       avg,
		AveragePowerFrames: audioFrames,

		MaxSample: prefix.maxSample,
		MinSample: prefix.minSample,
		DCOffset:  prefix.dcOffset,

		LongestEmptyRun:        longestEmpty,
		LongestSilenceRun:      silenceRun.result(),
		LongestEmptyRunSeconds: float64(longestEmpty) * (float64(a.cfg.FrameLengthMs) / 1000),

		FirstAudioFrame: first,
		LastAudioFrame:  last,

		SamplesPerFrame: g.samplesPerFrame,
		BytesPerFrame:   g.bytesPerFrame,
		FrameLengthMs:   a.cfg.FrameLengthMs,
	}
}
